package content

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gaurav-prasanna/helpsite/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	calls []string
	fail  map[string]bool
}

func (f *stubFetcher) Fetch(_ context.Context, url string) (*core.FetchResult, error) {
	f.calls = append(f.calls, url)
	if f.fail[url] {
		return nil, errors.New("boom")
	}
	return &core.FetchResult{URL: url, StatusCode: 200, Body: []byte("data:" + url)}, nil
}

func TestExtractDownloadsNamedAttachments(t *testing.T) {
	dir := t.TempDir()
	fetcher := &stubFetcher{}
	ex := NewAttachmentExtractor(attachmentURL, dir, fetcher, nil)

	body := `<p><img src="` + attachmentURL + `11" alt="Study: setup?"></p>` +
		`<p><img src="` + attachmentURL + `11" alt="again"></p>` +
		`<p><img src="` + attachmentURL + `22" title="From title"></p>` +
		`<p><img src="` + attachmentURL + `33" alt="Image"></p>`

	got := ex.Extract(context.Background(), body, 100, nil)
	require.Len(t, got, 3)

	assert.Equal(t, "11", got[0].AttachmentID)
	assert.Equal(t, "Study_ setup_", got[0].OriginalFilename)
	assert.Equal(t, "100_1_Study_ setup_", got[0].Filename)
	assert.Equal(t, attachmentURL+"11", got[0].OriginalURL)

	// Position counts every match, including the skipped repeat.
	assert.Equal(t, "100_3_From title", got[1].Filename)
	assert.Equal(t, "100_4_attachment_33", got[2].Filename)

	assert.Len(t, fetcher.calls, 3)
	data, err := os.ReadFile(filepath.Join(dir, got[1].Filename))
	require.NoError(t, err)
	assert.Equal(t, "data:"+attachmentURL+"22", string(data))
}

func TestExtractFailedDownloadIsOmitted(t *testing.T) {
	fetcher := &stubFetcher{fail: map[string]bool{attachmentURL + "11": true}}
	ex := NewAttachmentExtractor(attachmentURL, t.TempDir(), fetcher, nil)

	body := `<img src="` + attachmentURL + `11"><img src="` + attachmentURL + `22">`
	got := ex.Extract(context.Background(), body, 7, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "22", got[0].AttachmentID)
}

func TestExtractSkipsKnownAndUsesExistingFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "7_2_attachment_22"), []byte("copied"), 0o644))
	fetcher := &stubFetcher{}
	ex := NewAttachmentExtractor(attachmentURL, dir, fetcher, nil)

	body := `<img src="` + attachmentURL + `11"><img src="` + attachmentURL + `22">`
	got := ex.Extract(context.Background(), body, 7, map[string]bool{"11": true})
	require.Len(t, got, 1)
	assert.Equal(t, "7_2_attachment_22", got[0].Filename)
	assert.Empty(t, fetcher.calls)
}

func TestExtractOfflineRecordsNothingNew(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ex := NewAttachmentExtractor(attachmentURL, t.TempDir(), nil, logger)

	got := ex.Extract(context.Background(), `<img src="`+attachmentURL+`11">`, 7, nil)
	assert.Empty(t, got)
	assert.Empty(t, logs.String())
}

func TestExtractFailedDownloadIsWarned(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	fetcher := &stubFetcher{fail: map[string]bool{attachmentURL + "11": true}}
	ex := NewAttachmentExtractor(attachmentURL, t.TempDir(), fetcher, logger)

	assert.Empty(t, ex.Extract(context.Background(), `<img src="`+attachmentURL+`11">`, 7, nil))
	assert.Contains(t, logs.String(), "level=WARN")
}

func TestExtractNoMatches(t *testing.T) {
	ex := NewAttachmentExtractor(attachmentURL, t.TempDir(), &stubFetcher{}, nil)
	assert.Nil(t, ex.Extract(context.Background(), strings.Repeat("<p>x</p>", 3), 1, nil))
}
