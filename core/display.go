package core

import "github.com/mattn/go-runewidth"

// titleWidth is the display width titles are cut to in log lines.
const titleWidth = 50

// ShortTitle truncates a title to a fixed display width for log output.
// Wide runes (CJK, emoji) count as two cells.
func ShortTitle(title string) string {
	return runewidth.Truncate(title, titleWidth, "...")
}
