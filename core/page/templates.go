package page

const pageTemplates = `
{{define "header"}}<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <meta name="generator" content="{{.Generator}}">
    <title>{{.Title}} - {{.Site.Title}}</title>
    <link rel="stylesheet" href="{{.Prefix}}css/style.css">
    <link rel="icon" type="image/png" href="{{.Prefix}}{{.Site.Logo}}">
    <meta name="description" content="{{.Description}}">
</head>
<body data-base="{{.Prefix}}">
    <header class="header">
        <div class="container">
            <div class="header-content">
                <div class="header-branding">
                    <img src="{{.Prefix}}{{.Site.Logo}}" alt="{{.Site.Brand}} Logo" class="header-logo">
                    <div class="header-text">
                        <h1>{{.Site.Title}}</h1>
                        <p>{{.Description}}</p>
                    </div>
                </div>
                <div class="search-container">
                    <input type="search" class="search-input" placeholder="Search articles..." id="searchInput">
                </div>
            </div>
        </div>
    </header>

    <nav class="nav">
        <div class="container">
            <ul>
                <li><a href="{{.Prefix}}index.html">Home</a></li>
                <li><a href="{{.Prefix}}categories.html">Browse Topics</a></li>
                <li><a href="{{.Prefix}}articles.html">All Articles</a></li>
                <li><a href="{{.Prefix}}videos.html">Videos</a></li>
            </ul>
        </div>
    </nav>
{{end}}

{{define "footer"}}
    <footer class="footer">
        <div class="container">
            <p>{{.Site.Copyright}}</p>
        </div>
    </footer>

    <script src="{{.Prefix}}js/main.js"></script>
</body>
</html>
{{end}}

{{define "topic-grid"}}
                <div class="topic-grid">
{{- range .}}
                    <a href="{{.Href}}" class="topic-card">
                        <div class="topic-icon">{{.Icon}}</div>
                        <h3>{{.Name}}</h3>
                        <p class="topic-description">{{.Description}}</p>
                        <div class="topic-meta">{{.Count}}</div>
                    </a>
{{- end}}
                </div>
{{end}}

{{define "article-grid"}}
                <div class="article-grid">
{{- range .}}
                    <a href="{{.Href}}" class="article-card">
                        <h3>{{.Title}}</h3>
                        <div class="article-meta">{{.Meta}}</div>
                    </a>
{{- end}}
                </div>
{{end}}

{{define "home"}}{{template "header" .Frame}}
    <div class="container">
        <main class="main">
            <div class="content">
                <h1>Welcome to {{.Frame.Site.Title}}</h1>
                <p class="description">{{.Frame.Site.Welcome}}</p>

                <h2>Browse by Topic</h2>
{{- template "topic-grid" .Topics}}
                <h2>Popular Articles</h2>
{{- template "article-grid" .Articles}}
            </div>
        </main>
    </div>
{{template "footer" .Frame}}{{end}}

{{define "category"}}{{template "header" .Frame}}
    <div class="container">
        <main class="main">
            <aside class="sidebar">
                <h3>Sections in {{.Name}}</h3>
                <ul class="sidebar-sections">
{{- range .Sections}}
                    <li><a href="{{.Href}}">{{.Name}}</a></li>
{{- end}}
                </ul>
            </aside>

            <div class="content">
                <h1>{{.Name}}</h1>
                <p class="description">{{.Description}}</p>

                <h2>Sections</h2>
                <div class="article-list">
{{- range .Sections}}
                    <div class="article-item">
                        <h3><a href="{{.Href}}">{{.Name}}</a></h3>
                        <div class="article-meta">{{.Count}}</div>
                    </div>
{{- end}}
                </div>
            </div>
        </main>
    </div>
{{template "footer" .Frame}}{{end}}

{{define "section"}}{{template "header" .Frame}}
    <div class="container">
        <main class="main">
            <aside class="sidebar">
                <h3>Articles in {{.Name}}</h3>
                <ul class="sidebar-articles">
{{- range .Articles}}
                    <li><a href="{{.Href}}">{{.Title}}</a></li>
{{- end}}
                </ul>
{{- with .Parent}}
                <h3>Category</h3>
                <ul class="sidebar-parent">
                    <li><a href="{{.Href}}">← {{.Name}}</a></li>
                </ul>
{{- end}}
            </aside>

            <div class="content">
                <h1>{{.Name}}</h1>
                <p class="description">{{.Description}}</p>

                <h2>Articles</h2>
                <div class="article-list">
{{- range .Articles}}
                    <div class="article-item">
                        <h3><a href="{{.Href}}">{{.Title}}</a></h3>
                        <div class="article-meta">Updated: {{.Meta}}</div>
                    </div>
{{- end}}
                </div>
            </div>
        </main>
    </div>
{{template "footer" .Frame}}{{end}}

{{define "article"}}{{template "header" .Frame}}
    <div class="container">
        <nav class="breadcrumb" aria-label="Breadcrumb">
            <ol>
{{- range .Breadcrumb}}
                <li>{{if .Href}}<a href="{{.Href}}">{{.Name}}</a>{{else}}<span aria-current="page">{{.Name}}</span>{{end}}</li>
{{- end}}
            </ol>
        </nav>
        <main class="main">
            <aside class="sidebar">
                <h3>Navigation</h3>
                <ul>
                    <li><a href="../index.html">← Back to Home</a></li>
{{- with .Category}}
                    <li><a href="{{.Href}}">← {{.Name}}</a></li>
{{- end}}
{{- with .Section}}
                    <li><a href="{{.Href}}">← {{.Name}}</a></li>
{{- end}}
                </ul>
            </aside>

            <div class="content">
                <h1>{{.Title}}</h1>
                <div class="article-meta">{{.Trail}} | Updated: {{.Updated}}</div>

                <div class="article-content">
{{.Body}}
                </div>

                <div class="article-feedback">
                    <h3>Was this article helpful?</h3>
                    <div class="feedback-buttons">
                        <button class="feedback-btn feedback-yes" data-vote="helpful" aria-label="Yes, this was helpful">Yes</button>
                        <button class="feedback-btn feedback-no" data-vote="not-helpful" aria-label="No, this was not helpful">No</button>
                    </div>
                    <p class="feedback-message" hidden></p>
                </div>
{{- if .Related}}

                <div class="related-articles-section">
                    <h3>Related Articles</h3>
                    <div class="related-articles-grid">
{{- range .Related}}
                        <a href="{{.Href}}" class="related-article-card">
                            <div class="related-card-category">{{.Topic}}</div>
                            <h4>{{.Title}}</h4>
                            <p>Learn more about this topic</p>
                        </a>
{{- end}}
                    </div>
                </div>
{{- end}}
            </div>
        </main>
    </div>
{{template "footer" .Frame}}{{end}}

{{define "topics"}}{{template "header" .Frame}}
    <div class="container">
        <main class="main">
            <div class="content">
                <h1>Browse Topics</h1>
                <p class="description">Find articles organized by topic to help you get started quickly.</p>
{{template "topic-grid" .Topics}}
            </div>
        </main>
    </div>
{{template "footer" .Frame}}{{end}}

{{define "listing"}}{{template "header" .Frame}}
    <div class="container">
        <main class="main">
            <div class="content">
                <h1>{{.Heading}}</h1>
                <p class="description">{{.Intro}}</p>
{{template "article-grid" .Articles}}
            </div>
        </main>
    </div>
{{template "footer" .Frame}}{{end}}
`
