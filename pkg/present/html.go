package present

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/yuin/goldmark"

	"github.com/aretw0/notekeeper/pkg/core"
)

var page = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en" data-theme="{{.Theme}}">
<head><meta charset="utf-8"><title>Notekeeper</title></head>
<body>
{{- range .Notebooks}}
<section class="notebook" data-notebook="{{.ID}}">
<h2>{{.Name}}</h2>
{{- range .Notes}}
<article class="card" data-note="{{.ID}}">
<h3 class="card-title">{{.Title}}</h3>
<div class="card-text">{{.Body}}</div>
<span class="card-time">{{.Posted}}</span>
</article>
{{- else}}
<p class="empty-notes">No notes</p>
{{- end}}
</section>
{{- end}}
</body>
</html>
`))

type cardView struct {
	ID     string
	Title  string
	Body   template.HTML
	Posted string
}

type notebookView struct {
	ID    string
	Name  string
	Notes []cardView
}

// RenderHTML writes doc as a standalone HTML page. Note text is Markdown.
func RenderHTML(w io.Writer, doc core.Document, theme core.Theme, now time.Time) error {
	md := goldmark.New()
	view := struct {
		Theme     core.Theme
		Notebooks []notebookView
	}{Theme: theme}

	for _, nb := range doc.Notebooks {
		nv := notebookView{ID: nb.ID, Name: nb.Name}
		for _, n := range nb.Notes {
			var body bytes.Buffer
			if err := md.Convert([]byte(n.Text), &body); err != nil {
				return fmt.Errorf("failed to render note %s: %w", n.ID, err)
			}
			nv.Notes = append(nv.Notes, cardView{
				ID:     n.ID,
				Title:  n.Title,
				Body:   template.HTML(body.String()),
				Posted: RelativeTime(n.PostedOn, now),
			})
		}
		view.Notebooks = append(view.Notebooks, nv)
	}

	return page.Execute(w, view)
}
