package searchui

import (
	"html/template"
	"strings"
	"sync"
)

var (
	loadingHTML   = `<div class="text-center"><div class="loading-spinner"></div></div>`
	noResultsHTML = `<div class="text-center text-muted">` + NoResultsMessage + `</div>`
	failedHTML    = `<div class="text-center text-danger">` + FailureMessage + `</div>`

	resultsTemplate = template.Must(template.New("results").Parse(`{{range .}}<div class="search-result-item">` +
		`<a href="{{.URL}}" data-dismiss-dropdown="true">` +
		`<div class="fw-bold">{{.Title}}</div>` +
		`<div class="search-result-type">{{.Type}}</div>` +
		`</a></div>{{end}}`))
)

// HTMLPanel keeps the markup of the results dropdown for the last rendered state.
type HTMLPanel struct {
	mu   sync.Mutex
	html string
}

func (p *HTMLPanel) Render(state State) {
	out := RenderHTML(state)
	p.mu.Lock()
	p.html = out
	p.mu.Unlock()
}

// HTML returns the current panel markup.
func (p *HTMLPanel) HTML() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.html
}

// RenderHTML renders a panel state as the site's dropdown markup.
func RenderHTML(state State) string {
	switch state.Kind {
	case StateLoading:
		return loadingHTML
	case StateFailed:
		return failedHTML
	case StateResults:
		if len(state.Results) == 0 {
			return noResultsHTML
		}
		var buf strings.Builder
		if err := resultsTemplate.Execute(&buf, state.Results); err != nil {
			return failedHTML
		}
		return buf.String()
	default:
		return ""
	}
}
