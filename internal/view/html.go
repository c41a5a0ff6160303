package view

import (
	"embed"
	"html/template"
	"io"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

var dashboard = template.Must(
	template.New("dashboard.html").
		Funcs(template.FuncMap{
			"safeURL": safeImageURL,
		}).
		ParseFS(templateFS, "templates/dashboard.html"),
)

// safeImageURL lets inline data:image URLs through html/template, which
// would otherwise replace them with #ZgotmplZ.
func safeImageURL(u string) template.URL {
	if strings.HasPrefix(u, "data:image/") || strings.HasPrefix(u, "https://") || strings.HasPrefix(u, "http://") {
		return template.URL(u)
	}
	return template.URL("#")
}

// WriteHTML renders p as the dashboard page.
func WriteHTML(w io.Writer, p Page) error {
	return dashboard.Execute(w, p)
}
