package router

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"

	"paytrack/internal/util"
)

// content holds our static content.
//
//go:embed templates
var templatesFS embed.FS

var templateFuncs = template.FuncMap{
	"formatMoney": util.FormatMoney,
	"formatQuantity": func(q float64) string {
		return strconv.FormatFloat(q, 'f', -1, 64)
	},
	"formatPercent": func(p float64) string {
		return fmt.Sprintf("%.0f", p)
	},
}

var pageFiles = []string{
	"pages/auth/signin.html",
	"pages/auth/signup.html",
	"pages/index.html",
	"pages/receipt.html",
}

type templates struct {
	pages map[string]*template.Template
}

func (router *router) parseTemplates() error {
	base, err := template.New("base").Funcs(templateFuncs).ParseFS(templatesFS,
		"templates/home.html",
		"templates/partials/nav.html",
	)
	if err != nil {
		return fmt.Errorf("failed to parse base templates: %w", err)
	}

	pages := make(map[string]*template.Template, len(pageFiles))
	for _, page := range pageFiles {
		clone, cloneErr := base.Clone()
		if cloneErr != nil {
			return fmt.Errorf("failed to clone base template: %w", cloneErr)
		}

		parsed, parseErr := clone.ParseFS(templatesFS, "templates/"+page)
		if parseErr != nil {
			return fmt.Errorf("failed to parse template %s: %w", page, parseErr)
		}

		pages[page] = parsed
	}

	router.templates = templates{pages: pages}

	return nil
}

func (t templates) Render(w io.Writer, page string, data interface{}) error {
	tmpl, ok := t.pages[page]
	if !ok {
		return fmt.Errorf("unknown template %s", page)
	}

	return tmpl.ExecuteTemplate(w, "home.html", data)
}
