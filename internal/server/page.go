package server

import (
	"embed"
	"html/template"
	"net/url"
	"strconv"

	"hsc_predictor/internal/domain/service/gpa"
	"hsc_predictor/pkg/rest"
)

//go:embed templates/index.html
var templates embed.FS

var indexTemplate = template.Must( //nolint:gochecknoglobals
	template.New("index.html").Funcs(template.FuncMap{
		"num": func(f *float64) string {
			if f == nil {
				return ""
			}

			return strconv.FormatFloat(*f, 'f', -1, 64)
		},
	}).ParseFS(templates, "templates/index.html"),
)

type page struct {
	Title       string
	Description string
	Fields      []pageField
	Message     string
	Success     bool
	Disclaimer  string
}

type pageField struct {
	rest.FormField
	Value string
}

// newPage fills the form with what the user submitted, falling back to each
// field's default. result is nil before the first submission.
func newPage(form rest.Form, submitted url.Values, result *gpa.Result) page {
	p := page{
		Title:       form.Title,
		Description: form.Description,
		Fields:      make([]pageField, 0, len(form.Fields)),
	}

	for _, f := range form.Fields {
		v := f.Default
		if submitted.Has(f.Name) {
			v = submitted.Get(f.Name)
		}

		p.Fields = append(p.Fields, pageField{FormField: f, Value: v})
	}

	if result != nil {
		p.Message = result.Message()
		p.Success = result.OK()

		if p.Success {
			p.Disclaimer = gpa.Disclaimer
		}
	}

	return p
}
