package web

import (
	"embed"
	"fmt"
	"html/template"
	"math"
	"time"
)

//go:embed templates/*.html templates/partials/*.html
var files embed.FS

var funcs = template.FuncMap{
	"currency": func(v float64) string {
		return fmt.Sprintf("%.2f TL", v)
	},
	"date": func(t time.Time) string {
		return t.Format("02.01.2006")
	},
	"round": func(v float64) int {
		return int(math.Round(v))
	},
	"stars": func(n int) string {
		s := ""
		for i := 0; i < 5; i++ {
			if i < n {
				s += "★"
			} else {
				s += "☆"
			}
		}
		return s
	},
}

// Templates parses the embedded page and partial templates
func Templates() *template.Template {
	return template.Must(
		template.New("").Funcs(funcs).ParseFS(files,
			"templates/*.html", "templates/partials/*.html"),
	)
}
