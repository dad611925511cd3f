package mailer

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
	"time"

	"randevuapi/model"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var (
	htmlTmpl = htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/randevu.html.tmpl"))
	textTmpl = texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/randevu.txt.tmpl"))
)

type view struct {
	model.Submission
	Title string
	Site  string
	Year  int
}

// Render builds the HTML and plain-text bodies for sub. Optional fields
// that are empty produce no output in either body. HTML values are escaped.
func Render(sub model.Submission, title, site string, now time.Time) (html, text string, err error) {
	v := view{Submission: sub, Title: title, Site: site, Year: now.Year()}

	var hb bytes.Buffer
	if err := htmlTmpl.Execute(&hb, v); err != nil {
		return "", "", fmt.Errorf("render html: %w", err)
	}
	var tb bytes.Buffer
	if err := textTmpl.Execute(&tb, v); err != nil {
		return "", "", fmt.Errorf("render text: %w", err)
	}
	return hb.String(), tb.String(), nil
}
