package mailer

import (
	"bytes"
	"embed"
	"errors"
	htmpl "html/template"
	"strings"
	texttpl "text/template"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Render fills <name>.subject.tmpl, <name>.text.tmpl and <name>.html.tmpl.
func Render(name string, data any) (subject, text, html string, err error) {
	subject, err = renderText("templates/"+name+".subject.tmpl", data)
	if err != nil {
		return "", "", "", err
	}
	text, err = renderText("templates/"+name+".text.tmpl", data)
	if err != nil {
		return "", "", "", err
	}
	html, err = renderHTML("templates/"+name+".html.tmpl", data)
	if err != nil {
		return "", "", "", err
	}
	return strings.TrimSpace(subject), text, html, nil
}

func renderText(filename string, data any) (string, error) {
	tpl, err := texttpl.New(baseName(filename)).Option("missingkey=error").ParseFS(templatesFS, filename)
	if err != nil {
		return "", errors.New("parsing template error: " + err.Error())
	}
	var buf bytes.Buffer
	if err = tpl.Execute(&buf, data); err != nil {
		return "", errors.New("executing template error: " + err.Error())
	}
	return buf.String(), nil
}

func renderHTML(filename string, data any) (string, error) {
	tpl, err := htmpl.New(baseName(filename)).Option("missingkey=error").ParseFS(templatesFS, filename)
	if err != nil {
		return "", errors.New("parsing template error: " + err.Error())
	}
	var buf bytes.Buffer
	if err = tpl.Execute(&buf, data); err != nil {
		return "", errors.New("executing template error: " + err.Error())
	}
	return buf.String(), nil
}

func baseName(path string) string {
	return path[strings.LastIndex(path, "/")+1:]
}
