package render

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"faicon/config"
)

// Values holds variables available for output name template expansion.
type Values struct {
	Context    string
	Title      string
	Language   string
	ID         string
	Format     string
	SourceFile string
	Entries    []string
}

func newValues(name config.TemplateFieldName, title, lang, id, src string, format config.OutputFmt, entries []string) Values {
	return Values{
		Context:    string(name),
		Title:      title,
		Language:   lang,
		ID:         id,
		Format:     format.String(),
		SourceFile: strings.TrimSuffix(filepath.Base(src), filepath.Ext(src)),
		Entries:    entries,
	}
}

func expandTemplate(name config.TemplateFieldName, field string, values Values) (string, error) {
	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}
