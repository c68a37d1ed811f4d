package render

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"faicon/markup"
	"faicon/sheet"
)

const (
	EntryClass = "faicon-entry"
	LabelClass = "faicon-label"
	IDMetaName = "faicon-id"
)

// DocumentOptions controls document assembly.
type DocumentOptions struct {
	StylesheetURL string
	InlineStyle   string
	Labels        bool
}

// DocumentID returns sheet id when set, otherwise new time ordered uuid.
func DocumentID(s *sheet.Sheet) string {
	if s.ID != "" {
		return s.ID
	}
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// EntryID makes entry name usable as element id.
func EntryID(name string) string {
	if id := slug.Make(name); id != "" {
		return id
	}
	return "entry"
}

// uniqueID returns base or first free base-N, different names may slug
// the same way and a suffixed id may match another entry slug.
func uniqueID(base string, used map[string]bool) string {
	id := base
	for n := 2; used[id]; n++ {
		id = base + "-" + strconv.Itoa(n)
	}
	used[id] = true
	return id
}

// EntryLabel returns explicit label as is. Entries without label get their
// name split into words and title cased according to the sheet language.
func EntryLabel(e sheet.Entry, lang language.Tag) string {
	if e.Label != "" {
		return e.Label
	}
	words := strings.FieldsFunc(e.Name, func(r rune) bool {
		return r == '-' || r == '_'
	})
	return cases.Title(lang).String(strings.Join(words, " "))
}

func sheetLanguage(s *sheet.Sheet) language.Tag {
	if s.Language == "" {
		return language.Und
	}
	tag, err := language.Parse(s.Language)
	if err != nil {
		return language.Und
	}
	return tag
}

// BuildDocument wraps every resolved entry into its own block.
func BuildDocument(s *sheet.Sheet, entries []sheet.Entry, id string, opts DocumentOptions) *markup.Document {
	doc := &markup.Document{
		Title:       s.Title,
		Language:    s.Language,
		InlineStyle: opts.InlineStyle,
		Meta:        []markup.Attr{{Name: IDMetaName, Value: id}},
	}
	if opts.StylesheetURL != "" {
		doc.Stylesheets = append(doc.Stylesheets, opts.StylesheetURL)
	}

	lang := sheetLanguage(s)
	used := make(map[string]bool, len(entries))
	for _, e := range entries {
		eid := uniqueID(EntryID(e.Name), used)

		block := markup.NewElement("div", EntryClass).SetAttr("id", eid)
		block.Append(e.View.View())
		if opts.Labels {
			block.Append(markup.NewElement("span", LabelClass).Append(markup.Text(EntryLabel(e, lang))))
		}
		doc.Body = append(doc.Body, block)
	}
	return doc
}
