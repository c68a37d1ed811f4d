package fa

import (
	"fmt"
	"strings"
)

type propParser struct {
	kind  string
	parse func(string) (Prop, error)
}

func wrapParse[T Prop](f func(string) (T, error)) func(string) (Prop, error) {
	return func(name string) (Prop, error) {
		v, err := f(name)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// Order matters for bare names: glyph goes last so that property keywords
// are never shadowed by glyphs.
var propParsers = []propParser{
	{kind: "flag", parse: wrapParse(ParseFlag)},
	{kind: "family", parse: wrapParse(ParseFamily)},
	{kind: "size", parse: wrapParse(ParseSize)},
	{kind: "rotation", parse: wrapParse(ParseRotation)},
	{kind: "animation", parse: wrapParse(ParseAnimation)},
	{kind: "layout", parse: wrapParse(ParseLayout)},
	{kind: "glyph", parse: wrapParse(ParseGlyph)},
}

// ParseProp converts textual property specification into Prop. Specification
// is either "kind:name" (e.g. "glyph:check", "size:3x") or bare name which is
// tried against every kind in turn ("fw", "solid", "3x", "check").
func ParseProp(spec string) (Prop, error) {
	spec = strings.TrimSpace(spec)
	if kind, name, found := strings.Cut(spec, ":"); found {
		kind, name = strings.TrimSpace(kind), strings.TrimSpace(name)
		for _, p := range propParsers {
			if p.kind == kind {
				return p.parse(name)
			}
		}
		return nil, fmt.Errorf("property %q: %w, unknown kind %q", spec, ErrUnknownToken, kind)
	}
	for _, p := range propParsers {
		if v, err := p.parse(spec); err == nil {
			return v, nil
		}
	}
	return nil, fmt.Errorf("property %q: %w", spec, ErrUnknownToken)
}
