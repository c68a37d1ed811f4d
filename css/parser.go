package css

import (
	"errors"
	"fmt"
	"io"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses textual style specifications into Style tokens.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// ParseInline parses body of inline style attribute ("color: red; opacity: .5")
// into list of declarations in source order.
func (p *Parser) ParseInline(text string) ([]Declaration, error) {
	parser := css.NewParser(parse.NewInputString(text), true)

	var decls []Declaration
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("unable to parse inline style %q: %w", text, err)
			}
			if len(decls) == 0 {
				return nil, fmt.Errorf("inline style %q has no declarations", text)
			}
			return decls, nil

		case css.DeclarationGrammar, css.CustomPropertyGrammar:
			value := joinValue(parser.Values())
			if value == "" {
				return nil, fmt.Errorf("inline style %q: declaration %q has no value", text, string(data))
			}
			d := Declaration{Property: strings.ToLower(string(data)), Value: value}
			p.log.Debug("Parsed declaration", zap.String("property", d.Property), zap.String("value", d.Value))
			decls = append(decls, d)

		case css.CommentGrammar:
			continue

		default:
			return nil, fmt.Errorf("inline style %q: unexpected %s", text, gt.String())
		}
	}
}

// ParseStyle converts style specification into Style. Palette shortcuts
// "color:<name>" and "background:<name>" give TextColor and Background,
// anything else must be exactly one valid declaration.
func (p *Parser) ParseStyle(spec string) (Style, error) {
	spec = strings.TrimSpace(spec)
	if prop, name, found := strings.Cut(spec, ":"); found {
		name = strings.TrimSpace(name)
		switch strings.TrimSpace(prop) {
		case "color":
			if c, ok := ParseColor(name); ok {
				return TextColor{Color: c}, nil
			}
		case "background":
			if c, ok := ParseColor(name); ok {
				return Background{Color: c}, nil
			}
		}
	}

	decls, err := p.ParseInline(spec)
	if err != nil {
		return nil, err
	}
	if len(decls) != 1 {
		return nil, fmt.Errorf("style %q must have exactly one declaration, has %d", spec, len(decls))
	}
	return decls[0], nil
}

// joinValue builds raw value string collapsing whitespace between tokens.
func joinValue(tokens []css.Token) string {
	var parts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			parts = append(parts, string(t.Data))
		} else if len(parts) > 0 {
			parts = append(parts, " ")
		}
	}
	return strings.TrimSpace(strings.Join(parts, ""))
}
