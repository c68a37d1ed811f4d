// Package css defines inline style tokens used by icons and a small parser
// for inline declaration lists.
package css

import (
	"strconv"
	"strings"
)

// Style is a single inline style directive. Rendered styles of an icon are
// joined with ";" into its style attribute.
type Style interface {
	// Inline returns directive text, e.g. "color:#f14668".
	Inline() string
	style()
}

// Color is one of the named palette colors (Bulma palette).
type Color int

const (
	ColorWhite Color = iota
	ColorBlack
	ColorLight
	ColorDark
	ColorPrimary
	ColorLink
	ColorInfo
	ColorSuccess
	ColorWarning
	ColorDanger
)

var (
	colorNames  = []string{"white", "black", "light", "dark", "primary", "link", "info", "success", "warning", "danger"}
	colorValues = []string{"#ffffff", "#0a0a0a", "#f5f5f5", "#363636", "#00d1b2", "#485fc7", "#3e8ed0", "#48c78e", "#ffe08a", "#f14668"}
)

func (c Color) String() string {
	if c.IsValid() {
		return colorNames[c]
	}
	return "Color(" + strconv.Itoa(int(c)) + ")"
}

func (c Color) IsValid() bool {
	return c >= 0 && int(c) < len(colorNames)
}

// Value returns CSS color value.
func (c Color) Value() string {
	if !c.IsValid() {
		// this should never happen
		panic("unsupported color requested: " + c.String())
	}
	return colorValues[c]
}

// ParseColor attempts to convert a string to a Color.
func ParseColor(name string) (Color, bool) {
	for i, n := range colorNames {
		if n == name {
			return Color(i), true
		}
	}
	return 0, false
}

// ColorNames returns a list of possible string values of Color.
func ColorNames() []string {
	out := make([]string, len(colorNames))
	copy(out, colorNames)
	return out
}

type (
	// TextColor sets foreground (glyph) color.
	TextColor struct{ Color Color }
	// Background sets background color.
	Background struct{ Color Color }
	// Declaration is an arbitrary "property:value" pair.
	Declaration struct {
		Property string
		Value    string
	}
)

func (s TextColor) Inline() string  { return "color:" + s.Color.Value() }
func (s Background) Inline() string { return "background-color:" + s.Color.Value() }
func (d Declaration) Inline() string {
	return strings.ToLower(d.Property) + ":" + d.Value
}

func (TextColor) style()   {}
func (Background) style()  {}
func (Declaration) style() {}
