package config

import (
	"fmt"
	"strings"
)

// OutputFmt is requested rendering format.
type OutputFmt int

const (
	OutputFmtXhtml OutputFmt = iota
	OutputFmtHtml
)

var outputFmtNames = []string{
	OutputFmtXhtml: "xhtml",
	OutputFmtHtml:  "html",
}

func (o OutputFmt) String() string {
	if o.IsValid() {
		return outputFmtNames[o]
	}
	return fmt.Sprintf("OutputFmt(%d)", int(o))
}

func (o OutputFmt) IsValid() bool {
	return o >= 0 && int(o) < len(outputFmtNames)
}

func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtXhtml:
		return ".xhtml"
	case OutputFmtHtml:
		return ".html"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}

func (o OutputFmt) MarshalText() ([]byte, error) {
	if !o.IsValid() {
		return nil, fmt.Errorf("%d is not a valid OutputFmt", int(o))
	}
	return []byte(o.String()), nil
}

func (o *OutputFmt) UnmarshalText(text []byte) error {
	v, err := ParseOutputFmt(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// ParseOutputFmt is case insensitive.
func ParseOutputFmt(name string) (OutputFmt, error) {
	for i, n := range outputFmtNames {
		if strings.EqualFold(n, name) {
			return OutputFmt(i), nil
		}
	}
	return 0, fmt.Errorf("%s is not a valid OutputFmt, try [%s]", name, strings.Join(outputFmtNames, ", "))
}

func OutputFmtNames() []string {
	return append([]string(nil), outputFmtNames...)
}
