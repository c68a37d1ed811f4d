// Package fa defines Font Awesome presentation tokens. Every value maps to
// exactly one class token, the mapping is total and never interpreted by the
// code composing icons.
package fa

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownToken is returned (wrapped) when name could not be parsed into a
// token of requested kind.
var ErrUnknownToken = errors.New("unknown token")

func nameOf[T ~int](names []string, v T) (string, bool) {
	if v < 0 || int(v) >= len(names) {
		return "", false
	}
	return names[v], true
}

func mustName[T ~int](kind string, names []string, v T) string {
	name, ok := nameOf(names, v)
	if !ok {
		// this should never happen
		panic(fmt.Sprintf("%s(%d) is not a valid %s", kind, int(v), kind))
	}
	return name
}

func valueOf[T ~int](kind string, names []string, name string) (T, error) {
	for i, n := range names {
		if n == name {
			return T(i), nil
		}
	}
	return 0, fmt.Errorf("%q is %w for %s, try [%s]", name, ErrUnknownToken, kind, strings.Join(names, ", "))
}

func namesOf(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}
