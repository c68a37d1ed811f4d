package fa

import (
	"fmt"
	"strconv"
	"strings"
)

// Transform is a single power transform directive rendered into the
// data-fa-transform attribute. Amounts are kept literally, so Rotate(-33)
// becomes "rotate--33".
type Transform interface {
	// Class returns transform token, e.g. "grow-3".
	Class() string
	transform()
}

type (
	// Grow scales icon up by n/16 em.
	Grow int
	// Shrink scales icon down by n/16 em.
	Shrink int
	Up     int
	Down   int
	Left   int
	Right  int
	// Rotate rotates icon by signed number of degrees.
	Rotate int
	// Flip mirrors icon along one of the axes.
	Flip int
)

const (
	FlipH Flip = iota
	FlipV
)

var flipNames = []string{"flip-h", "flip-v"}

func (n Grow) Class() string   { return "grow-" + strconv.Itoa(int(n)) }
func (n Shrink) Class() string { return "shrink-" + strconv.Itoa(int(n)) }
func (n Up) Class() string     { return "up-" + strconv.Itoa(int(n)) }
func (n Down) Class() string   { return "down-" + strconv.Itoa(int(n)) }
func (n Left) Class() string   { return "left-" + strconv.Itoa(int(n)) }
func (n Right) Class() string  { return "right-" + strconv.Itoa(int(n)) }
func (n Rotate) Class() string { return "rotate-" + strconv.Itoa(int(n)) }
func (f Flip) Class() string   { return mustName("Flip", flipNames, f) }

func (Grow) transform()   {}
func (Shrink) transform() {}
func (Up) transform()     {}
func (Down) transform()   {}
func (Left) transform()   {}
func (Right) transform()  {}
func (Rotate) transform() {}
func (Flip) transform()   {}

func (f Flip) String() string {
	if name, ok := nameOf(flipNames, f); ok {
		return name
	}
	return "Flip(" + strconv.Itoa(int(f)) + ")"
}

func (f Flip) IsValid() bool {
	_, ok := nameOf(flipNames, f)
	return ok
}

var amountTransforms = map[string]func(int) Transform{
	"grow":   func(n int) Transform { return Grow(n) },
	"shrink": func(n int) Transform { return Shrink(n) },
	"up":     func(n int) Transform { return Up(n) },
	"down":   func(n int) Transform { return Down(n) },
	"left":   func(n int) Transform { return Left(n) },
	"right":  func(n int) Transform { return Right(n) },
	"rotate": func(n int) Transform { return Rotate(n) },
}

// ParseTransform converts transform token back into Transform, accepts the
// same format Class produces: "grow-3", "rotate--33", "flip-h".
func ParseTransform(spec string) (Transform, error) {
	spec = strings.TrimSpace(spec)
	if f, err := valueOf[Flip]("Flip", flipNames, spec); err == nil {
		return f, nil
	}

	op, amount, found := strings.Cut(spec, "-")
	if !found {
		return nil, fmt.Errorf("transform %q: %w, amount is missing", spec, ErrUnknownToken)
	}
	mk, ok := amountTransforms[op]
	if !ok {
		return nil, fmt.Errorf("transform %q: %w", spec, ErrUnknownToken)
	}
	n, err := strconv.Atoi(amount)
	if err != nil {
		return nil, fmt.Errorf("transform %q: bad amount: %w", spec, err)
	}
	return mk(n), nil
}
