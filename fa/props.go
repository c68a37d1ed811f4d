package fa

import "strconv"

// Prop is a single display property of an icon. Set of implementations is
// closed: Glyph, Family, Flag, Size, Rotation, Animation and Layout.
type Prop interface {
	// Class returns class token for the property.
	Class() string
	prop()
}

// Style family (weight) of the glyph.
type Family int

const (
	FamilySolid Family = iota
	FamilyRegular
	FamilyLight
	FamilyDuotone
	FamilyBrands
)

var (
	familyNames   = []string{"solid", "regular", "light", "duotone", "brands"}
	familyClasses = []string{"fas", "far", "fal", "fad", "fab"}
)

func (f Family) String() string {
	if name, ok := nameOf(familyNames, f); ok {
		return name
	}
	return "Family(" + strconv.Itoa(int(f)) + ")"
}

func (f Family) IsValid() bool {
	_, ok := nameOf(familyNames, f)
	return ok
}

func (f Family) Class() string {
	return mustName("Family", familyClasses, f)
}

func (Family) prop() {}

func ParseFamily(name string) (Family, error) {
	return valueOf[Family]("Family", familyNames, name)
}

func FamilyNames() []string {
	return namesOf(familyNames)
}

// Boolean (presence only) properties.
type Flag int

const (
	FixedWidth Flag = iota
	ListItem
)

var flagNames = []string{"fw", "li"}

func (f Flag) String() string {
	if name, ok := nameOf(flagNames, f); ok {
		return name
	}
	return "Flag(" + strconv.Itoa(int(f)) + ")"
}

func (f Flag) IsValid() bool {
	_, ok := nameOf(flagNames, f)
	return ok
}

func (f Flag) Class() string {
	return "fa-" + mustName("Flag", flagNames, f)
}

func (Flag) prop() {}

func ParseFlag(name string) (Flag, error) {
	return valueOf[Flag]("Flag", flagNames, name)
}

func FlagNames() []string {
	return namesOf(flagNames)
}

// Icon size relative to surrounding text.
type Size int

const (
	SizeXs Size = iota
	SizeSm
	SizeLg
	SizeX2
	SizeX3
	SizeX4
	SizeX5
	SizeX6
	SizeX7
	SizeX8
	SizeX9
	SizeX10
)

var sizeNames = []string{"xs", "sm", "lg", "2x", "3x", "4x", "5x", "6x", "7x", "8x", "9x", "10x"}

func (s Size) String() string {
	if name, ok := nameOf(sizeNames, s); ok {
		return name
	}
	return "Size(" + strconv.Itoa(int(s)) + ")"
}

func (s Size) IsValid() bool {
	_, ok := nameOf(sizeNames, s)
	return ok
}

// Class returns size class token, e.g. "fa-3x".
func (s Size) Class() string {
	return "fa-" + mustName("Size", sizeNames, s)
}

func (Size) prop() {}

func ParseSize(name string) (Size, error) {
	return valueOf[Size]("Size", sizeNames, name)
}

func SizeNames() []string {
	return namesOf(sizeNames)
}

// Fixed rotations and flips applied with classes (as opposed to power
// transforms).
type Rotation int

const (
	Rotate90 Rotation = iota
	Rotate180
	Rotate270
	FlipHorizontal
	FlipVertical
	FlipBoth
)

var rotationNames = []string{"rotate-90", "rotate-180", "rotate-270", "flip-horizontal", "flip-vertical", "flip-both"}

func (r Rotation) String() string {
	if name, ok := nameOf(rotationNames, r); ok {
		return name
	}
	return "Rotation(" + strconv.Itoa(int(r)) + ")"
}

func (r Rotation) IsValid() bool {
	_, ok := nameOf(rotationNames, r)
	return ok
}

func (r Rotation) Class() string {
	return "fa-" + mustName("Rotation", rotationNames, r)
}

func (Rotation) prop() {}

func ParseRotation(name string) (Rotation, error) {
	return valueOf[Rotation]("Rotation", rotationNames, name)
}

func RotationNames() []string {
	return namesOf(rotationNames)
}

type Animation int

const (
	AnimationSpin Animation = iota
	AnimationPulse
)

var animationNames = []string{"spin", "pulse"}

func (a Animation) String() string {
	if name, ok := nameOf(animationNames, a); ok {
		return name
	}
	return "Animation(" + strconv.Itoa(int(a)) + ")"
}

func (a Animation) IsValid() bool {
	_, ok := nameOf(animationNames, a)
	return ok
}

func (a Animation) Class() string {
	return "fa-" + mustName("Animation", animationNames, a)
}

func (Animation) prop() {}

func ParseAnimation(name string) (Animation, error) {
	return valueOf[Animation]("Animation", animationNames, name)
}

func AnimationNames() []string {
	return namesOf(animationNames)
}

// Layout role of the icon within surrounding content. Stack roles are
// assigned by stacked icons and map to "fa-stack-1x" (top, regular size) and
// "fa-stack-2x" (bottom, double size).
type Layout int

const (
	LayoutBorder Layout = iota
	LayoutPullLeft
	LayoutPullRight
	LayoutInverse
	LayoutStackTop
	LayoutStackBottom
)

var (
	layoutNames   = []string{"border", "pull-left", "pull-right", "inverse", "stack-top", "stack-bottom"}
	layoutClasses = []string{"fa-border", "fa-pull-left", "fa-pull-right", "fa-inverse", "fa-stack-1x", "fa-stack-2x"}
)

func (l Layout) String() string {
	if name, ok := nameOf(layoutNames, l); ok {
		return name
	}
	return "Layout(" + strconv.Itoa(int(l)) + ")"
}

func (l Layout) IsValid() bool {
	_, ok := nameOf(layoutNames, l)
	return ok
}

func (l Layout) Class() string {
	return mustName("Layout", layoutClasses, l)
}

func (Layout) prop() {}

func ParseLayout(name string) (Layout, error) {
	return valueOf[Layout]("Layout", layoutNames, name)
}

func LayoutNames() []string {
	return namesOf(layoutNames)
}
