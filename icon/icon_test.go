package icon

import (
	"strings"
	"testing"

	"faicon/css"
	"faicon/fa"
	"faicon/markup"
)

func class(t *testing.T, e *markup.Element) string {
	t.Helper()
	v, ok := e.Attr("class")
	if !ok {
		t.Fatal("class attribute is missing")
	}
	return v
}

func assertClasses(t *testing.T, e *markup.Element, classes ...string) {
	t.Helper()
	got := class(t, e)
	for _, c := range classes {
		if !strings.Contains(got, c) {
			t.Errorf("class %q does not contain %q", got, c)
		}
	}
}

func TestIcon_Basic(t *testing.T) {
	i := New(fa.GlyphCheck, fa.FamilySolid)
	e := i.View()

	if e.Tag != "i" {
		t.Errorf("Tag = %q, want %q", e.Tag, "i")
	}
	// glyph first, as given
	if got := class(t, e); got != "fa-check fas" {
		t.Errorf("class = %q, want %q", got, "fa-check fas")
	}
	if _, ok := e.Attr(StyleAttr); ok {
		t.Error("unexpected style attribute")
	}
	if _, ok := e.Attr(TransformAttr); ok {
		t.Error("unexpected data-fa-transform attribute")
	}
	if len(e.Children) != 0 {
		t.Errorf("icon has %d children, want 0", len(e.Children))
	}
}

func TestIcon_FamilyFirst(t *testing.T) {
	e := New(fa.FamilySolid, fa.GlyphCheck).View()
	if got := class(t, e); got != "fas fa-check" {
		t.Errorf("class = %q, want %q", got, "fas fa-check")
	}
}

func TestIcon_Advanced(t *testing.T) {
	i := New(
		fa.FamilySolid,
		fa.GlyphCheck,
		fa.FixedWidth,
		fa.SizeX3,
		fa.Rotate180,
		fa.AnimationPulse,
		fa.LayoutInverse,
	).WithTransform(fa.Grow(3), fa.Right(5), fa.Rotate(-33), fa.FlipH).
		WithStyle(css.TextColor{Color: css.ColorDanger})

	e := i.View()
	assertClasses(t, e, "fas", "fa-check", "fa-fw", "fa-3x", "fa-rotate-180", "fa-pulse", "fa-inverse")
	if got, want := class(t, e), "fas fa-check fa-fw fa-3x fa-rotate-180 fa-pulse fa-inverse"; got != want {
		t.Errorf("class = %q, want %q", got, want)
	}

	tr, ok := e.Attr(TransformAttr)
	if !ok {
		t.Fatal("data-fa-transform attribute is missing")
	}
	if want := "grow-3 right-5 rotate--33 flip-h"; tr != want {
		t.Errorf("data-fa-transform = %q, want %q", tr, want)
	}

	st, ok := e.Attr(StyleAttr)
	if !ok {
		t.Fatal("style attribute is missing")
	}
	if want := "color:#f14668"; st != want {
		t.Errorf("style = %q, want %q", st, want)
	}
}

func TestIcon_OrderPreserved(t *testing.T) {
	tests := []struct {
		name  string
		props []fa.Prop
		want  string
	}{
		{name: "single", props: []fa.Prop{fa.GlyphBan}, want: "fa-ban"},
		{name: "reverse", props: []fa.Prop{fa.SizeX2, fa.FamilyRegular, fa.GlyphUser}, want: "fa-2x far fa-user"},
		{name: "duplicates kept", props: []fa.Prop{fa.GlyphCheck, fa.GlyphCheck}, want: "fa-check fa-check"},
		{name: "conflicts kept", props: []fa.Prop{fa.GlyphCheck, fa.GlyphTimes}, want: "fa-check fa-times"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := class(t, New(tt.props...).View()); got != tt.want {
				t.Errorf("class = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIcon_EmptyProps(t *testing.T) {
	e := Icon{}.View()
	if got := class(t, e); got != "" {
		t.Errorf("class = %q, want empty", got)
	}
	if got := New().Class(); got != "" {
		t.Errorf("New().Class() = %q, want empty", got)
	}
}

func TestIcon_AbsentVersusEmptyGroups(t *testing.T) {
	tests := []struct {
		name          string
		icon          Icon
		wantStyle     bool
		wantTransform bool
	}{
		{name: "both absent", icon: New(fa.GlyphCheck)},
		{name: "empty style", icon: New(fa.GlyphCheck).WithStyle(), wantStyle: true},
		{name: "empty transform", icon: New(fa.GlyphCheck).WithTransform(), wantTransform: true},
		{name: "both empty", icon: New(fa.GlyphCheck).WithStyle().WithTransform(), wantStyle: true, wantTransform: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := tt.icon.View()

			st, ok := e.Attr(StyleAttr)
			if ok != tt.wantStyle {
				t.Errorf("style present = %v, want %v", ok, tt.wantStyle)
			}
			if ok && st != "" {
				t.Errorf("style = %q, want empty", st)
			}

			tr, ok := e.Attr(TransformAttr)
			if ok != tt.wantTransform {
				t.Errorf("data-fa-transform present = %v, want %v", ok, tt.wantTransform)
			}
			if ok && tr != "" {
				t.Errorf("data-fa-transform = %q, want empty", tr)
			}
		})
	}
}

func TestIcon_StyleJoinedWithSemicolon(t *testing.T) {
	e := New(fa.GlyphCheck).
		AddCSS(css.TextColor{Color: css.ColorInfo}).
		AddCSS(css.Declaration{Property: "opacity", Value: ".5"}).
		View()

	if st, _ := e.Attr(StyleAttr); st != "color:#3e8ed0;opacity:.5" {
		t.Errorf("style = %q, want %q", st, "color:#3e8ed0;opacity:.5")
	}
}

func TestIcon_ModifiersDoNotMutateReceiver(t *testing.T) {
	base := New(fa.GlyphCheck, fa.FamilySolid)
	before := markup.Dump(base.View())

	withProp := base.AddProp(fa.FixedWidth)
	withCSS := base.AddCSS(css.TextColor{Color: css.ColorDanger})
	withTransform := base.AddTransform(fa.Grow(2))

	if after := markup.Dump(base.View()); after != before {
		t.Errorf("receiver changed after modifiers:\nbefore %s\nafter %s", before, after)
	}
	if got := withProp.Class(); got != "fa-check fas fa-fw" {
		t.Errorf("AddProp result class = %q", got)
	}
	if _, ok := withCSS.Style(); !ok {
		t.Error("AddCSS result has no style group")
	}
	if _, ok := base.Style(); ok {
		t.Error("AddCSS made receiver style group present")
	}
	if tr, ok := withTransform.Transform(); !ok || len(tr) != 1 {
		t.Errorf("AddTransform result transform = %v, %v", tr, ok)
	}
	if _, ok := base.Transform(); ok {
		t.Error("AddTransform made receiver transform group present")
	}
}

func TestIcon_SiblingsDoNotShareBackingArray(t *testing.T) {
	// spare capacity in receiver must not let siblings overwrite each other
	props := make([]fa.Prop, 1, 8)
	props[0] = fa.GlyphCheck
	base := New(props...)

	a := base.AddProp(fa.SizeX2)
	b := base.AddProp(fa.SizeX3)

	if got := a.Class(); got != "fa-check fa-2x" {
		t.Errorf("a.Class() = %q", got)
	}
	if got := b.Class(); got != "fa-check fa-3x" {
		t.Errorf("b.Class() = %q", got)
	}

	props[0] = fa.GlyphBan
	if got := base.Class(); got != "fa-check" {
		t.Errorf("New() kept reference to caller slice, class = %q", got)
	}
}

func TestIcon_AccessorsReturnCopies(t *testing.T) {
	i := New(fa.GlyphCheck).AddCSS(css.TextColor{Color: css.ColorDanger})

	p := i.Props()
	p[0] = fa.GlyphBan
	s, _ := i.Style()
	s[0] = css.TextColor{Color: css.ColorInfo}

	if got := i.Class(); got != "fa-check" {
		t.Errorf("Props() exposed internal slice, class = %q", got)
	}
	if st, _ := i.View().Attr(StyleAttr); st != "color:#f14668" {
		t.Errorf("Style() exposed internal slice, style = %q", st)
	}
}

func TestIcon_ViewIsDeterministic(t *testing.T) {
	i := New(fa.GlyphCheck, fa.FamilySolid).
		AddTransform(fa.Shrink(4)).
		AddCSS(css.Background{Color: css.ColorDark})
	first := markup.Dump(i.View())
	for range 5 {
		if got := markup.Dump(i.View()); got != first {
			t.Fatalf("View() changed between calls:\n%s\n%s", first, got)
		}
	}
}
