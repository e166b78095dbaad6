package gridbox

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Compile-time check that Box implements Child.
var _ Child = (*Box)(nil)

// Box is a basic measurable child: a preferred size, optionally derived
// from a text label, plus grid placement parameters. It plays the role
// a host toolkit's widget would — reporting a size under measurement
// constraints and recording the bounds it is assigned.
type Box struct {
	spec         Spec
	prefW, prefH int
	label        string
	hidden       bool

	mw, mh int
	bounds Rect
}

// NewBox creates a Box with a fixed preferred size.
func NewBox(width, height int) *Box {
	return &Box{spec: DefaultSpec(), prefW: width, prefH: height}
}

// NewTextBox creates a Box whose preferred size is the display size of
// its label: the widest line in terminal cells by the number of lines.
func NewTextBox(label string) *Box {
	b := &Box{spec: DefaultSpec(), label: label}
	for _, line := range strings.Split(label, "\n") {
		if w := runewidth.StringWidth(line); w > b.prefW {
			b.prefW = w
		}
		b.prefH++
	}
	return b
}

// At sets an explicit grid position.
func (b *Box) At(col, row int) *Box {
	b.spec.Col, b.spec.Row = col, row
	return b
}

// Span sets the number of columns and rows the box occupies.
func (b *Box) Span(colSpan, rowSpan int) *Box {
	b.spec.ColSpan, b.spec.RowSpan = colSpan, rowSpan
	return b
}

// Margin sets the spacing around the box inside its cell region.
func (b *Box) Margin(e Edges) *Box {
	b.spec.Margin = e
	return b
}

// Gravity sets how the box is aligned within its cell region.
func (b *Box) Gravity(h, v Gravity) *Box {
	b.spec.HGravity, b.spec.VGravity = h, v
	return b
}

// Weight sets the box's relative shares of excess space.
func (b *Box) Weight(x, y float64) *Box {
	b.spec.WeightX, b.spec.WeightY = x, y
	return b
}

// Hide removes the box from layout without detaching it.
func (b *Box) Hide() *Box {
	b.hidden = true
	return b
}

// Show makes a hidden box participate in layout again.
func (b *Box) Show() *Box {
	b.hidden = false
	return b
}

// Label returns the box's text label, if any.
func (b *Box) Label() string { return b.label }

// Bounds returns the rectangle assigned by the last layout pass.
func (b *Box) Bounds() Rect { return b.bounds }

// GridSpec implements Child.
func (b *Box) GridSpec() *Spec { return &b.spec }

// Visible implements Child.
func (b *Box) Visible() bool { return !b.hidden }

// Measure implements Child. The preferred size yields under the
// constraint modes: an exact budget is adopted outright, an at-most
// budget caps the preferred size, and an unspecified budget leaves it
// untouched.
func (b *Box) Measure(width, height Constraint) (int, int) {
	b.mw = resolvePreferred(b.prefW, width)
	b.mh = resolvePreferred(b.prefH, height)
	return b.mw, b.mh
}

// MeasuredSize implements Child.
func (b *Box) MeasuredSize() (int, int) { return b.mw, b.mh }

// SetBounds implements Child.
func (b *Box) SetBounds(r Rect) { b.bounds = r }

func resolvePreferred(pref int, c Constraint) int {
	switch c.Mode {
	case ModeExactly:
		return c.Size
	case ModeAtMost:
		if pref > c.Size {
			return c.Size
		}
		return pref
	default:
		return pref
	}
}
