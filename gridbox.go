package gridbox

import "github.com/grindlemire/gridbox/internal/grid"

// Gridbox aligns its children in a rectangular array of cells.
//
// Child grid positions do not need to be specified in any particular
// order; laying out by rows, by columns, or in any other order all work.
// A child without an explicit position lands one cell to the right of
// the previous child. Placing two children in the same cell overlays
// them rather than erroring.
//
// Each column and row is assigned the maximum weight of all of its
// cells, so assigning a weight to just one child is often enough to get
// the desired effect. If all weights are zero, excess space is
// distributed evenly, as if all weights were one.
//
// A Gridbox must be measured before it is laid out, and is not safe for
// concurrent use: the host invokes Measure and Layout on one logical
// thread per container.
type Gridbox struct {
	children []Child
	solver   grid.Solver

	measuredW, measuredH int
}

// New creates a Gridbox with the given options.
func New(opts ...Option) *Gridbox {
	g := &Gridbox{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Add appends children to the grid.
func (g *Gridbox) Add(children ...Child) *Gridbox {
	g.children = append(g.children, children...)
	g.solver.Invalidate()
	return g
}

// AddAt appends a child at an explicit grid position.
func (g *Gridbox) AddAt(child Child, col, row int) *Gridbox {
	spec := child.GridSpec()
	spec.Col, spec.Row = col, row
	return g.Add(child)
}

// Remove detaches a child from the grid. Removing a child that is not
// present is a no-op.
func (g *Gridbox) Remove(child Child) *Gridbox {
	for i, c := range g.children {
		if c == child {
			g.children = append(g.children[:i], g.children[i+1:]...)
			g.solver.Invalidate()
			break
		}
	}
	return g
}

// Len returns the number of children, visible or not.
func (g *Gridbox) Len() int {
	return len(g.children)
}

// Children returns the children in their insertion order.
func (g *Gridbox) Children() []Child {
	out := make([]Child, len(g.children))
	copy(out, g.children)
	return out
}

// Measure computes the container's desired size under the given
// constraints and prepares the column/row sizes consumed by Layout.
func (g *Gridbox) Measure(width, height Constraint) (int, int) {
	g.measuredW, g.measuredH = g.solver.Measure(g.children, width, height)
	return g.measuredW, g.measuredH
}

// Layout assigns final bounds to every child using the sizes computed by
// the preceding Measure call.
func (g *Gridbox) Layout() {
	g.solver.Arrange(g.children)
}

// MeasuredSize returns the size reported by the last Measure call.
func (g *Gridbox) MeasuredSize() (int, int) {
	return g.measuredW, g.measuredH
}

// Cols returns the number of grid columns.
func (g *Gridbox) Cols() int { return g.solver.Cols() }

// Rows returns the number of grid rows.
func (g *Gridbox) Rows() int { return g.solver.Rows() }

// ColumnWidths returns the assigned column widths from the most recent
// Measure.
func (g *Gridbox) ColumnWidths() []int { return g.solver.ColumnWidths() }

// RowHeights returns the assigned row heights from the most recent
// Measure.
func (g *Gridbox) RowHeights() []int { return g.solver.RowHeights() }

// SetDefaultGravity sets the gravity applied to children that do not
// specify their own. Changing it triggers re-layout on the next pass.
func (g *Gridbox) SetDefaultGravity(h, v Gravity) *Gridbox {
	if g.solver.DefaultHGravity != h || g.solver.DefaultVGravity != v {
		g.solver.DefaultHGravity, g.solver.DefaultVGravity = h, v
		g.solver.Invalidate()
	}
	return g
}

// SetInnerMargin sets the spacing used on all sides of children that do
// not specify a margin of their own.
func (g *Gridbox) SetInnerMargin(m int) *Gridbox {
	if g.solver.InnerMargin != m {
		g.solver.InnerMargin = m
		g.solver.Invalidate()
	}
	return g
}

// SetPadding sets the container's own inner padding.
func (g *Gridbox) SetPadding(e Edges) *Gridbox {
	if g.solver.Padding != e {
		g.solver.Padding = e
		g.solver.Invalidate()
	}
	return g
}

// SetForceUniformWidth forces all columns toward equal width. Excess
// space is assigned to columns to achieve a uniform size; if there is
// not enough, the closest achievable distribution is used. Any remaining
// excess is then distributed by weight, so for a truly uniform result
// the weights should all be the same.
func (g *Gridbox) SetForceUniformWidth(uniform bool) *Gridbox {
	if g.solver.UniformWidth != uniform {
		g.solver.UniformWidth = uniform
		g.solver.Invalidate()
	}
	return g
}

// SetForceUniformHeight forces all rows toward equal height. See
// SetForceUniformWidth for how shortfalls are handled.
func (g *Gridbox) SetForceUniformHeight(uniform bool) *Gridbox {
	if g.solver.UniformHeight != uniform {
		g.solver.UniformHeight = uniform
		g.solver.Invalidate()
	}
	return g
}

// ForceUniformWidth reports whether uniform column widths are requested.
func (g *Gridbox) ForceUniformWidth() bool { return g.solver.UniformWidth }

// ForceUniformHeight reports whether uniform row heights are requested.
func (g *Gridbox) ForceUniformHeight() bool { return g.solver.UniformHeight }
