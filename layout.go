// layout.go re-exports layout types from internal/grid.
// Any changes to internal/grid types must be mirrored here.
package gridbox

import "github.com/grindlemire/gridbox/internal/grid"

// Rect represents a rectangle with position and dimensions.
type Rect = grid.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = grid.Edges

// Constraint is a size budget handed down during measurement.
type Constraint = grid.Constraint

// SizeMode specifies how a Constraint's size is interpreted.
type SizeMode = grid.SizeMode

const (
	ModeUnspecified = grid.ModeUnspecified
	ModeExactly     = grid.ModeExactly
	ModeAtMost      = grid.ModeAtMost
)

// Gravity specifies how a child is aligned within its cell region.
type Gravity = grid.Gravity

const (
	GravityNone   = grid.GravityNone
	GravityStart  = grid.GravityStart
	GravityCenter = grid.GravityCenter
	GravityEnd    = grid.GravityEnd
	GravityFill   = grid.GravityFill
)

// Spec describes one child's placement within the grid.
type Spec = grid.Spec

// Child is the interface the container uses to negotiate geometry with
// its children. Hosts implement it to plug their own elements into the
// grid; [Box] is a ready-made implementation.
type Child = grid.Item

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return grid.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return grid.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal
// (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return grid.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return grid.EdgeTRBL(t, r, b, l)
}

// Unspecified returns a Constraint that imposes no limit.
func Unspecified() Constraint {
	return grid.Unspecified()
}

// Exactly returns a Constraint demanding exactly n.
func Exactly(n int) Constraint {
	return grid.Exactly(n)
}

// AtMost returns a Constraint allowing up to n.
func AtMost(n int) Constraint {
	return grid.AtMost(n)
}

// DefaultSpec returns a Spec with automatic placement and a 1x1 span.
func DefaultSpec() Spec {
	return grid.DefaultSpec()
}
