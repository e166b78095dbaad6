package grid

// Spec describes one child's placement within the grid.
//
// Col and Row default to -1, meaning the engine assigns the next cell to
// the right of the previously placed child. Spans below 1 are treated as
// 1 and negative weights as 0; misconfiguration degrades gracefully
// rather than erroring.
type Spec struct {
	// Col, Row are the anchor cell coordinates. -1 = assign automatically.
	Col, Row int

	// ColSpan, RowSpan are the number of columns/rows occupied (min 1).
	ColSpan, RowSpan int

	// Margin is the spacing around the child inside its cell region.
	Margin Edges

	// HGravity, VGravity align the child within its cell region per axis.
	// GravityNone inherits the container default.
	HGravity, VGravity Gravity

	// WeightX, WeightY are the child's relative shares of excess space.
	// A column/row receives the maximum weight of the children covering it.
	WeightX, WeightY float64
}

// DefaultSpec returns a Spec with automatic placement and a 1x1 span.
func DefaultSpec() Spec {
	return Spec{Col: -1, Row: -1, ColSpan: 1, RowSpan: 1}
}

// colSpan returns the normalized column span.
func (s *Spec) colSpan() int {
	if s.ColSpan < 1 {
		return 1
	}
	return s.ColSpan
}

// rowSpan returns the normalized row span.
func (s *Spec) rowSpan() int {
	if s.RowSpan < 1 {
		return 1
	}
	return s.RowSpan
}

// weightX returns the horizontal weight clamped to the valid domain.
func (s *Spec) weightX() float64 {
	if s.WeightX < 0 {
		return 0
	}
	return s.WeightX
}

// weightY returns the vertical weight clamped to the valid domain.
func (s *Spec) weightY() float64 {
	if s.WeightY < 0 {
		return 0
	}
	return s.WeightY
}
