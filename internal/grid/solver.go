package grid

import "github.com/grindlemire/gridbox/internal/debug"

// Solver computes grid geometry for a set of Items. It is owned by one
// container instance and is not safe for concurrent use; the host toolkit
// guarantees Measure and Arrange run on one logical thread per container.
//
// The protocol is two-phase and strictly ordered: Measure computes
// required and assigned column widths and row heights, Arrange consumes
// them to place items. Re-invoking Measure recomputes assigned sizes;
// Arrange always uses the most recent Measure output.
type Solver struct {
	// Padding is the container's own inner padding.
	Padding Edges

	// InnerMargin is the default spacing applied on all sides of any
	// child that specifies no margin of its own.
	InnerMargin int

	// DefaultHGravity and DefaultVGravity are applied to children whose
	// spec leaves gravity unset. Zero values fall back to center.
	DefaultHGravity, DefaultVGravity Gravity

	// UniformWidth and UniformHeight force all columns (resp. rows)
	// toward equal size before weight-based distribution.
	UniformWidth, UniformHeight bool

	// Grid dimensions and resolved placements, cached until the item
	// set changes.
	cols, rows             int
	maxColSpan, maxRowSpan int
	places                 []place
	counted                bool

	// Per-pass sizing state, recreated or resized when the grid's
	// dimensions change. minW/minH are the required sizes, w/h the
	// assigned sizes after excess distribution.
	minW, minH       []int
	w, h             []int
	weightX, weightY []float64
	totalW, totalH   int
	totalWX, totalWY float64
	measured         bool
}

// place is an item's resolved position in the grid. Placements live here
// rather than being written back into the caller's Spec, so repeated
// counts with unchanged input are idempotent.
type place struct {
	col, row         int
	colSpan, rowSpan int
	skip             bool
}

// Invalidate discards the cached grid dimensions. Call it whenever the
// item set or any item's placement spec changes.
func (s *Solver) Invalidate() {
	s.counted = false
	s.measured = false
}

// Cols returns the number of columns found by the last count.
func (s *Solver) Cols() int { return s.cols }

// Rows returns the number of rows found by the last count.
func (s *Solver) Rows() int { return s.rows }

// ColumnWidths returns a copy of the assigned column widths from the
// most recent Measure.
func (s *Solver) ColumnWidths() []int {
	out := make([]int, s.cols)
	copy(out, s.w)
	return out
}

// RowHeights returns a copy of the assigned row heights from the most
// recent Measure.
func (s *Solver) RowHeights() []int {
	out := make([]int, s.rows)
	copy(out, s.h)
	return out
}

// countCells determines the grid dimensions and resolves each item's
// placement. Items with an unset column are placed one cell to the right
// of the previous item; there is no wrapping and no collision avoidance.
// Spans below 1 are normalized to 1. The result is cached until
// Invalidate or a change in item count.
func (s *Solver) countCells(items []Item) {
	if s.counted && len(s.places) == len(items) {
		return
	}
	if cap(s.places) < len(items) {
		s.places = make([]place, len(items))
	}
	s.places = s.places[:len(items)]

	s.cols, s.rows = 0, 0
	s.maxColSpan, s.maxRowSpan = 0, 0
	x, y := 0, 0
	for i, it := range items {
		p := &s.places[i]
		if it == nil || !it.Visible() {
			*p = place{skip: true}
			continue
		}
		spec := it.GridSpec()
		p.skip = false
		p.colSpan = spec.colSpan()
		p.rowSpan = spec.rowSpan()
		p.col = spec.Col
		p.row = spec.Row
		if p.col < 0 {
			p.col = x
		}
		if p.row < 0 {
			p.row = y
		}
		x, y = p.col, p.row
		if p.col+p.colSpan > s.cols {
			s.cols = p.col + p.colSpan
		}
		if p.row+p.rowSpan > s.rows {
			s.rows = p.row + p.rowSpan
		}
		x += p.colSpan
		if p.colSpan > s.maxColSpan {
			s.maxColSpan = p.colSpan
		}
		if p.rowSpan > s.maxRowSpan {
			s.maxRowSpan = p.rowSpan
		}
	}
	s.counted = true
}

// Measure computes the container's desired size under the given
// constraints and the assigned column/row sizes consumed by Arrange.
func (s *Solver) Measure(items []Item, width, height Constraint) (int, int) {
	pad := s.Padding.clamped()
	hpad, vpad := pad.Horizontal(), pad.Vertical()

	s.countCells(items)
	if s.cols == 0 || s.rows == 0 {
		// Degenerate case: nothing visible, ask for our padding.
		s.measured = false
		return width.Resolve(hpad), height.Resolve(vpad)
	}
	s.resetState()

	// Ask each item how much space it wants. Exact budgets bind the
	// container, not the children, so they are demoted to at-most for
	// the preferred-size query; the corrective pass below hands out
	// exact sizes once cells are known.
	qw, qh := width, height
	if qw.Mode == ModeExactly {
		qw.Mode = ModeAtMost
	}
	if qh.Mode == ModeExactly {
		qh.Mode = ModeAtMost
	}
	for i, it := range items {
		if s.places[i].skip {
			continue
		}
		it.Measure(qw, qh)
	}

	// Accumulate required sizes and weights per column and row, staged
	// by increasing span so every column's single-cell contribution is
	// final before any larger span's excess allocation touches it.
	npass := s.maxColSpan
	if s.maxRowSpan > npass {
		npass = s.maxRowSpan
	}
	for span := 1; span <= npass; span++ {
		for i, it := range items {
			p := s.places[i]
			if p.skip {
				continue
			}
			spec := it.GridSpec()
			mw, mh := it.MeasuredSize()
			m := s.effectiveMargin(spec)
			if p.colSpan == span {
				s.accumulate(p.col, span, mw+m.Horizontal(), spec.weightX(), s.minW, s.weightX, "column")
			}
			if p.rowSpan == span {
				s.accumulate(p.row, span, mh+m.Vertical(), spec.weightY(), s.minH, s.weightY, "row")
			}
		}
	}

	s.totalW, s.totalWX = 0, 0
	for i := 0; i < s.cols; i++ {
		s.totalW += s.minW[i]
		s.totalWX += s.weightX[i]
	}
	s.totalH, s.totalWY = 0, 0
	for i := 0; i < s.rows; i++ {
		s.totalH += s.minH[i]
		s.totalWY += s.weightY[i]
	}

	w := width.Resolve(s.totalW + hpad)
	h := height.Resolve(s.totalH + vpad)

	// Assigned sizes start at the required minimums; anything granted
	// beyond them is distributed by weight.
	copy(s.w, s.minW)
	copy(s.h, s.minH)
	distributeExcess(s.cols, w-hpad, s.w, s.totalW, s.weightX, s.totalWX, s.UniformWidth)
	distributeExcess(s.rows, h-vpad, s.h, s.totalH, s.weightY, s.totalWY, s.UniformHeight)

	// Corrective pass: items whose gravity requests fill now learn the
	// exact size of their cell region. Everyone else keeps the size
	// they reported.
	for i, it := range items {
		p := s.places[i]
		if p.skip {
			continue
		}
		spec := it.GridSpec()
		hg := spec.HGravity.resolve(s.DefaultHGravity)
		vg := spec.VGravity.resolve(s.DefaultVGravity)
		if hg != GravityFill && vg != GravityFill {
			continue
		}
		if p.col+p.colSpan > s.cols || p.row+p.rowSpan > s.rows {
			continue // already reported during accumulation
		}
		m := s.effectiveMargin(spec)
		cw, ch := it.MeasuredSize()
		if hg == GravityFill {
			cw = spanSize(s.w, p.col, p.colSpan) - m.Horizontal()
		}
		if vg == GravityFill {
			ch = spanSize(s.h, p.row, p.rowSpan) - m.Vertical()
		}
		it.Measure(Exactly(cw), Exactly(ch))
	}

	s.measured = true
	return w, h
}

// Arrange assigns final bounds to every item using the sizes computed by
// the preceding Measure call.
func (s *Solver) Arrange(items []Item) {
	if s.cols <= 0 || s.rows <= 0 {
		return
	}
	if !s.measured {
		debug.Log("grid.Solver: Arrange called before a completed Measure pass")
		return
	}
	pad := s.Padding.clamped()

	// Column and row origins are prefix sums of the assigned sizes.
	xs := make([]int, s.cols)
	for i, x := 0, pad.Left; i < s.cols; i++ {
		xs[i] = x
		x += s.w[i]
	}
	ys := make([]int, s.rows)
	for i, y := 0, pad.Top; i < s.rows; i++ {
		ys[i] = y
		y += s.h[i]
	}

	for i, it := range items {
		if i >= len(s.places) || s.places[i].skip {
			continue
		}
		s.arrangeItem(it, s.places[i], xs, ys)
	}
}

// arrangeItem computes and assigns the bounds of one item. An item whose
// placement exceeds the grid extent is a logic error: it is reported and
// skipped without disturbing its siblings.
func (s *Solver) arrangeItem(it Item, p place, xs, ys []int) {
	if p.col < 0 || p.col+p.colSpan > len(xs) || p.row < 0 || p.row+p.rowSpan > len(ys) {
		debug.Log("grid.Solver: cannot place item: col=%d colSpan=%d row=%d rowSpan=%d grid=%dx%d",
			p.col, p.colSpan, p.row, p.rowSpan, len(xs), len(ys))
		return
	}
	spec := it.GridSpec()
	m := s.effectiveMargin(spec)
	x := xs[p.col] + m.Left
	y := ys[p.row] + m.Top
	mw, mh := it.MeasuredSize()

	hg := spec.HGravity.resolve(s.DefaultHGravity)
	cellW := spanSize(s.w, p.col, p.colSpan)
	if cw := mw + m.Horizontal(); hg != GravityFill && cellW-cw > 0 {
		switch hg {
		case GravityCenter:
			x += (cellW - cw) / 2
		case GravityEnd:
			x += cellW - cw
		}
	} else {
		// Fill, or a cell too small for the measured size: the item
		// gets the cell region minus margins.
		mw = cellW - m.Horizontal()
	}

	vg := spec.VGravity.resolve(s.DefaultVGravity)
	cellH := spanSize(s.h, p.row, p.rowSpan)
	if ch := mh + m.Vertical(); vg != GravityFill && cellH-ch > 0 {
		switch vg {
		case GravityCenter:
			y += (cellH - ch) / 2
		case GravityEnd:
			y += cellH - ch
		}
	} else {
		mh = cellH - m.Vertical()
	}

	if mw < 0 {
		mw = 0
	}
	if mh < 0 {
		mh = 0
	}
	it.SetBounds(NewRect(x, y, mw, mh))
}

// accumulate folds one item's size and weight into the per-column (or
// per-row) state. Single-cell items raise their column's required size
// and weight directly. A multi-cell item assigns its weight to every
// covered column (max rule, not an even split) and then tops up the
// covered columns when their combined size cannot satisfy it, spreading
// the shortfall by the columns' current weights.
//
// The max-weight rule is a known imperfect policy for overlapping spans;
// a fully general assignment that keeps mixed single/multi-cell layouts
// visually aligned in every arrangement is an open problem.
func (s *Solver) accumulate(idx, span, size int, weight float64, sizes []int, weights []float64, axis string) {
	if idx < 0 || idx+span > len(sizes) {
		debug.Log("grid.Solver: %s index out of range: idx=%d span=%d count=%d", axis, idx, span, len(sizes))
		return
	}
	if span == 1 {
		if weights[idx] < weight {
			weights[idx] = weight
		}
		if sizes[idx] < size {
			sizes[idx] = size
		}
		return
	}

	for i := 0; i < span; i++ {
		if weight > weights[idx+i] {
			weights[idx+i] = weight
		}
	}
	have := spanSize(sizes, idx, span)
	if size > have {
		region := weights[idx : idx+span]
		var wtot float64
		for _, w := range region {
			wtot += w
		}
		distributeExcess(span, size, sizes[idx:idx+span], have, region, wtot, false)
	}
}

// distributeExcess distributes granted-required extra space across the
// first n entries of sizes. It is a no-op when nothing was granted
// beyond the required total.
//
// In uniform mode it first tries to equalize all sizes to the current
// maximum; if the grant cannot afford that, weights proportional to each
// entry's deficit from the maximum are synthesized instead (favoring the
// entries furthest from uniform) and the walk below runs with those.
//
// A zero weight total means an even split, as if every weight were one.
// Excess pixels are apportioned with a cumulative-remainder walk whose
// final step takes the exact remainder, so the increments always sum to
// the integer excess with no rounding drift and earlier entries receive
// the rounding-favorable treatment first.
func distributeExcess(n, granted int, sizes []int, required int, weights []float64, weightTotal float64, uniform bool) {
	if n > len(sizes) || n > len(weights) {
		debug.Log("grid.distributeExcess: n=%d exceeds state length %d/%d", n, len(sizes), len(weights))
		return
	}
	if granted <= required {
		return
	}

	if uniform {
		maxSize := 0
		for i := 0; i < n; i++ {
			if sizes[i] > maxSize {
				maxSize = sizes[i]
			}
		}
		if granted >= maxSize*n {
			for i := 0; i < n; i++ {
				sizes[i] = maxSize
			}
			required = maxSize * n
		} else {
			synth := make([]float64, n)
			weightTotal = 0
			for i := 0; i < n; i++ {
				d := float64(maxSize - sizes[i])
				synth[i] = d
				weightTotal += d
			}
			weights = synth
		}
	}

	excess := granted - required
	if excess <= 0 {
		return
	}

	even := weightTotal <= 0
	var step float64
	if even {
		step = float64(excess) / float64(n)
	} else {
		step = float64(excess) / weightTotal
	}
	var e1, e2 float64
	given := 0
	for i := 0; i < n; i++ {
		if even {
			e2 += step
		} else {
			e2 += step * weights[i]
		}
		inc := int(e2) - int(e1)
		if i == n-1 {
			inc = excess - given
		}
		sizes[i] += inc
		given += inc
		e1 = e2
	}
}

// effectiveMargin resolves the margin to use for one item: its own
// margin, or the container's inner margin when it specifies none.
func (s *Solver) effectiveMargin(spec *Spec) Edges {
	m := spec.Margin.clamped()
	if m.IsZero() && s.InnerMargin > 0 {
		return EdgeAll(s.InnerMargin)
	}
	return m
}

// resetState sizes and zeroes the per-pass sizing arrays.
func (s *Solver) resetState() {
	s.minW = zeroInts(s.minW, s.cols)
	s.minH = zeroInts(s.minH, s.rows)
	s.w = zeroInts(s.w, s.cols)
	s.h = zeroInts(s.h, s.rows)
	s.weightX = zeroFloats(s.weightX, s.cols)
	s.weightY = zeroFloats(s.weightY, s.rows)
}

func zeroInts(buf []int, n int) []int {
	if cap(buf) < n {
		return make([]int, n)
	}
	buf = buf[:n]
	for i := range buf {
		buf[i] = 0
	}
	return buf
}

func zeroFloats(buf []float64, n int) []float64 {
	if cap(buf) < n {
		return make([]float64, n)
	}
	buf = buf[:n]
	for i := range buf {
		buf[i] = 0
	}
	return buf
}

// spanSize sums the assigned sizes of n consecutive columns or rows
// starting at idx. Callers are responsible for bounds checks.
func spanSize(sizes []int, idx, n int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += sizes[idx+i]
	}
	return total
}
