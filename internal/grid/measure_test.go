package grid

import "testing"

func TestMeasure_NoChildren(t *testing.T) {
	type tc struct {
		padding Edges
		width   Constraint
		height  Constraint
		wantW   int
		wantH   int
	}

	tests := map[string]tc{
		"unspecified": {
			padding: EdgeAll(5),
			width:   Unspecified(),
			height:  Unspecified(),
			wantW:   10,
			wantH:   10,
		},
		"exactly wins": {
			padding: EdgeAll(5),
			width:   Exactly(100),
			height:  Exactly(40),
			wantW:   100,
			wantH:   40,
		},
		"at-most caps at padding": {
			padding: EdgeAll(5),
			width:   AtMost(100),
			height:  AtMost(3),
			wantW:   10,
			wantH:   3,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := Solver{Padding: tt.padding}
			w, h := s.Measure(nil, tt.width, tt.height)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("Measure() = (%d, %d), want (%d, %d)", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestMeasure_TwoByTwo(t *testing.T) {
	// The worked scenario: four 1x1 children, no weights, granted
	// 300x300. Column minimums are the per-column maximums; the 190
	// pixels of excess split evenly.
	a := newTestItem(50, 50).at(0, 0)
	b := newTestItem(60, 40).at(1, 0)
	c := newTestItem(40, 60).at(0, 1)
	d := newTestItem(30, 30).at(1, 1)
	its := items(a, b, c, d)

	var s Solver
	w, h := s.Measure(its, Exactly(300), Exactly(300))

	if w != 300 || h != 300 {
		t.Fatalf("Measure() = (%d, %d), want (300, 300)", w, h)
	}
	if got := s.ColumnWidths(); got[0] != 145 || got[1] != 155 {
		t.Errorf("ColumnWidths() = %v, want [145 155]", got)
	}
	if got := s.RowHeights(); got[0] != 145 || got[1] != 155 {
		t.Errorf("RowHeights() = %v, want [145 155]", got)
	}
}

func TestMeasure_Modes(t *testing.T) {
	type tc struct {
		width Constraint
		wantW int
	}

	// Two columns requiring 50+60 = 110.
	tests := map[string]tc{
		"unspecified uses required": {width: Unspecified(), wantW: 110},
		"exactly uses budget":       {width: Exactly(80), wantW: 80},
		"at-most above required":    {width: AtMost(500), wantW: 110},
		"at-most below required":    {width: AtMost(80), wantW: 80},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			its := items(
				newTestItem(50, 20).at(0, 0),
				newTestItem(60, 20).at(1, 0),
			)
			var s Solver
			w, _ := s.Measure(its, tt.width, Unspecified())
			if w != tt.wantW {
				t.Errorf("Measure() width = %d, want %d", w, tt.wantW)
			}
		})
	}
}

func TestMeasure_ColumnsNeverBelowMinimum(t *testing.T) {
	// Granting less than required does not shrink columns below their
	// computed minimums.
	its := items(
		newTestItem(50, 20).at(0, 0),
		newTestItem(60, 20).at(1, 0),
	)
	var s Solver
	s.Measure(its, Exactly(80), Unspecified())

	if got := s.ColumnWidths(); got[0] != 50 || got[1] != 60 {
		t.Errorf("ColumnWidths() = %v, want [50 60]", got)
	}
}

func TestMeasure_SpanWeightMaxRule(t *testing.T) {
	// A weighted child spanning two columns assigns its full weight to
	// both, not half to each.
	wide := newTestItem(20, 10).at(0, 0).span(2, 1).weight(1, 0)
	left := newTestItem(10, 10).at(0, 1)
	right := newTestItem(10, 10).at(1, 1)

	var s Solver
	s.Measure(items(wide, left, right), Unspecified(), Unspecified())

	if s.weightX[0] != 1 || s.weightX[1] != 1 {
		t.Errorf("weightX = %v, want [1 1]", s.weightX)
	}
}

func TestMeasure_SpanTopsUpColumns(t *testing.T) {
	// Two 40-wide singles establish the columns; an 100-wide spanning
	// child tops them up, splitting the 20-pixel shortfall evenly since
	// the columns carry no weight.
	left := newTestItem(40, 10).at(0, 1)
	right := newTestItem(40, 10).at(1, 1)
	wide := newTestItem(100, 10).at(0, 0).span(2, 1)

	var s Solver
	w, _ := s.Measure(items(left, right, wide), Unspecified(), Unspecified())

	if w != 100 {
		t.Errorf("Measure() width = %d, want 100", w)
	}
	if s.minW[0] != 50 || s.minW[1] != 50 {
		t.Errorf("minW = %v, want [50 50]", s.minW)
	}
}

func TestMeasure_SpanStagingOrder(t *testing.T) {
	// The spanning child is listed first, but single-cell minimums must
	// still be final before its shortfall is spread.
	wide := newTestItem(100, 10).at(0, 0).span(2, 1)
	left := newTestItem(10, 10).at(0, 1)
	right := newTestItem(70, 10).at(1, 1)

	var s Solver
	w, _ := s.Measure(items(wide, left, right), Unspecified(), Unspecified())

	// Columns start at {10, 70}; the span needs 100, shortfall 20 split
	// evenly -> {20, 80}. A naive ordering would charge the span against
	// empty columns first.
	if s.minW[0] != 20 || s.minW[1] != 80 {
		t.Errorf("minW = %v, want [20 80]", s.minW)
	}
	if w != 100 {
		t.Errorf("Measure() width = %d, want 100", w)
	}
}

func TestMeasure_FillGetsExactRemeasure(t *testing.T) {
	fill := newTestItem(30, 20).at(0, 0).gravity(GravityFill, GravityFill).margin(EdgeAll(2))
	var s Solver
	s.Measure(items(fill), Exactly(100), Exactly(60))

	// The corrective pass hands the child its cell size minus margins,
	// exactly.
	if fill.lastW.Mode != ModeExactly || fill.lastW.Size != 96 {
		t.Errorf("last width constraint = %v %d, want exactly 96", fill.lastW.Mode, fill.lastW.Size)
	}
	if fill.lastH.Mode != ModeExactly || fill.lastH.Size != 56 {
		t.Errorf("last height constraint = %v %d, want exactly 56", fill.lastH.Mode, fill.lastH.Size)
	}
}

func TestMeasure_NonFillKeepsReportedSize(t *testing.T) {
	child := newTestItem(30, 20).at(0, 0).gravity(GravityStart, GravityStart)
	var s Solver
	s.Measure(items(child), Exactly(100), Exactly(60))

	if child.mw != 30 || child.mh != 20 {
		t.Errorf("measured size = (%d, %d), want (30, 20)", child.mw, child.mh)
	}
}

func TestMeasure_Idempotent(t *testing.T) {
	its := items(
		newTestItem(50, 50).at(0, 0).weight(1, 0),
		newTestItem(60, 40).at(1, 0),
		newTestItem(40, 60).at(0, 1).span(2, 1),
	)
	var s Solver
	s.Measure(its, Exactly(300), Exactly(300))
	w1 := s.ColumnWidths()
	h1 := s.RowHeights()

	s.Measure(its, Exactly(300), Exactly(300))
	w2 := s.ColumnWidths()
	h2 := s.RowHeights()

	for i := range w1 {
		if w1[i] != w2[i] {
			t.Errorf("ColumnWidths changed between passes: %v -> %v", w1, w2)
			break
		}
	}
	for i := range h1 {
		if h1[i] != h2[i] {
			t.Errorf("RowHeights changed between passes: %v -> %v", h1, h2)
			break
		}
	}
}

func TestMeasure_UniformWidthInsufficientExcess(t *testing.T) {
	its := items(
		newTestItem(10, 10).at(0, 0),
		newTestItem(30, 10).at(1, 0),
		newTestItem(20, 10).at(2, 0),
	)
	s := Solver{UniformWidth: true}
	w, _ := s.Measure(its, Exactly(80), Unspecified())

	got := s.ColumnWidths()
	sum := 0
	for i, min := range []int{10, 30, 20} {
		if got[i] < min {
			t.Errorf("ColumnWidths()[%d] = %d, below minimum %d", i, got[i], min)
		}
		sum += got[i]
	}
	if sum > w {
		t.Errorf("sum(ColumnWidths()) = %d, exceeds granted %d", sum, w)
	}
}

func TestMeasure_UniformWidthEqualizes(t *testing.T) {
	its := items(
		newTestItem(10, 10).at(0, 0),
		newTestItem(30, 10).at(1, 0),
		newTestItem(20, 10).at(2, 0),
	)
	s := Solver{UniformWidth: true}
	s.Measure(its, Exactly(90), Unspecified())

	if got := s.ColumnWidths(); got[0] != 30 || got[1] != 30 || got[2] != 30 {
		t.Errorf("ColumnWidths() = %v, want [30 30 30]", got)
	}
}

func TestMeasure_MarginsCountTowardColumns(t *testing.T) {
	child := newTestItem(50, 20).at(0, 0).margin(EdgeTRBL(1, 2, 3, 4))
	var s Solver
	w, h := s.Measure(items(child), Unspecified(), Unspecified())

	if w != 56 { // 50 + left 4 + right 2
		t.Errorf("Measure() width = %d, want 56", w)
	}
	if h != 24 { // 20 + top 1 + bottom 3
		t.Errorf("Measure() height = %d, want 24", h)
	}
}

func TestMeasure_NegativeWeightsAndMarginsClamped(t *testing.T) {
	child := newTestItem(50, 20).at(0, 0).weight(-3, -1).margin(EdgeAll(-5))
	other := newTestItem(50, 20).at(1, 0)

	var s Solver
	w, _ := s.Measure(items(child, other), Exactly(200), Unspecified())

	if w != 200 {
		t.Fatalf("Measure() width = %d, want 200", w)
	}
	// Negative weight acts as zero: even split of the 100-pixel excess.
	if got := s.ColumnWidths(); got[0] != 100 || got[1] != 100 {
		t.Errorf("ColumnWidths() = %v, want [100 100]", got)
	}
}

func TestMeasure_InnerMarginDefault(t *testing.T) {
	child := newTestItem(50, 20).at(0, 0)
	withOwn := newTestItem(50, 20).at(1, 0).margin(EdgeTRBL(0, 1, 0, 1))

	s := Solver{InnerMargin: 3}
	w, _ := s.Measure(items(child, withOwn), Unspecified(), Unspecified())

	// child gets the inner margin (50+6); withOwn keeps its own (50+2).
	if w != 108 {
		t.Errorf("Measure() width = %d, want 108", w)
	}
}

func TestMeasure_AccumulateOutOfRange(t *testing.T) {
	// Inconsistent internal state is reported and skipped, never a
	// panic, and leaves other columns intact.
	sizes := []int{10, 20, 30}
	weights := []float64{0, 0, 0}

	var s Solver
	s.accumulate(2, 2, 100, 1, sizes, weights, "column")

	if sizes[0] != 10 || sizes[1] != 20 || sizes[2] != 30 {
		t.Errorf("sizes = %v, want [10 20 30] (untouched)", sizes)
	}
	s.accumulate(-1, 1, 100, 1, sizes, weights, "column")
	if sizes[0] != 10 {
		t.Errorf("sizes[0] = %d, want 10 (untouched)", sizes[0])
	}
}
