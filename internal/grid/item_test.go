package grid

// testItem is a minimal Item used throughout the engine tests. It plays
// the host collaborator: it reports a preferred size under the given
// constraints and records the bounds it is assigned.
type testItem struct {
	spec         Spec
	prefW, prefH int
	mw, mh       int
	lastW, lastH Constraint
	bounds       Rect
	placed       bool
	hidden       bool
}

func newTestItem(prefW, prefH int) *testItem {
	return &testItem{spec: DefaultSpec(), prefW: prefW, prefH: prefH}
}

func (t *testItem) at(col, row int) *testItem {
	t.spec.Col, t.spec.Row = col, row
	return t
}

func (t *testItem) span(colSpan, rowSpan int) *testItem {
	t.spec.ColSpan, t.spec.RowSpan = colSpan, rowSpan
	return t
}

func (t *testItem) weight(x, y float64) *testItem {
	t.spec.WeightX, t.spec.WeightY = x, y
	return t
}

func (t *testItem) gravity(h, v Gravity) *testItem {
	t.spec.HGravity, t.spec.VGravity = h, v
	return t
}

func (t *testItem) margin(e Edges) *testItem {
	t.spec.Margin = e
	return t
}

func (t *testItem) GridSpec() *Spec { return &t.spec }

func (t *testItem) Visible() bool { return !t.hidden }

func (t *testItem) Measure(width, height Constraint) (int, int) {
	t.lastW, t.lastH = width, height
	t.mw = measurePreferred(t.prefW, width)
	t.mh = measurePreferred(t.prefH, height)
	return t.mw, t.mh
}

func (t *testItem) MeasuredSize() (int, int) { return t.mw, t.mh }

func (t *testItem) SetBounds(r Rect) {
	t.bounds = r
	t.placed = true
}

func measurePreferred(pref int, c Constraint) int {
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

func items(its ...*testItem) []Item {
	out := make([]Item, len(its))
	for i, it := range its {
		out[i] = it
	}
	return out
}
