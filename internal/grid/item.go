package grid

// Item is the interface the solver uses to negotiate geometry with the
// host toolkit's children. The engine works entirely with this interface,
// enabling custom implementations.
type Item interface {
	// GridSpec returns the item's grid placement parameters.
	GridSpec() *Spec

	// Visible reports whether the item participates in layout.
	// Invisible items take no cells and receive no bounds.
	Visible() bool

	// Measure asks the item to compute its size under the given
	// constraints. The host performs the actual child-specific sizing.
	Measure(width, height Constraint) (int, int)

	// MeasuredSize returns the size reported by the last Measure call.
	MeasuredSize() (int, int)

	// SetBounds assigns the item's final rectangle during arrangement.
	SetBounds(Rect)
}
