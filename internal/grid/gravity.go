package grid

// Gravity specifies how a child is aligned within its cell region on one
// axis. Start and End are axis-relative: left/right horizontally,
// top/bottom vertically.
type Gravity uint8

const (
	// GravityNone means the child inherits the container's default gravity.
	GravityNone Gravity = iota
	// GravityStart aligns to the start edge of the cell region.
	GravityStart
	// GravityCenter centers within the cell region.
	GravityCenter
	// GravityEnd aligns to the end edge of the cell region.
	GravityEnd
	// GravityFill stretches the child to fill the cell region.
	GravityFill
)

// String returns a short name for the gravity, for debug output.
func (g Gravity) String() string {
	switch g {
	case GravityStart:
		return "start"
	case GravityCenter:
		return "center"
	case GravityEnd:
		return "end"
	case GravityFill:
		return "fill"
	default:
		return "none"
	}
}

// resolve returns g, or the fallback when g is unset. Stored child
// configuration is never patched in place; effective gravity is computed
// fresh each pass.
func (g Gravity) resolve(fallback Gravity) Gravity {
	if g != GravityNone {
		return g
	}
	if fallback != GravityNone {
		return fallback
	}
	return GravityCenter
}
