package grid

// SizeMode specifies how a Constraint's size is interpreted.
type SizeMode uint8

const (
	ModeUnspecified SizeMode = iota // No limit; use the required size
	ModeExactly                     // Use the constraint size exactly
	ModeAtMost                      // Use at most the constraint size
)

// String returns a short name for the mode, for debug output.
func (m SizeMode) String() string {
	switch m {
	case ModeExactly:
		return "exactly"
	case ModeAtMost:
		return "at-most"
	default:
		return "unspecified"
	}
}

// Constraint is a size budget handed down during measurement: a pixel
// (or cell) count plus the mode that says how binding it is.
type Constraint struct {
	Size int
	Mode SizeMode
}

// Unspecified returns a Constraint that imposes no limit.
func Unspecified() Constraint {
	return Constraint{Mode: ModeUnspecified}
}

// Exactly returns a Constraint demanding exactly n.
func Exactly(n int) Constraint {
	return Constraint{Size: n, Mode: ModeExactly}
}

// AtMost returns a Constraint allowing up to n.
func AtMost(n int) Constraint {
	return Constraint{Size: n, Mode: ModeAtMost}
}

// Resolve computes the size to use given the required content size.
// Exactly wins outright; AtMost caps the required size at the budget;
// Unspecified uses the required size as-is.
func (c Constraint) Resolve(required int) int {
	switch c.Mode {
	case ModeExactly:
		return c.Size
	case ModeAtMost:
		if c.Size > required {
			return required
		}
		return c.Size
	default:
		return required
	}
}
