package gridbox

// Option configures a Gridbox.
type Option func(*Gridbox)

// WithDefaultGravity sets the gravity applied to children that do not
// specify their own.
func WithDefaultGravity(h, v Gravity) Option {
	return func(g *Gridbox) {
		g.solver.DefaultHGravity = h
		g.solver.DefaultVGravity = v
	}
}

// WithInnerMargin sets the spacing used on all sides of children that do
// not specify a margin of their own.
func WithInnerMargin(m int) Option {
	return func(g *Gridbox) {
		g.solver.InnerMargin = m
	}
}

// WithPadding sets the container's own inner padding.
func WithPadding(e Edges) Option {
	return func(g *Gridbox) {
		g.solver.Padding = e
	}
}

// WithUniformWidth forces all columns toward equal width.
func WithUniformWidth() Option {
	return func(g *Gridbox) {
		g.solver.UniformWidth = true
	}
}

// WithUniformHeight forces all rows toward equal height.
func WithUniformHeight() Option {
	return func(g *Gridbox) {
		g.solver.UniformHeight = true
	}
}

// WithChildren appends the given children.
func WithChildren(children ...Child) Option {
	return func(g *Gridbox) {
		g.children = append(g.children, children...)
	}
}
