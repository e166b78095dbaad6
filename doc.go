// Package gridbox provides a grid layout container for terminal and
// other cell-based UIs.
//
// Children occupy rectangular regions of cells (default size 1x1) and
// may specify margins, per-axis weights, and gravity controlling how
// they sit inside their cells. A typical layout might look like this:
//
//	+-------+-------+---+--------------------------+
//	| cell  | cell  |   |                          |
//	|-------+-------| c |                          |
//	| cell  | cell  | e |                          |
//	|-------+-------| l |          cell            |
//	| cell  | cell  | l |                          |
//	|-------+-------|   |                          |
//	| cell  | cell  |   |                          |
//	|-------+-------+---+--------------------------|
//	|         cell      |           cell           |
//	+-------------------+--------------------------+
//
// Geometry is negotiated with the host in two strictly ordered phases:
// [Gridbox.Measure] computes the container's desired size and the
// column/row sizes, then [Gridbox.Layout] assigns final bounds to every
// child. The algorithmic core lives in internal/grid and is re-exported
// here.
package gridbox
