// Package grid implements a pure-Go grid layout engine.
//
// Children occupy rectangular regions of cells, with per-axis spans,
// weights, margins, and gravity alignment inside their cell region. The
// engine negotiates geometry with the host through the [Item] interface
// in two strictly ordered phases: [Solver.Measure] computes required
// column widths and row heights and the container's own desired size,
// then [Solver.Arrange] assigns a final [Rect] to every item.
//
// Types are re-exported through the root gridbox package for public
// consumption.
package grid
