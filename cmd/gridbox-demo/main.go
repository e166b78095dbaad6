// Command gridbox-demo renders a representative grid layout at the
// current terminal size: a spanning header, a weighted side panel, a
// growing main region, and a footer row.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/grindlemire/gridbox"
)

func main() {
	uniformWidth := flag.Bool("uniform-width", false, "force uniform column widths")
	uniformHeight := flag.Bool("uniform-height", false, "force uniform row heights")
	flag.Parse()

	width, height := 100, 30
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h-2
	}

	header := gridbox.NewTextBox("gridbox demo").
		At(0, 0).Span(3, 1).
		Gravity(gridbox.GravityFill, gridbox.GravityStart)
	side := gridbox.NewTextBox("side\npanel").
		At(0, 1).Span(1, 2).
		Gravity(gridbox.GravityFill, gridbox.GravityFill).
		Weight(0, 1)
	body := gridbox.NewTextBox("main region").
		At(1, 1).Span(2, 2).
		Gravity(gridbox.GravityFill, gridbox.GravityFill).
		Weight(1, 1)
	footerLeft := gridbox.NewTextBox("q: quit").
		At(0, 3).Span(2, 1).
		Gravity(gridbox.GravityFill, gridbox.GravityStart)
	footerRight := gridbox.NewTextBox("ready").
		At(2, 3).
		Gravity(gridbox.GravityEnd, gridbox.GravityStart)

	g := gridbox.New().Add(header, side, body, footerLeft, footerRight)
	g.SetForceUniformWidth(*uniformWidth)
	g.SetForceUniformHeight(*uniformHeight)

	g.Measure(gridbox.Exactly(width), gridbox.Exactly(height))
	g.Layout()

	canvas := newCanvas(width, height)
	border := lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	for _, child := range g.Children() {
		box, ok := child.(*gridbox.Box)
		if !ok {
			continue
		}
		blit(canvas, renderBox(border, box), box.Bounds())
	}

	for _, row := range canvas {
		fmt.Println(string(row))
	}

	status := lipgloss.NewStyle().Faint(true)
	fmt.Println(status.Render(fmt.Sprintf("columns: %v  rows: %v", g.ColumnWidths(), g.RowHeights())))
}

// renderBox draws one child as a bordered block sized to its bounds.
func renderBox(style lipgloss.Style, box *gridbox.Box) string {
	r := box.Bounds()
	if r.Width < 2 || r.Height < 2 {
		return strings.Repeat("·", r.Width)
	}
	return style.
		Width(r.Width - 2).
		Height(r.Height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(box.Label())
}

func newCanvas(width, height int) [][]rune {
	canvas := make([][]rune, height)
	for y := range canvas {
		canvas[y] = make([]rune, width)
		for x := range canvas[y] {
			canvas[y][x] = ' '
		}
	}
	return canvas
}

// blit copies a rendered block onto the canvas at the rect's origin,
// advancing by display width so wide runes occupy two cells.
func blit(canvas [][]rune, block string, r gridbox.Rect) {
	for dy, line := range strings.Split(block, "\n") {
		y := r.Y + dy
		if y < 0 || y >= len(canvas) {
			continue
		}
		x := r.X
		for _, ch := range line {
			if x >= len(canvas[y]) {
				break
			}
			if x >= 0 {
				canvas[y][x] = ch
			}
			x += runewidth.RuneWidth(ch)
		}
	}
}
