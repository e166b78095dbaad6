// Command gridbox-live is an interactive demo: the grid re-measures on
// every terminal resize, and keys toggle layout policies at runtime.
//
//	u  toggle uniform column widths
//	i  toggle uniform row heights
//	g  cycle the default gravity
//	q  quit
package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/grindlemire/gridbox"
)

var gravities = []gridbox.Gravity{
	gridbox.GravityCenter,
	gridbox.GravityStart,
	gridbox.GravityEnd,
	gridbox.GravityFill,
}

type model struct {
	grid    *gridbox.Gridbox
	width   int
	height  int
	gravity int
}

func newModel() model {
	boxes := []*gridbox.Box{
		gridbox.NewTextBox("one").Weight(1, 0),
		gridbox.NewTextBox("two"),
		gridbox.NewTextBox("three"),
		gridbox.NewTextBox("wide").At(0, 1).Span(2, 1),
		gridbox.NewTextBox("tall").Span(1, 2).Weight(0, 1),
		gridbox.NewTextBox("four").At(0, 2),
		gridbox.NewTextBox("five"),
	}
	g := gridbox.New(gridbox.WithInnerMargin(1))
	for _, b := range boxes {
		g.Add(b)
	}
	return model{grid: g}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "u":
			m.grid.SetForceUniformWidth(!m.grid.ForceUniformWidth())
		case "i":
			m.grid.SetForceUniformHeight(!m.grid.ForceUniformHeight())
		case "g":
			m.gravity = (m.gravity + 1) % len(gravities)
			g := gravities[m.gravity]
			m.grid.SetDefaultGravity(g, g)
		}
	}
	return m, nil
}

func (m model) View() string {
	if m.width == 0 || m.height < 2 {
		return "measuring…"
	}

	m.grid.Measure(gridbox.Exactly(m.width), gridbox.Exactly(m.height-1))
	m.grid.Layout()

	canvas := make([][]rune, m.height-1)
	for y := range canvas {
		canvas[y] = make([]rune, m.width)
		for x := range canvas[y] {
			canvas[y][x] = ' '
		}
	}

	border := lipgloss.NewStyle().Border(lipgloss.NormalBorder())
	for _, child := range m.grid.Children() {
		box, ok := child.(*gridbox.Box)
		if !ok {
			continue
		}
		blit(canvas, renderBox(border, box), box.Bounds())
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteByte('\n')
	}

	status := lipgloss.NewStyle().Reverse(true)
	sb.WriteString(status.Render(fmt.Sprintf(
		" %dx%d grid | gravity: %s | uniform w/h: %v/%v | u/i/g to toggle, q to quit ",
		m.grid.Cols(), m.grid.Rows(), gravities[m.gravity],
		m.grid.ForceUniformWidth(), m.grid.ForceUniformHeight(),
	)))
	return sb.String()
}

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

func main() {
	if _, err := tea.NewProgram(newModel(), tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "gridbox-live: %v\n", err)
		os.Exit(1)
	}
}
