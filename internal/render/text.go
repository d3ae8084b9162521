package render

import (
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/cafebazaar/teambubbles/pkg/teambubbles"
	"github.com/charmbracelet/lipgloss"
)

const (
	DefaultTextWidth = 80

	captionWidth = 14
	pixelsPerCol = 10
)

var (
	placeholderStyle = lipgloss.NewStyle().Faint(true)
	captionStyle     = lipgloss.NewStyle().Width(captionWidth).MaxHeight(2).Align(lipgloss.Center).Bold(true)
	legendStyle      = lipgloss.NewStyle().Faint(true)
	cellStyle        = lipgloss.NewStyle().MarginRight(2)
)

type textRenderer struct {
	width int
}

// NewText renders bubbles as coloured boxes for a terminal of the given
// width. Box width follows the bubble diameter at ten pixels per column.
func NewText(width int) teambubbles.Renderer {
	if width <= 0 {
		width = DefaultTextWidth
	}

	return &textRenderer{width: width}
}

func (r *textRenderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

func (r *textRenderer) Render(w io.Writer, chart *teambubbles.Chart) error {
	if chart.Empty() {
		_, err := io.WriteString(w, placeholderStyle.Render(chart.Placeholder)+"\n")
		return err
	}

	cells := make([]string, 0, len(chart.Bubbles))
	legend := make([]string, 0, len(chart.Bubbles))
	for _, b := range chart.Bubbles {
		cells = append(cells, r.cell(b))
		legend = append(legend, legendStyle.Render(b.Tooltip))
	}

	grid := lipgloss.JoinVertical(lipgloss.Center, r.rows(cells)...)
	out := lipgloss.JoinVertical(lipgloss.Left, grid, "", strings.Join(legend, "\n"))

	_, err := io.WriteString(w, out+"\n")
	return err
}

func (r *textRenderer) cell(b teambubbles.Bubble) string {
	cols := int(math.Round(b.Size / pixelsPerCol))
	lines := cols / 4
	if lines < 1 {
		lines = 1
	}

	circle := lipgloss.NewStyle().
		Width(cols).
		Height(lines).
		Align(lipgloss.Center, lipgloss.Center).
		Bold(true).
		Foreground(lipgloss.Color("#000000")).
		Background(lipgloss.Color(b.Color)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(b.Color)).
		Render(strconv.Itoa(b.TotalVotes))

	return cellStyle.Render(lipgloss.JoinVertical(lipgloss.Center, circle, captionStyle.Render(b.Caption)))
}

func (r *textRenderer) rows(cells []string) []string {
	var (
		rows    []string
		current []string
		used    int
	)

	for _, cell := range cells {
		width := lipgloss.Width(cell)
		if len(current) > 0 && used+width > r.width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current = nil
			used = 0
		}
		current = append(current, cell)
		used += width
	}

	if len(current) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
	}

	return rows
}
