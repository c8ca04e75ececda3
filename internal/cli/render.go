package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/gocube_engine/internal/cube"
	"github.com/SeamusWaldron/gocube_engine/internal/facelet"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	phaseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

var stickerColors = map[cube.Color]lipgloss.Color{
	cube.White:  lipgloss.Color("15"),
	cube.Yellow: lipgloss.Color("11"),
	cube.Red:    lipgloss.Color("9"),
	cube.Orange: lipgloss.Color("208"),
	cube.Green:  lipgloss.Color("10"),
	cube.Blue:   lipgloss.Color("12"),
}

const sticker = "██"

func renderSticker(c cube.Color) string {
	color, ok := stickerColors[c]
	if !ok {
		return "??"
	}
	return lipgloss.NewStyle().Foreground(color).Render(sticker)
}

// renderNet draws the cube unfolded with U on top, L F R B in the middle row
// and D at the bottom.
func renderNet(c *cube.Cube) string {
	colors := facelet.Colors(c)
	row := func(face facelet.Face, r int) string {
		var b strings.Builder
		for col := 0; col < 3; col++ {
			b.WriteString(renderSticker(colors[int(face)*9+r*3+col]))
		}
		return b.String()
	}

	pad := strings.Repeat(" ", 3*len([]rune(sticker))+1)
	var b strings.Builder
	for r := 0; r < 3; r++ {
		b.WriteString(pad + row(facelet.FaceU, r) + "\n")
	}
	for r := 0; r < 3; r++ {
		b.WriteString(strings.Join([]string{
			row(facelet.FaceL, r),
			row(facelet.FaceF, r),
			row(facelet.FaceR, r),
			row(facelet.FaceB, r),
		}, " "))
		b.WriteString("\n")
	}
	for r := 0; r < 3; r++ {
		b.WriteString(pad + row(facelet.FaceD, r) + "\n")
	}
	return b.String()
}

// recentTokens formats the last n tokens, prefixed with an ellipsis when
// older ones were cut.
func recentTokens(tokens []string, n int) string {
	if len(tokens) <= n {
		return strings.Join(tokens, " ")
	}
	return "... " + strings.Join(tokens[len(tokens)-n:], " ")
}
