package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true)
	blankStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	stateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	stepStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	haltStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("76")).Bold(true)
)

const blankMark = "_"

// RenderTape renders cells separated by spaces. Blank cells show as _; the head cell is bracketed.
func RenderTape(cells []string, cursor int, blank string) string {
	var b strings.Builder
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(' ')
		}
		text := cell
		style := lipgloss.NewStyle()
		if cell == blank {
			text = blankMark
			style = blankStyle
		}
		if i == cursor {
			b.WriteString(headStyle.Render("[" + text + "]"))
			continue
		}
		b.WriteString(style.Render(text))
	}
	return b.String()
}

func RenderState(state string, halted bool) string {
	if halted {
		return haltStyle.Render(state)
	}
	return stateStyle.Render(state)
}

func RenderStep(step int, state string, halted bool, cells []string, cursor int, blank string) string {
	return fmt.Sprintf("%s %s  %s",
		stepStyle.Render(fmt.Sprintf("%6d", step)),
		RenderState(state, halted),
		RenderTape(cells, cursor, blank),
	)
}
