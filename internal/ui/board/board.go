// Package board renders tasks as status lanes, one column per lane
package board

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/todoboard/internal/ui/styles"
)

// Render renders all columns side by side in width x height
func Render(columns []Column, cursor Cursor, s *styles.Styles, width, height int) string {
	if len(columns) == 0 {
		return ""
	}

	columnWidth := width / len(columns)

	var columnStrings []string
	for i, col := range columns {
		isActive := i == cursor.Column
		cursorTask := 0
		if isActive {
			cursorTask = cursor.Task
		}

		columnStr := renderColumn(col, cursorTask, isActive, columnWidth, height, s)

		// Force consistent width using lipgloss Width
		sized := lipgloss.NewStyle().Width(columnWidth).MaxHeight(height).Render(columnStr)
		columnStrings = append(columnStrings, sized)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, columnStrings...)
}
