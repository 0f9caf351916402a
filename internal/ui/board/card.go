package board

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/todoboard/internal/domain"
	"github.com/riordanpawley/todoboard/internal/ui/styles"
)

// cardHeight is the rendered height of a card: two lines plus the border
const cardHeight = 4

// renderCard renders a task card
func renderCard(task domain.Task, isCursor bool, width int, s *styles.Styles) string {
	cardStyle := s.Card
	if isCursor {
		cardStyle = s.CardActive
	}
	cardStyle = cardStyle.Width(width)

	// border (2) and padding (2)
	inner := max(width-4, 1)

	cursor := ""
	if isCursor {
		cursor = "▶"
	}
	titleLine := ansi.Truncate(cursor+task.Title, inner, "…")

	badge := s.PriorityBadge(task.Priority).Render(task.Priority.String())
	id := s.TaskID.Render(task.ID)
	badgeLine := ansi.Truncate(lipgloss.JoinHorizontal(lipgloss.Left, badge, " ", id), inner, "…")

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, titleLine, badgeLine))
}

// RenderCard is the exported version for testing
func RenderCard(task domain.Task, isCursor bool, width int, s *styles.Styles) string {
	return renderCard(task, isCursor, width, s)
}
