package board

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/todoboard/internal/ui/styles"
)

// renderColumn renders a lane header and as many cards as fit, scrolled so
// the cursor card is visible
func renderColumn(col Column, cursorTask int, isActive bool, width, height int, s *styles.Styles) string {
	headerStyle := s.ColumnHeader
	if isActive {
		headerStyle = s.ColumnHeaderActive
	}

	// Render header with title and count (e.g., "─ Blocked (3) ─────")
	headerText := fmt.Sprintf("─ %s (%d) ", col.Title, len(col.Tasks))
	if remaining := width - ansi.StringWidth(headerText) - 2; remaining > 0 {
		headerText += strings.Repeat("─", remaining)
	}
	header := headerStyle.Render(ansi.Truncate(headerText, width, ""))

	fit := max((height-1)/cardHeight, 1)
	offset := 0
	if isActive && cursorTask >= fit {
		offset = cursorTask - fit + 1
	}
	end := min(offset+fit, len(col.Tasks))

	// column padding and card border
	cardWidth := width - 4
	var cards []string
	for i := offset; i < end; i++ {
		cards = append(cards, renderCard(col.Tasks[i], isActive && i == cursorTask, cardWidth, s))
	}

	content := ""
	if len(cards) > 0 {
		content = strings.Join(cards, "\n")
	} else {
		content = s.Dim.Render("  (empty)")
	}

	body := s.Column.Width(width).MaxHeight(max(height-1, 1)).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body)
}
