package statusbar

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/riordanpawley/todoboard/internal/types"
	"github.com/riordanpawley/todoboard/internal/ui/styles"
	"github.com/stretchr/testify/assert"
)

func TestStatusBar_Render(t *testing.T) {
	tests := []struct {
		name  string
		mode  types.Mode
		badge string
		hint  string
	}{
		{name: "normal", mode: types.ModeNormal, badge: "NORMAL", hint: "Enter: details"},
		{name: "search", mode: types.ModeSearch, badge: "SEARCH", hint: "Type to search"},
		{name: "detail", mode: types.ModeDetail, badge: "DETAIL", hint: "Esc: close"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ansi.Strip(New(tt.mode, 200, styles.New()).Render())
			assert.Contains(t, result, tt.badge)
			assert.Contains(t, result, tt.hint)
		})
	}
}

func TestStatusBar_WithInfo(t *testing.T) {
	sb := New(types.ModeNormal, 200, styles.New())

	assert.NotContains(t, ansi.Strip(sb.Render()), "12/40 tasks")
	assert.Contains(t, ansi.Strip(sb.WithInfo("12/40 tasks").Render()), "12/40 tasks")
}

func TestStatusBar_FillsWidth(t *testing.T) {
	result := New(types.ModeSearch, 100, styles.New()).Render()
	assert.Equal(t, 100, lipgloss.Width(result))
}

func TestGetHints_UnknownMode(t *testing.T) {
	assert.Equal(t, "", GetHints(types.Mode(99)))
}

func TestStatusBar_StaysOnOneLine(t *testing.T) {
	result := New(types.ModeNormal, 60, styles.New()).WithInfo("5/5  ready  /abc  sort:priority").Render()

	assert.Equal(t, 1, lipgloss.Height(result))
	assert.Equal(t, 60, lipgloss.Width(result))
	assert.Contains(t, ansi.Strip(result), "…")
}
