package overlay

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding represents a single keybinding entry
type KeyBinding struct {
	Key         string
	Description string
}

// KeyCategory represents a category of keybindings
type KeyCategory struct {
	Name     string
	Bindings []KeyBinding
}

// Categories lists the board's keybindings by area
var Categories = []KeyCategory{
	{
		Name: "Navigation",
		Bindings: []KeyBinding{
			{Key: "j/k", Description: "Move down/up"},
			{Key: "h/l", Description: "Move between columns"},
			{Key: "g/G", Description: "Jump to top/bottom"},
			{Key: "Enter", Description: "Show task details"},
		},
	},
	{
		Name: "Filters",
		Bindings: []KeyBinding{
			{Key: "1-5", Description: "Toggle done/ready/todo/wip/blocked"},
			{Key: "r", Description: "Ready tasks only"},
			{Key: "/", Description: "Search"},
			{Key: "c", Description: "Clear filters"},
		},
	},
	{
		Name: "Other",
		Bindings: []KeyBinding{
			{Key: "v", Description: "Toggle table/columns"},
			{Key: "y/Y", Description: "Copy ID / ID and title"},
			{Key: "s/S", Description: "Cycle sort field / reverse"},
			{Key: "R", Description: "Rescan documents"},
			{Key: "?", Description: "Help (this screen)"},
			{Key: "q", Description: "Quit"},
		},
	},
}

// HelpOverlay displays the keybinding reference
type HelpOverlay struct {
	styles *Styles
}

// NewHelpOverlay creates a new help overlay
func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{styles: New()}
}

// Init initializes the overlay
func (h *HelpOverlay) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (h *HelpOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc", "q", "?":
			return h, closeCmd
		}
	}
	return h, nil
}

// View renders the help overlay
func (h *HelpOverlay) View() string {
	var b strings.Builder
	for i, cat := range Categories {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(h.styles.Header.Render(cat.Name + ":"))
		b.WriteString("\n")
		for _, kb := range cat.Bindings {
			b.WriteString("  " + h.styles.Key.Width(6).Render(kb.Key) + "  " + h.styles.Value.Render(kb.Description) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// Title returns the overlay title
func (h *HelpOverlay) Title() string {
	return "Help"
}

// Size returns the overlay dimensions
func (h *HelpOverlay) Size() (width, height int) {
	return 50, 29
}
