package statusbar

import "github.com/riordanpawley/todoboard/internal/types"

// GetHints returns the keybinding hints for the given mode
func GetHints(mode types.Mode) string {
	switch mode {
	case types.ModeNormal:
		return "j/k: move  Enter: details  1-5: filter  /: search  v: columns  ?: help  q: quit"
	case types.ModeSearch:
		return "Type to search  Enter: confirm  Esc: cancel"
	case types.ModeDetail:
		return "j/k: scroll  Esc: close"
	default:
		return ""
	}
}
