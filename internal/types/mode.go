// Package types contains shared types used across the interactive board.
package types

// Mode represents the current input mode of the board
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeDetail
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeSearch:
		return "SEARCH"
	case ModeDetail:
		return "DETAIL"
	default:
		return "UNKNOWN"
	}
}

// Layout selects how the task list is drawn
type Layout int

const (
	LayoutTable Layout = iota
	LayoutColumns
)

// Toggle returns the other layout
func (l Layout) Toggle() Layout {
	if l == LayoutColumns {
		return LayoutTable
	}
	return LayoutColumns
}

// String returns the string representation of the layout
func (l Layout) String() string {
	if l == LayoutColumns {
		return "columns"
	}
	return "table"
}
