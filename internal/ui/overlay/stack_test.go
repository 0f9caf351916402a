package overlay

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockOverlay records the last key it received
type mockOverlay struct {
	title   string
	lastKey string
}

func (m mockOverlay) Init() tea.Cmd { return nil }

func (m mockOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		m.lastKey = key.String()
		if m.lastKey == "esc" {
			return m, closeCmd
		}
	}
	return m, nil
}

func (m mockOverlay) View() string              { return m.title }
func (m mockOverlay) Title() string             { return m.title }
func (m mockOverlay) Size() (width, height int) { return 40, 10 }

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestStack_PushPop(t *testing.T) {
	s := NewStack()
	assert.True(t, s.IsEmpty())
	assert.Nil(t, s.Pop())
	assert.Nil(t, s.Current())

	s.Push(mockOverlay{title: "first"})
	s.Push(mockOverlay{title: "second"})
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "second", s.Current().Title())

	assert.Equal(t, "second", s.Pop().Title())
	assert.Equal(t, "first", s.Current().Title())
	assert.Equal(t, 1, s.Len())
}

func TestStack_UpdateForwardsToTop(t *testing.T) {
	s := NewStack()
	s.Push(mockOverlay{title: "bottom"})
	s.Push(mockOverlay{title: "top"})

	s.Update(keyMsg("x"))

	top, ok := s.Current().(mockOverlay)
	require.True(t, ok)
	assert.Equal(t, "x", top.lastKey)
}

func TestStack_CloseMessagePops(t *testing.T) {
	s := NewStack()
	s.Push(mockOverlay{title: "only"})

	cmd := s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.False(t, s.IsEmpty(), "the key only requests a close")

	assert.Nil(t, s.Update(cmd()))
	assert.True(t, s.IsEmpty())
}

func TestStack_UpdateOnEmptyStack(t *testing.T) {
	assert.Nil(t, NewStack().Update(keyMsg("x")))
}
