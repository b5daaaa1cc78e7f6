package systems

import (
	"testing"

	cfg "github.com/automoto/tilewalk/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain text", "plain text"},
		{`Find me on <a href="https://example.com">example</a>.`, "Find me on example."},
		{"one<br/>two", "onetwo"},
		{"  spaced \n\t out  ", "spaced out"},
		{"fish &amp; chips", "fish & chips"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StripMarkup(tt.in))
	}
}

func TestGateOpenClose(t *testing.T) {
	s := newTestScene(t, 100, 100)
	gate := NewDialogueGate(s.ecs)

	closed := 0
	require.True(t, gate.Open("hello", func() { closed++ }))
	assert.True(t, gate.IsOpen())
	assert.True(t, s.playerData().InDialogue)

	// A second dialogue is refused while one is showing.
	assert.False(t, gate.Open("other", nil))
	full, _ := gate.Text()
	assert.Equal(t, "hello", full)

	gate.Close()
	gate.Close()
	assert.Equal(t, 1, closed)
	assert.False(t, gate.IsOpen())
	assert.False(t, s.playerData().InDialogue)
}

func TestGateCloseSeesDialogueFlagSet(t *testing.T) {
	s := newTestScene(t, 100, 100)
	gate := NewDialogueGate(s.ecs)

	var during bool
	gate.Open("hello", func() { during = s.playerData().InDialogue })
	gate.Close()

	assert.True(t, during)
	assert.False(t, s.playerData().InDialogue)
}

func TestGateRevealsText(t *testing.T) {
	s := newTestScene(t, 100, 100)
	gate := NewDialogueGate(s.ecs)
	gate.Open("a fairly long line of dialogue", nil)

	gate.Update(s.ecs)
	full, shown := gate.Text()
	assert.Less(t, len(shown), len(full))

	for i := 0; i < 120; i++ {
		gate.Update(s.ecs)
	}
	full, shown = gate.Text()
	assert.Equal(t, full, shown)
}

func TestGateCloseActionRevealsThenCloses(t *testing.T) {
	s := newTestScene(t, 100, 100)
	gate := NewDialogueGate(s.ecs)
	input := s.input()
	gate.Open("a fairly long line of dialogue", nil)

	input.Current[cfg.ActionCloseDialogue] = true
	gate.Update(s.ecs)
	require.True(t, gate.IsOpen())
	full, shown := gate.Text()
	assert.Equal(t, full, shown)

	// Holding the key does not close it.
	input.Advance()
	input.Current[cfg.ActionCloseDialogue] = true
	gate.Update(s.ecs)
	assert.True(t, gate.IsOpen())

	input.Advance()
	gate.Update(s.ecs)
	input.Advance()
	input.Current[cfg.ActionCloseDialogue] = true
	gate.Update(s.ecs)
	assert.False(t, gate.IsOpen())
	assert.False(t, s.playerData().InDialogue)
}
