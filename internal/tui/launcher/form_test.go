package launcher

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openedForm(t *testing.T) Model {
	t.Helper()
	m := newTestModel(t)
	m, _ = press(m, "f")
	require.NotNil(t, m.form)
	return m
}

// runTransform executes the command a submit returned and feeds the
// resulting message back through Update, the way the program loop would.
func runTransform(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)

	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if res, ok := c().(formResultMsg); ok {
				msg = res
				break
			}
		}
	}
	require.IsType(t, formResultMsg{}, msg)

	model, _ := m.Update(msg)
	return model.(Model)
}

func TestFormTyping(t *testing.T) {
	m := openedForm(t)
	m, _ = press(m, "8", ".", "8", ".", "8", ".", "8")
	assert.Equal(t, "8.8.8.8", m.form.input.Value())
}

func TestFormBackspace(t *testing.T) {
	m := openedForm(t)
	m, _ = press(m, "a", "b", "c", "backspace")
	assert.Equal(t, "ab", m.form.input.Value())

	m, _ = press(m, "backspace", "backspace")
	assert.Empty(t, m.form.input.Value())

	// Backspace on an empty buffer is a no-op.
	m, _ = press(m, "backspace")
	assert.Empty(t, m.form.input.Value())
}

func TestFormSubmit(t *testing.T) {
	m := openedForm(t)
	m, _ = press(m, "1", ".", "1", ".", "1", ".", "1")
	m, cmd := press(m, "enter")

	assert.True(t, m.form.running)
	assert.Empty(t, m.form.input.Value(), "buffer must clear on submit")
	assert.Equal(t, "1.1.1.1", m.form.pending)

	m = runTransform(t, m, cmd)
	assert.False(t, m.form.running)
	require.Len(t, m.form.entries, 1)
	assert.Equal(t, "1.1.1.1", m.form.entries[0].input)
	assert.Equal(t, "result for 1.1.1.1", m.form.entries[0].output)
	assert.NoError(t, m.form.entries[0].err)
}

func TestFormSubmitEmptyInput(t *testing.T) {
	m := openedForm(t)
	m, cmd := press(m, "enter")
	assert.Nil(t, cmd)
	assert.False(t, m.form.running)

	m, _ = press(m, " ", " ")
	m, cmd = press(m, "enter")
	assert.Nil(t, cmd, "whitespace-only input must not submit")
	assert.False(t, m.form.running)
}

func TestFormSubmitWhileRunning(t *testing.T) {
	m := openedForm(t)
	m, _ = press(m, "a")
	m, _ = press(m, "enter")
	require.True(t, m.form.running)

	m, _ = press(m, "b")
	m, cmd := press(m, "enter")
	assert.Nil(t, cmd, "second submit must be ignored while one is in flight")
	assert.Equal(t, "b", m.form.input.Value(), "ignored submit must not clear the buffer")
}

func TestFormTransformError(t *testing.T) {
	m := New(Config{
		Transform: func(ctx context.Context, input string) (string, error) {
			return "", errors.New("not an IP address")
		},
		ChordTimeout: time.Millisecond,
	})
	model, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = model.(Model)

	m, _ = press(m, "f", "x")
	m, cmd := press(m, "enter")
	m = runTransform(t, m, cmd)

	require.Len(t, m.form.entries, 1)
	assert.EqualError(t, m.form.entries[0].err, "not an IP address")
	assert.False(t, m.form.running)
}

func TestFormCtrlUClears(t *testing.T) {
	m := openedForm(t)
	m, _ = press(m, "a", "b", "c")
	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	m = model.(Model)
	assert.Empty(t, m.form.input.Value())
}

func TestFormViewShowsResults(t *testing.T) {
	m := openedForm(t)
	m, _ = press(m, "a")
	m, cmd := press(m, "enter")
	m = runTransform(t, m, cmd)

	out := stripANSI(m.View())
	assert.Contains(t, out, "result for a")
}

var ansiEscapes = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// stripANSI removes SGR escape sequences so assertions can match the
// rendered text regardless of glamour's styling.
func stripANSI(s string) string {
	return ansiEscapes.ReplaceAllString(s, "")
}
