//nolint:testpackage // Test needs access to unexported fields
package prompt

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestModel_Update(t *testing.T) {
	tests := []struct {
		name         string
		msg          tea.KeyMsg
		wantAnswer   bool
		wantCanceled bool
	}{
		{name: "enter accepts", msg: tea.KeyMsg{Type: tea.KeyEnter}, wantAnswer: true},
		{name: "y accepts", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}, wantAnswer: true},
		{name: "Y accepts", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Y")}, wantAnswer: true},
		{name: "n declines", msg: tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}, wantAnswer: false},
		{name: "ctrl+c cancels", msg: tea.KeyMsg{Type: tea.KeyCtrlC}, wantCanceled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newModel("Continue?")

			_, cmd := m.Update(tt.msg)
			assert.NotNil(t, cmd)
			assert.True(t, m.done)
			assert.Equal(t, tt.wantAnswer, m.answer)
			assert.Equal(t, tt.wantCanceled, m.canceled)
		})
	}
}

func TestModel_IgnoresOtherKeys(t *testing.T) {
	m := newModel("Continue?")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Nil(t, cmd)
	assert.False(t, m.done)

	_, cmd = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd)
}

func TestModel_View(t *testing.T) {
	m := newModel("Continue?")
	assert.Contains(t, m.View(), "[Y/n]")

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	assert.Contains(t, m.View(), "no")
}
