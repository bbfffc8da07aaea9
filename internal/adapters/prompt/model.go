package prompt

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/pacdef/internal/ui/style"
)

// model is a single-keystroke yes/no question. Enter accepts the default (yes).
type model struct {
	prompt   string
	answer   bool
	done     bool
	canceled bool

	promptStyle lipgloss.Style
	yesStyle    lipgloss.Style
	noStyle     lipgloss.Style
}

func newModel(prompt string) *model {
	return &model{
		prompt:      prompt,
		promptStyle: lipgloss.NewStyle().Bold(true),
		yesStyle:    lipgloss.NewStyle().Foreground(style.Green),
		noStyle:     lipgloss.NewStyle().Foreground(style.Red),
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.canceled = true
		return m.finish(false)
	case tea.KeyEnter:
		return m.finish(true)
	case tea.KeyRunes:
		switch strings.ToLower(string(key.Runes)) {
		case "y":
			return m.finish(true)
		case "n":
			return m.finish(false)
		}
	}
	return m, nil
}

func (m *model) finish(answer bool) (tea.Model, tea.Cmd) {
	m.answer = answer
	m.done = true
	return m, tea.Quit
}

func (m *model) View() string {
	line := m.promptStyle.Render(m.prompt) + " [Y/n] "
	if !m.done {
		return line
	}
	if m.answer {
		return line + m.yesStyle.Render("yes") + "\n"
	}
	return line + m.noStyle.Render("no") + "\n"
}
