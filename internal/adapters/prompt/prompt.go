// Package prompt asks the user for a yes/no confirmation.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/pacdef/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// Confirmer implements ports.Confirmer. On a terminal it runs an interactive
// prompt, otherwise it reads one line from its input.
type Confirmer struct {
	in  io.Reader
	out io.Writer
}

// NewConfirmer creates a Confirmer reading from in and writing the prompt to out.
func NewConfirmer(in io.Reader, out io.Writer) *Confirmer {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stderr
	}
	return &Confirmer{in: in, out: out}
}

// Confirm asks prompt and reports whether the user agreed. An empty answer agrees.
func (c *Confirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	if f, ok := c.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return c.confirmInteractive(ctx, prompt)
	}
	return c.confirmLine(prompt)
}

func (c *Confirmer) confirmInteractive(ctx context.Context, prompt string) (bool, error) {
	p := tea.NewProgram(newModel(prompt),
		tea.WithContext(ctx),
		tea.WithInput(c.in),
		tea.WithOutput(c.out),
	)

	final, err := p.Run()
	if err != nil {
		return false, zerr.Wrap(err, domain.ErrConfirmationFailed.Error())
	}

	m, ok := final.(*model)
	if !ok || m.canceled {
		return false, nil
	}
	return m.answer, nil
}

func (c *Confirmer) confirmLine(prompt string) (bool, error) {
	_, _ = fmt.Fprintf(c.out, "%s [Y/n] ", prompt)

	line, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		_, _ = fmt.Fprintln(c.out)
		return false, zerr.Wrap(err, domain.ErrConfirmationFailed.Error())
	}

	return accepts(line), nil
}

// accepts reports whether a typed answer means yes.
func accepts(answer string) bool {
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "" || strings.HasPrefix(answer, "y")
}
