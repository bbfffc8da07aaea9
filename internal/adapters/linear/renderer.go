// Package linear provides a plain line-oriented renderer for command output.
package linear

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/pacdef/internal/core/domain"
	"go.trai.ch/pacdef/internal/ui/output"
	"go.trai.ch/pacdef/internal/ui/style"
)

// Renderer implements ports.Renderer by writing to stdout.
type Renderer struct {
	mu  sync.Mutex
	w   io.Writer
	out *termenv.Output
}

// NewRenderer creates a Renderer writing to w. A nil writer means stdout.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stdout
	}
	return &Renderer{w: w, out: output.New(w)}
}

// Summary prints the packages of every non-empty entry below its backend
// section. With a header, sections are indented below it.
func (r *Renderer) Summary(header string, entries []domain.SectionPackages) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sectionIndent, packageIndent := "", style.SectionIndent
	if header != "" {
		sectionIndent, packageIndent = style.SectionIndent, style.PackageIndent
		r.println(r.out.String(header).Bold().String())
	}

	for _, entry := range entries {
		if entry.Packages.IsEmpty() {
			continue
		}
		r.println(sectionIndent + output.Styled(r.out, entry.Section, string(style.Accent)))
		for _, pkg := range entry.Packages {
			r.println(packageIndent + pkg)
		}
	}
}

// List prints one item per line.
func (r *Renderer) List(items []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range items {
		r.println(item)
	}
}

// Message prints a single line.
func (r *Renderer) Message(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.println(msg)
}

func (r *Renderer) println(line string) {
	_, _ = fmt.Fprintln(r.w, line)
}
