// Package shell runs the package-manager tools that backends delegate to.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/creack/pty"
	"github.com/muesli/cancelreader"
	"go.trai.ch/pacdef/internal/core/domain"
	"go.trai.ch/pacdef/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

// Runner implements ports.CommandRunner using os/exec. Interactive commands
// are attached to a pseudo-terminal when stdin is a terminal.
type Runner struct {
	logger ports.Logger
	stdin  *os.File
	stdout io.Writer
	stderr io.Writer
}

// Option configures a Runner.
type Option func(*Runner)

// WithStdio replaces the streams interactive commands are attached to.
func WithStdio(stdin *os.File, stdout, stderr io.Writer) Option {
	return func(r *Runner) {
		r.stdin = stdin
		r.stdout = stdout
		r.stderr = stderr
	}
}

// NewRunner creates a Runner bound to the process' standard streams.
func NewRunner(logger ports.Logger, opts ...Option) *Runner {
	r := &Runner{
		logger: logger,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Output runs cmd and returns its standard output. Standard error is logged
// at debug level and attached to the returned error.
func (r *Runner) Output(ctx context.Context, cmd domain.Command) ([]byte, error) {
	r.logger.Debug("query: " + cmd.String())

	var stdout, stderr bytes.Buffer
	stderrLog := &logWriter{logger: r.logger, prefix: cmd.Name + ": "}

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...) //nolint:gosec // commands are built by backends
	c.Stdout = &stdout
	c.Stderr = io.MultiWriter(&stderr, stderrLog)

	err := c.Run()
	_ = stderrLog.Close()
	if err != nil {
		return nil, commandError(err, cmd, strings.TrimSpace(stderr.String()))
	}

	return stdout.Bytes(), nil
}

// Run executes cmd attached to the terminal so that the tool can prompt.
func (r *Runner) Run(ctx context.Context, cmd domain.Command) error {
	r.logger.Debug("run: " + cmd.String())

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...) //nolint:gosec // commands are built by backends

	var err error
	if r.stdin != nil && term.IsTerminal(int(r.stdin.Fd())) {
		err = r.runPTY(c)
	} else {
		if r.stdin != nil {
			c.Stdin = r.stdin
		}
		c.Stdout = r.stdout
		c.Stderr = r.stderr
		err = c.Run()
	}

	if err != nil {
		return commandError(err, cmd, "")
	}
	return nil
}

// LookPath resolves an executable on PATH.
func (r *Runner) LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", errors.Join(domain.ErrBackendUnavailable, zerr.With(err, "command", name))
	}
	return path, nil
}

func (r *Runner) runPTY(c *exec.Cmd) error {
	// Stdin is only proxied while the child runs; later keystrokes belong
	// to the next command.
	in, err := cancelreader.NewReader(r.stdin)
	if err != nil {
		return zerr.Wrap(err, "failed to proxy stdin")
	}
	defer func() { _ = in.Close() }()

	ptmx, err := pty.Start(c)
	if err != nil {
		return zerr.Wrap(err, "failed to start pty")
	}
	defer func() { _ = ptmx.Close() }()

	_ = pty.InheritSize(r.stdin, ptmx)

	fd := int(r.stdin.Fd())
	state, err := term.MakeRaw(fd)
	if err == nil {
		defer func() { _ = term.Restore(fd, state) }()
	}

	inDone := make(chan struct{})
	go func() {
		defer close(inDone)
		_, _ = io.Copy(ptmx, in)
	}()

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		_, _ = io.Copy(r.stdout, ptmx)
	}()

	err = c.Wait()
	in.Cancel()
	<-inDone
	<-ioDone

	return err
}

func commandError(err error, cmd domain.Command, stderr string) error {
	if errors.Is(err, exec.ErrNotFound) {
		return errors.Join(domain.ErrBackendUnavailable, zerr.With(err, "command", cmd.Name))
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	wrapped := zerr.With(zerr.Wrap(err, "command failed"), "command", cmd.String())
	wrapped = zerr.With(wrapped, "exit_code", exitCode)
	if stderr != "" {
		wrapped = zerr.With(wrapped, "stderr", stderr)
	}
	return wrapped
}

// logWriter forwards complete lines to the logger at debug level.
type logWriter struct {
	logger ports.Logger
	prefix string
	buf    []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	if msg == "" {
		return
	}
	w.logger.Debug(w.prefix + msg)
}
