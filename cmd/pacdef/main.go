// Package main is the entry point for pacdef.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/pacdef/cmd/pacdef/commands"
	"go.trai.ch/pacdef/internal/app"
	_ "go.trai.ch/pacdef/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

type levelSetter interface {
	SetLevel(level slog.Level)
}

type shutdowner interface {
	Shutdown(ctx context.Context) error
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		if err != nil {
			return nil, nil, err
		}
		return c, func() {
			if s, ok := c.Tracer.(shutdowner); ok {
				_ = s.Shutdown(context.Background())
			}
		}, nil
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
	opts ...commands.Option,
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, cleanup, err := provider(ctx)
	if err != nil {
		// The logger is not available yet.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	opts = append([]commands.Option{commands.WithVerboseHook(func() {
		if l, ok := components.Logger.(levelSetter); ok {
			l.SetLevel(slog.LevelDebug)
		}
	})}, opts...)

	cli := commands.New(components.App, opts...)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
