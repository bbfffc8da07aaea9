package shell_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pacdef/internal/adapters/shell"
	"go.trai.ch/pacdef/internal/core/domain"
	"go.trai.ch/pacdef/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// A terminal answer typed after one tool exits must reach the next tool.
func TestRunner_Run_TerminalInputReachesNextCommand(t *testing.T) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("no pty available: %v", err)
	}
	t.Cleanup(func() {
		_ = ptmx.Close()
		_ = tty.Close()
	})

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	var out bytes.Buffer
	r := shell.NewRunner(log, shell.WithStdio(tty, &out, &out))

	for range 5 {
		out.Reset()

		ctx, cancel := context.WithTimeout(t.Context(), 10*time.Second)
		require.NoError(t, r.Run(ctx, domain.NewCommand("true")))

		_, err := ptmx.Write([]byte("y\r"))
		require.NoError(t, err)

		err = r.Run(ctx, domain.NewCommand("sh", "-c", "read ans; echo GOT=$ans"))
		cancel()
		require.NoError(t, err)
		assert.Contains(t, out.String(), "GOT=y")
	}
}
