package signaler

import (
	"context"
	"os"
	"runtime"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Signals are process wide, so these tests must not run in parallel.

func TestCancelOnInterruptSignal(t *testing.T) {
	for _, sig := range []os.Signal{syscall.SIGTERM, os.Interrupt} {
		ctx, cancel := CancelOnInterrupt(context.Background())
		proc, err := os.FindProcess(os.Getpid())
		require.NoError(t, err, "os.FindProcess must not error")

		if err := proc.Signal(sig); err != nil {
			cancel()
			if runtime.GOOS == "windows" {
				t.Skipf("proc.Signal(%s) not supported on Windows: %v", sig, err)
			}
			require.NoErrorf(t, err, "proc.Signal(%s) must not error", sig)
		}

		assert.Eventuallyf(t, func() bool {
			return ctx.Err() != nil
		}, 2*time.Second, 10*time.Millisecond, "Signal %s should cancel the context within timeout", sig)
		cancel()
	}
}

func TestCancelOnInterrupt(t *testing.T) {
	parent, cancelParent := context.WithCancel(context.Background())
	ctx, cancel := CancelOnInterrupt(parent)
	defer cancel()
	assert.NoError(t, ctx.Err())

	cancelParent()
	assert.Eventually(t, func() bool {
		return ctx.Err() != nil
	}, 2*time.Second, 10*time.Millisecond, "context should be cancelled with its parent")
}
