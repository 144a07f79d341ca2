package signaler

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ogrekit/ogrekit/log"
)

// CancelOnInterrupt returns a context which is cancelled when the process
// receives an interrupt or terminate signal
func CancelOnInterrupt(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		defer signal.Stop(c)
		select {
		case sig := <-c:
			log.Warnf(log.Global, "Captured %v, cancelling outstanding requests.", sig)
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}
