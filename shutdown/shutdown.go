// Package shutdown ties a command's root context to SIGINT/SIGTERM and runs
// registered hooks exactly once when the process is asked to stop.
package shutdown

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

var (
	mut     sync.Mutex         //nolint:gochecknoglobals
	hooks   []func()           //nolint:gochecknoglobals
	trigger chan os.Signal     //nolint:gochecknoglobals
	cancel  context.CancelFunc //nolint:gochecknoglobals
)

// BeforeShutdown registers a function to be called before the root context
// is canceled. Hooks run in registration order.
func BeforeShutdown(h func()) {
	mut.Lock()
	defer mut.Unlock()

	hooks = append(hooks, h)
}

// Shutdown runs the hooks and cancels the root context without going through
// the signal path. It is a no-op if SetupHandler was never called or shutdown
// already happened.
func Shutdown() {
	mut.Lock()
	active := trigger != nil
	mut.Unlock()

	if !active {
		return
	}

	stop()
}

// SetupHandler installs a handler for SIGINT and SIGTERM and returns a
// context that is canceled, after the hooks have run, when either arrives
// or Shutdown is called.
func SetupHandler() context.Context {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	ctx, cancelFn := context.WithCancel(context.Background())

	mut.Lock()
	trigger = ch
	cancel = cancelFn
	mut.Unlock()

	go func() {
		sig, ok := <-ch
		if !ok {
			return
		}

		slog.Warn("Received " + sig.String() + ", shutting down...")

		stop()
	}()

	return ctx
}

// stop detaches the signal handler, runs the hooks and cancels the context.
func stop() {
	mut.Lock()

	if trigger != nil {
		signal.Stop(trigger)
		close(trigger)
	}

	trigger = nil
	pending := hooks
	hooks = nil
	cancelFn := cancel
	cancel = nil

	mut.Unlock()

	for _, h := range pending {
		h()
	}

	if cancelFn != nil {
		cancelFn()
	}
}
