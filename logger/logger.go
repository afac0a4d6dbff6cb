package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/amp-labs/amp-vector/envutil"
	"github.com/amp-labs/amp-vector/shutdown"
)

// Used for tagging every log line with the part of the system that produced it.
var subsystem atomic.Value //nolint:gochecknoglobals

// configMutex protects concurrent calls to ConfigureLoggingWithOptions.
// This is necessary because the function modifies global state (slog.SetDefault and log.Default).
var configMutex sync.Mutex //nolint:gochecknoglobals

// It's considered good practice to use unexported custom types for context keys.
type contextKey string

// Fatal logs an error message, runs the shutdown hooks and exits the application.
func Fatal(msg string, args ...any) {
	slog.Error(msg, args...)

	shutdown.Shutdown()

	time.Sleep(100 * time.Millisecond) //nolint:mnd

	os.Exit(1)
}

// Options is used to configure logging.
type Options struct {
	Subsystem   string
	JSON        bool
	MinLevel    slog.Level
	LegacyLevel slog.Level
	Output      io.Writer
}

// ConfigureLoggingWithOptions configures logging for the application.
// It returns the default logger.
// This function is thread-safe but modifies global state, so concurrent calls
// will be serialized.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.MinLevel}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(opts.Output, handlerOpts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	// Third party packages may still use the old log package; route it through slog.
	def := log.Default()
	*def = *slog.NewLogLogger(handler, opts.LegacyLevel)

	subsystem.Store(opts.Subsystem)

	return logger
}

// Option is a functional option for configuring logging via ConfigureLogging.
// Options set code defaults; environment variables override them.
type Option func(*Options)

// WithOutput sets where logs go when LOG_OUTPUT is not set.
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		o.Output = w
	}
}

// WithMinLevel sets the minimum level when LOG_LEVEL is not set.
func WithMinLevel(level slog.Level) Option {
	return func(o *Options) {
		o.MinLevel = level
	}
}

// ErrInvalidLogOutput is returned when an invalid log output destination is specified.
var ErrInvalidLogOutput = errors.New("invalid log output")

// ConfigureLogging configures logging for the application from the environment:
//
//	LOG_JSON          true for JSON lines, default text
//	LOG_LEVEL         debug, info, warn or error
//	LEGACY_LOG_LEVEL  level used for messages from the standard log package
//	LOG_OUTPUT        stdout or stderr
//
// It returns the default logger.
func ConfigureLogging(ctx context.Context, app string, opts ...Option) *slog.Logger {
	options := Options{
		Subsystem:   app,
		MinLevel:    slog.LevelInfo,
		LegacyLevel: slog.LevelInfo,
		Output:      os.Stdout,
	}

	for _, o := range opts {
		o(&options)
	}

	options.JSON = envutil.Bool(ctx, "LOG_JSON", envutil.Default(false)).ValueOrFatal()
	options.MinLevel = envutil.SlogLevel(ctx, "LOG_LEVEL", envutil.Default(options.MinLevel)).ValueOrFatal()
	options.LegacyLevel = envutil.SlogLevel(ctx, "LEGACY_LOG_LEVEL",
		envutil.Default(options.LegacyLevel)).ValueOrFatal()

	options.Output = envutil.Map(envutil.String(ctx, "LOG_OUTPUT"), func(outName string) (io.Writer, error) {
		switch outName {
		case "stdout":
			return os.Stdout, nil
		case "stderr":
			return os.Stderr, nil
		default:
			return nil, fmt.Errorf("%w: %q", ErrInvalidLogOutput, outName)
		}
	}).WithDefault(options.Output).ValueOrFatal()

	return ConfigureLoggingWithOptions(options)
}

// WithMuted adds a muted flag to the context. When muted is true, loggers
// obtained from Get for this context discard everything.
func WithMuted(ctx context.Context, muted bool) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("mute"), muted)
}

func isMuted(ctx context.Context) bool {
	muted, ok := ctx.Value(contextKey("mute")).(bool)

	return ok && muted
}

// WithSubsystem overrides the subsystem for loggers obtained from this context.
func WithSubsystem(ctx context.Context, subsystem string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	return context.WithValue(ctx, contextKey("subsystem"), subsystem)
}

// GetSubsystem returns the subsystem from the context. If the
// subsystem is not provided, the default subsystem will be used.
func GetSubsystem(ctx context.Context) string { //nolint:contextcheck
	if ctx == nil {
		ctx = context.Background()
	}

	if val, ok := ctx.Value(contextKey("subsystem")).(string); ok {
		return val
	}

	if val, ok := subsystem.Load().(string); ok {
		return val
	}

	return ""
}

// With returns a new context with the given values added.
// The values are added to the logger automatically.
func With(ctx context.Context, values ...any) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	if len(values) == 0 {
		return ctx
	}

	vals := append(getValues(ctx), values...) //nolint:gocritic

	return context.WithValue(ctx, contextKey("loggerValues"), vals)
}

func getValues(ctx context.Context) []any {
	vals, ok := ctx.Value(contextKey("loggerValues")).([]any)
	if !ok {
		return nil
	}

	// Copy so that sibling contexts never share a backing array.
	out := make([]any, len(vals))
	copy(out, vals)

	return out
}

// nullHandler discards everything; it backs the muted logger.
type nullHandler struct{}

func (n *nullHandler) Enabled(_ context.Context, _ slog.Level) bool  { return false }
func (n *nullHandler) Handle(_ context.Context, _ slog.Record) error { return nil }
func (n *nullHandler) WithAttrs(_ []slog.Attr) slog.Handler          { return n }
func (n *nullHandler) WithGroup(_ string) slog.Handler               { return n }

var nullLogger = slog.New(&nullHandler{}) //nolint:gochecknoglobals

// Get returns a logger tagged with the subsystem and any values added with
// With. Only the first non-nil context is looked at.
//
//nolint:contextcheck
func Get(ctx ...context.Context) *slog.Logger {
	realCtx := context.Background()

	for _, c := range ctx {
		if c != nil {
			realCtx = c

			break
		}
	}

	if isMuted(realCtx) {
		return nullLogger
	}

	logger := slog.Default().With("subsystem", GetSubsystem(realCtx))

	if vals := getValues(realCtx); len(vals) > 0 {
		logger = logger.With(vals...)
	}

	return logger
}
