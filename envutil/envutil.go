// Package envutil reads typed configuration from environment variables.
//
//	count := envutil.Int[int](ctx, "BINSORT_COUNT",
//	    envutil.Default(5),
//	    envutil.Validate(envutil.Positive[int])).ValueOrFatal()
package envutil

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"unsafe"
)

var (
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrNotPositive     = errors.New("value must be positive")
	ErrNegative        = errors.New("value must not be negative")
	ErrNotAllowed      = errors.New("value not allowed")
)

// get returns a Reader for the given key, preferring a context override
// to the process environment.
func get(ctx context.Context, key string) Reader[string] {
	if val, ok := getEnvOverride(ctx, key); ok {
		return Reader[string]{key: key, present: true, value: val}
	}

	val, ok := os.LookupEnv(key)

	return Reader[string]{
		key:     key,
		present: ok,
		value:   val,
	}
}

func apply[T any](rdr Reader[T], opts []Option[T]) Reader[T] {
	for _, opt := range opts {
		rdr = opt(rdr)
	}

	return rdr
}

// String returns a Reader for the given environment variable key.
func String(ctx context.Context, key string, opts ...Option[string]) Reader[string] {
	return apply(get(ctx, key), opts)
}

// Bool reads a value accepted by strconv.ParseBool.
func Bool(ctx context.Context, key string, opts ...Option[bool]) Reader[bool] {
	return apply(Map(get(ctx, key), strconv.ParseBool), opts)
}

// Int reads a base-10 integer.
func Int[I ~int | ~int32 | ~int64](ctx context.Context, key string, opts ...Option[I]) Reader[I] {
	rdr := Map(get(ctx, key), func(s string) (I, error) {
		n, err := strconv.ParseInt(strings.TrimSpace(s), 10, int(unsafe.Sizeof(I(0))*8)) //nolint:mnd

		return I(n), err
	})

	return apply(rdr, opts)
}

// SlogLevel reads one of debug, info, warn or error, case-insensitively.
func SlogLevel(ctx context.Context, key string, opts ...Option[slog.Level]) Reader[slog.Level] {
	rdr := Map(get(ctx, key), func(s string) (slog.Level, error) {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "debug":
			return slog.LevelDebug, nil
		case "info":
			return slog.LevelInfo, nil
		case "warn":
			return slog.LevelWarn, nil
		case "error":
			return slog.LevelError, nil
		default:
			return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, s)
		}
	})

	return apply(rdr, opts)
}

// OneOf reads a string that must be one of the allowed values, compared
// case-insensitively. The value is returned lower-cased.
func OneOf(ctx context.Context, key string, allowed []string, opts ...Option[string]) Reader[string] {
	rdr := Map(get(ctx, key), func(s string) (string, error) {
		s = strings.ToLower(strings.TrimSpace(s))
		if !slices.Contains(allowed, s) {
			return s, fmt.Errorf("%w: %q (expected one of %s)", ErrNotAllowed, s, strings.Join(allowed, ", "))
		}

		return s, nil
	})

	return apply(rdr, opts)
}

// Positive is a Validate function requiring n > 0.
func Positive[I ~int | ~int32 | ~int64](n I) error {
	if n <= 0 {
		return fmt.Errorf("%w: %d", ErrNotPositive, n)
	}

	return nil
}

// NonNegative is a Validate function requiring n >= 0.
func NonNegative[I ~int | ~int32 | ~int64](n I) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegative, n)
	}

	return nil
}
