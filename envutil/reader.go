//nolint:ireturn
package envutil

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
)

var (
	ErrBadEnvVar     = errors.New("error parsing environment variable")
	ErrEnvVarMissing = errors.New("missing environment variable")
)

// Reader is a value read from an environment variable, along with whether it
// was present and any error hit while parsing it. Readers are immutable; the
// With* methods and Map return new Readers.
type Reader[A any] struct {
	key     string
	present bool
	err     error

	value A
}

// Key returns the key of the environment variable.
func (e Reader[A]) Key() string {
	return e.key
}

// Value returns the value of the environment variable, or an error if the value
// is missing or if there was an error parsing it.
func (e Reader[A]) Value() (A, error) {
	if e.err != nil {
		return e.value, fmt.Errorf("%w %s: %w", ErrBadEnvVar, e.key, e.err)
	}

	if !e.present {
		return e.value, fmt.Errorf("%w %s", ErrEnvVarMissing, e.key)
	}

	return e.value, nil
}

// ValueOrFatal returns the value of the environment variable, or exits the
// program if the value is missing or if there was an error parsing it.
func (e Reader[A]) ValueOrFatal() A {
	value, err := e.Value()
	if err != nil {
		slog.Error("error reading environment variable", "key", e.key, "error", err)
		os.Exit(1)
	}

	return value
}

// ValueOrElse returns the value of the environment variable, or a default value
// if the value is missing or if there was an error parsing it.
func (e Reader[A]) ValueOrElse(v A) A {
	if e.present && e.err == nil {
		return e.value
	}

	if e.err != nil {
		slog.Warn("error reading environment variable, using fallback value",
			"key", e.key, "error", e.err, "fallback", v)
	}

	return v
}

// HasValue returns true if the environment variable was set and parsed cleanly.
func (e Reader[A]) HasValue() bool {
	return e.present && e.err == nil
}

// Error returns the error that occurred when reading the environment variable, if any.
func (e Reader[A]) Error() error {
	return e.err
}

// String returns a string representation of the Reader.
func (e Reader[A]) String() string {
	if e.present && e.err == nil {
		return fmt.Sprintf("%s=%v", e.key, e.value)
	}

	if e.err != nil {
		return fmt.Sprintf("%s=<error: %v>", e.key, e.err)
	}

	return e.key + "=<not set>"
}

// WithErrorIfMissing returns a new Reader with the given error if the original
// Reader has no value. A Reader that has a value or already failed is returned as is.
func (e Reader[A]) WithErrorIfMissing(err error) Reader[A] {
	if e.present || e.err != nil {
		return e
	}

	return Reader[A]{
		key: e.key,
		err: err,
	}
}

// WithDefault returns a new Reader holding v if the original Reader has no value.
func (e Reader[A]) WithDefault(v A) Reader[A] {
	if e.present {
		return e
	}

	return Reader[A]{
		key:     e.key,
		present: true,
		err:     e.err,
		value:   v,
	}
}

// Map returns a new Reader with the value transformed by the given function.
// Less flexible than Map (type is restricted), but slightly more convenient.
func (e Reader[A]) Map(f func(A) (A, error)) Reader[A] {
	return Map(e, f)
}

// Map returns a new Reader with the value transformed by the given function.
// Missing values and earlier errors pass through without calling f.
func Map[A any, B any](env Reader[A], f func(A) (B, error)) Reader[B] {
	if !env.present || env.err != nil {
		return Reader[B]{
			key:     env.key,
			present: env.present,
			err:     env.err,
		}
	}

	val, err := f(env.value)

	return Reader[B]{
		key:     env.key,
		present: true,
		err:     err,
		value:   val,
	}
}
