// Package tests provides helpers shared by the test suites of this module:
// test-scoped contexts, unique input data and ordering assertions.
package tests

import (
	"context"
	"strings"
	"testing"

	"github.com/amp-labs/amp-vector/envutil"
	"github.com/amp-labs/amp-vector/sortable"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type contextKey string

const (
	testIdKey   contextKey = "testId"
	testNameKey contextKey = "testName"
)

// Info is the test metadata stored by GetUniqueContext.
type Info struct {
	Id   string
	Name string
}

// GetUniqueContext returns t.Context() tagged with a unique test ID
// ("test-<uuid>") and the test name.
func GetUniqueContext(t *testing.T) context.Context {
	t.Helper()

	ctx := context.WithValue(t.Context(), testIdKey, "test-"+uuid.New().String())

	return context.WithValue(ctx, testNameKey, t.Name())
}

// GetTestInfo returns the metadata stored by GetUniqueContext.
func GetTestInfo(ctx context.Context) (Info, bool) {
	id, ok := ctx.Value(testIdKey).(string)
	if !ok {
		return Info{}, false
	}

	name, _ := ctx.Value(testNameKey).(string)

	return Info{Id: id, Name: name}, true
}

// CheckSkipped skips the test when the boolean environment variable envKey
// is true. defaultValue is used when the variable is unset.
func CheckSkipped(ctx context.Context, t *testing.T, envKey string, defaultValue bool) {
	t.Helper()

	if envutil.Bool(ctx, envKey, envutil.Default(defaultValue)).ValueOrElse(defaultValue) {
		t.Skipf("skipped because %s is set", envKey)
	}
}

// UniqueTokens returns count distinct whitespace-free tokens in random order.
func UniqueTokens(t *testing.T, count int) []string {
	t.Helper()

	out := make([]string, count)
	for i := range out {
		out[i] = strings.ReplaceAll(uuid.New().String(), "-", "")
	}

	return out
}

// RequireSorted fails the test unless items are in non-decreasing order.
func RequireSorted[T sortable.Sortable[T]](t *testing.T, items []T) {
	t.Helper()

	for i := 1; i < len(items); i++ {
		require.Falsef(t, items[i].LessThan(items[i-1]),
			"element %d (%v) sorts before element %d (%v)", i, items[i], i-1, items[i-1])
	}
}
