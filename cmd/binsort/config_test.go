package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amp-labs/amp-vector/envutil"
	"github.com/amp-labs/amp-vector/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		_, cfg, err := loadConfig(t.Context())
		require.NoError(t, err)

		assert.Equal(t, 5, cfg.Count)
		assert.Equal(t, vector.DefaultInitialCapacity, cfg.InitialCapacity)
		assert.Equal(t, vector.DefaultGrowthBoost, cfg.GrowthBoost)
		assert.Equal(t, orderLexical, cfg.Order)
		assert.Equal(t, language.English.String(), cfg.Locale.String())
		assert.Equal(t, "text", cfg.Output)
		assert.Equal(t, interactiveAuto, cfg.Interactive)
		assert.Empty(t, cfg.Charset)
		assert.Empty(t, cfg.MetricsFile)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Parallel()

		ctx := withEnv(t.Context(),
			"BINSORT_COUNT", "7",
			"BINSORT_INITIAL_CAPACITY", "0",
			"BINSORT_GROWTH_BOOST", "2",
			"BINSORT_ORDER", "Collate",
			"BINSORT_LOCALE", "sv",
			"BINSORT_OUTPUT", "yaml",
			"BINSORT_INTERACTIVE", "never",
			"BINSORT_CHARSET", "latin1",
			"BINSORT_METRICS_FILE", "/tmp/m.prom",
		)

		_, cfg, err := loadConfig(ctx)
		require.NoError(t, err)

		assert.Equal(t, 7, cfg.Count)
		assert.Equal(t, 0, cfg.InitialCapacity)
		assert.Equal(t, 2, cfg.GrowthBoost)
		assert.Equal(t, orderCollate, cfg.Order)
		assert.Equal(t, language.Swedish.String(), cfg.Locale.String())
		assert.Equal(t, "yaml", cfg.Output)
		assert.Equal(t, interactiveNever, cfg.Interactive)
		assert.Equal(t, "latin1", cfg.Charset)
		assert.Equal(t, "/tmp/m.prom", cfg.MetricsFile)
	})

	t.Run("reports every invalid variable", func(t *testing.T) {
		t.Parallel()

		ctx := withEnv(t.Context(),
			"BINSORT_COUNT", "0",
			"BINSORT_GROWTH_BOOST", "ten",
			"BINSORT_ORDER", "random",
		)

		_, _, err := loadConfig(ctx)
		require.ErrorIs(t, err, envutil.ErrNotPositive)
		require.ErrorIs(t, err, envutil.ErrBadEnvVar)
		require.ErrorIs(t, err, envutil.ErrNotAllowed)
		assert.Contains(t, err.Error(), "BINSORT_GROWTH_BOOST")
	})

	t.Run("reads an env file under the real environment", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "binsort.yaml")
		require.NoError(t, os.WriteFile(path, []byte("env:\n  BINSORT_COUNT: \"9\"\n  BINSORT_ORDER: natural\n"), 0o600))

		ctx := withEnv(t.Context(), "BINSORT_ENV_FILE", path, "BINSORT_ORDER", "lexical")

		ctx, cfg, err := loadConfig(ctx)
		require.NoError(t, err)

		assert.Equal(t, 9, cfg.Count)
		assert.Equal(t, orderLexical, cfg.Order)
		assert.Equal(t, "9", envutil.String(ctx, "BINSORT_COUNT").ValueOrElse(""))
	})

	t.Run("missing env file", func(t *testing.T) {
		t.Parallel()

		ctx := withEnv(t.Context(), "BINSORT_ENV_FILE", filepath.Join(t.TempDir(), "nope.env"))

		_, _, err := loadConfig(ctx)
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
