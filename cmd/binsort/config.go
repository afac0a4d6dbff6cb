package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/amp-labs/amp-vector/cli"
	"github.com/amp-labs/amp-vector/envutil"
	"github.com/amp-labs/amp-vector/vector"
	"golang.org/x/text/language"
)

const (
	orderLexical = "lexical"
	orderNatural = "natural"
	orderCollate = "collate"

	interactiveAuto   = "auto"
	interactiveAlways = "always"
	interactiveNever  = "never"

	defaultCount = 5
)

// Config is everything binsort reads from the environment.
type Config struct {
	Count           int
	InitialCapacity int
	GrowthBoost     int
	Order           string
	Locale          language.Tag
	Output          string
	Interactive     string
	Charset         string
	MetricsFile     string
}

// loadConfig reads the configuration. If BINSORT_ENV_FILE names a file, its
// variables are layered under the real environment first, and the returned
// context carries them so later readers (such as logging) see them too.
func loadConfig(ctx context.Context) (context.Context, Config, error) {
	if envFile := envutil.String(ctx, "BINSORT_ENV_FILE"); envFile.HasValue() {
		vars, err := envutil.LoadEnvFile(envFile.ValueOrElse(""))
		if err != nil {
			return ctx, Config{}, fmt.Errorf("loading BINSORT_ENV_FILE: %w", err)
		}

		ctx = envutil.Overlay(ctx, vars)
	}

	var (
		cfg  Config
		errs []error
		err  error
	)

	cfg.Count, err = envutil.Int[int](ctx, "BINSORT_COUNT",
		envutil.Default(defaultCount), envutil.Validate(envutil.Positive[int])).Value()
	errs = append(errs, err)

	cfg.InitialCapacity, err = envutil.Int[int](ctx, "BINSORT_INITIAL_CAPACITY",
		envutil.Default(vector.DefaultInitialCapacity), envutil.Validate(envutil.NonNegative[int])).Value()
	errs = append(errs, err)

	cfg.GrowthBoost, err = envutil.Int[int](ctx, "BINSORT_GROWTH_BOOST",
		envutil.Default(vector.DefaultGrowthBoost), envutil.Validate(envutil.Positive[int])).Value()
	errs = append(errs, err)

	cfg.Order, err = envutil.OneOf(ctx, "BINSORT_ORDER",
		[]string{orderLexical, orderNatural, orderCollate}, envutil.Default(orderLexical)).Value()
	errs = append(errs, err)

	cfg.Locale, err = envutil.Map(envutil.String(ctx, "BINSORT_LOCALE", envutil.Default("en")), language.Parse).Value()
	errs = append(errs, err)

	cfg.Output, err = envutil.OneOf(ctx, "BINSORT_OUTPUT", cli.Formats, envutil.Default(cli.FormatText)).Value()
	errs = append(errs, err)

	cfg.Interactive, err = envutil.OneOf(ctx, "BINSORT_INTERACTIVE",
		[]string{interactiveAuto, interactiveAlways, interactiveNever}, envutil.Default(interactiveAuto)).Value()
	errs = append(errs, err)

	cfg.Charset = envutil.String(ctx, "BINSORT_CHARSET").ValueOrElse("")
	cfg.MetricsFile = envutil.String(ctx, "BINSORT_METRICS_FILE").ValueOrElse("")

	return ctx, cfg, errors.Join(errs...)
}

// vectorOptions turns the configuration into container options.
func (c Config) vectorOptions() []vector.Option {
	return []vector.Option{
		vector.WithName("binsort"),
		vector.WithInitialCapacity(c.InitialCapacity),
		vector.WithGrowthBoost(c.GrowthBoost),
	}
}
