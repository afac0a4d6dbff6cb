package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/amp-labs/amp-vector/cli"
	"github.com/amp-labs/amp-vector/logger"
	"github.com/amp-labs/amp-vector/sortable"
	"github.com/amp-labs/amp-vector/vector"
	"github.com/prometheus/client_golang/prometheus"
)

// run asks for cfg.Count strings, sorts them by binary insertion and prints
// the result. The prompt and result labels only appear in text output, so
// JSON and YAML output stay machine readable.
func run(ctx context.Context, cfg Config, src cli.TokenSource, out io.Writer) error {
	text := cfg.Output == cli.FormatText

	if text {
		prompt := fmt.Sprintf("Enter %d strings that you would like to be sorted alphabetically:", cfg.Count)
		if _, err := fmt.Fprint(out, cli.BannerAutoWidth(ctx, prompt, cli.AlignLeft)); err != nil {
			return err
		}
	}

	tokens, err := src.Tokens(ctx, cfg.Count)
	if err != nil {
		return err
	}

	result := sortTokens(ctx, cfg, tokens)

	if text {
		label := "Here are your alphabetically sorted strings:"
		if _, err := fmt.Fprint(out, "\n", cli.BannerAutoWidth(ctx, label, cli.AlignLeft)); err != nil {
			return err
		}
	}

	if text {
		_, err := fmt.Fprintln(out, result.text)

		return err
	}

	return cli.Render(out, cfg.Output, result.items)
}

// sorted holds the vector's own rendering alongside its entries as strings.
type sorted struct {
	text  string
	items []string
}

// sortTokens inserts the tokens into a vector ordered the way cfg asks for.
func sortTokens(ctx context.Context, cfg Config, tokens []string) sorted {
	switch cfg.Order {
	case orderNatural:
		return binarySort(ctx, cfg, tokens, func(s string) sortable.Natural { return sortable.Natural(s) })
	case orderCollate:
		return binarySort(ctx, cfg, tokens, sortable.NewCollator(cfg.Locale).Make)
	default:
		return binarySort(ctx, cfg, tokens, func(s string) sortable.String { return sortable.String(s) })
	}
}

func binarySort[T sortable.Sortable[T]](
	ctx context.Context,
	cfg Config,
	tokens []string,
	wrap func(string) T,
) sorted {
	log := logger.Get(logger.With(ctx, "order", cfg.Order))

	vec := vector.New[T](append(cfg.vectorOptions(), vector.WithLogger(log))...)

	for _, token := range tokens {
		index := vec.BinaryInsert(wrap(token))
		log.Debug("inserted", "token", token, "index", index, "size", vec.Size(), "capacity", vec.Capacity())
	}

	entries := vec.Entries()
	items := make([]string, len(entries))

	for i, e := range entries {
		items[i] = fmt.Sprint(e)
	}

	return sorted{text: vec.String(), items: items}
}

// tokenSource picks interactive prompts for a terminal and plain reading otherwise.
func tokenSource(cfg Config, stdin *os.File) cli.TokenSource {
	switch cfg.Interactive {
	case interactiveAlways:
		return cli.NewPromptSource()
	case interactiveNever:
		return cli.NewReaderSource(stdin, cfg.Charset)
	default:
		if cli.IsTerminal(stdin) {
			return cli.NewPromptSource()
		}

		return cli.NewReaderSource(stdin, cfg.Charset)
	}
}

// writeMetrics dumps the default Prometheus registry in the textfile
// collector format, for node_exporter or for inspection.
func writeMetrics(path string) error {
	if path == "" {
		return nil
	}

	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}

	return nil
}
