package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists every format Render accepts.
var Formats = []string{FormatText, FormatJSON, FormatYAML} //nolint:gochecknoglobals

// ErrUnknownFormat is returned by Render for a format not in Formats.
var ErrUnknownFormat = errors.New("unknown output format")

// Render writes items to w. Text is a single space-separated line; JSON
// and YAML are arrays of strings.
func Render(w io.Writer, format string, items []string) error {
	switch format {
	case FormatText:
		_, err := fmt.Fprintln(w, strings.Join(items, " "))

		return err
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetEscapeHTML(false)
		encoder.SetIndent("", "  ")

		if items == nil {
			items = []string{}
		}

		return encoder.Encode(items)
	case FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2) //nolint:mnd

		if err := encoder.Encode(items); err != nil {
			return err
		}

		return encoder.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
