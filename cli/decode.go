package cli

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/unicode/norm"
)

// ErrUnknownCharset is returned when input is not UTF-8 and its character
// set can neither be detected nor looked up by name.
var ErrUnknownCharset = errors.New("unknown character set")

// DecodeTokens turns raw tokens into NFC-normalized UTF-8 strings.
//
// If charset is empty and the tokens are already valid UTF-8 they are only
// normalized. Otherwise the charset is taken from the argument or, failing
// that, detected from all tokens together, and each token is converted.
func DecodeTokens(raw [][]byte, charset string) ([]string, error) {
	if charset == "" && allValidUTF8(raw) {
		return normalize(raw, func(b []byte) ([]byte, error) { return b, nil })
	}

	if charset == "" {
		detected, err := DetectCharset(raw)
		if err != nil {
			return nil, err
		}

		charset = detected
	}

	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrUnknownCharset, charset, err)
	}

	decoder := enc.NewDecoder()

	return normalize(raw, decoder.Bytes)
}

// DetectCharset guesses the character set of the given tokens.
func DetectCharset(raw [][]byte) (string, error) {
	joined := make([]byte, 0)

	for _, token := range raw {
		joined = append(joined, token...)
		joined = append(joined, ' ')
	}

	result, err := chardet.NewTextDetector().DetectBest(joined)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnknownCharset, err)
	}

	return strings.ToLower(result.Charset), nil
}

func allValidUTF8(raw [][]byte) bool {
	for _, token := range raw {
		if !utf8.Valid(token) {
			return false
		}
	}

	return true
}

func normalize(raw [][]byte, convert func([]byte) ([]byte, error)) ([]string, error) {
	out := make([]string, len(raw))

	for i, token := range raw {
		converted, err := convert(token)
		if err != nil {
			return nil, err
		}

		out[i] = norm.NFC.String(string(converted))
	}

	return out, nil
}
