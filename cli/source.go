package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/manifoldco/promptui"
)

var (
	// ErrShortInput is returned when the input ends before enough tokens were read.
	ErrShortInput = errors.New("not enough input")

	errEmptyToken      = errors.New("you must enter something")
	errWhitespaceToken = errors.New("a single word is expected, without spaces")
)

// TokenSource produces a fixed number of whitespace-free string tokens.
type TokenSource interface {
	Tokens(ctx context.Context, count int) ([]string, error)
}

// ReaderSource reads whitespace-delimited tokens from a stream, stopping as
// soon as it has enough, so it works with a terminal as well as with a pipe.
type ReaderSource struct {
	r       io.Reader
	charset string
}

// NewReaderSource reads tokens from r. If charset is empty, non-UTF-8 input
// has its character set detected.
func NewReaderSource(r io.Reader, charset string) *ReaderSource {
	return &ReaderSource{r: r, charset: charset}
}

func (s *ReaderSource) Tokens(ctx context.Context, count int) ([]string, error) {
	scanner := bufio.NewScanner(s.r)
	scanner.Split(bufio.ScanWords)

	raw := make([][]byte, 0, count)

	for len(raw) < count && scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw = append(raw, append([]byte(nil), scanner.Bytes()...))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading tokens: %w", err)
	}

	if len(raw) < count {
		return nil, fmt.Errorf("%w: expected %d strings, got %d", ErrShortInput, count, len(raw))
	}

	return DecodeTokens(raw, s.charset)
}

// PromptSource asks for each token with an interactive promptui prompt.
type PromptSource struct {
	stdin  io.ReadCloser
	stdout io.WriteCloser
}

// NewPromptSource prompts on the process's terminal.
func NewPromptSource() *PromptSource {
	return &PromptSource{stdin: os.Stdin, stdout: os.Stdout}
}

func (s *PromptSource) Tokens(ctx context.Context, count int) ([]string, error) {
	out := make([]string, 0, count)

	for i := range count {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		prompt := promptui.Prompt{
			Label:    fmt.Sprintf("String %d of %d", i+1, count),
			Validate: validateToken,
			Stdin:    s.stdin,
			Stdout:   s.stdout,
		}

		token, err := prompt.Run()
		if err != nil {
			return nil, fmt.Errorf("prompting for string %d: %w", i+1, err)
		}

		out = append(out, token)
	}

	return DecodeTokens(toBytes(out), "")
}

func validateToken(s string) error {
	if len(s) == 0 {
		return errEmptyToken
	}

	if strings.ContainsFunc(s, unicode.IsSpace) {
		return errWhitespaceToken
	}

	return nil
}

func toBytes(tokens []string) [][]byte {
	out := make([][]byte, len(tokens))
	for i, t := range tokens {
		out[i] = []byte(t)
	}

	return out
}

// IsTerminal reports whether f is an interactive character device.
func IsTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeCharDevice != 0
}
