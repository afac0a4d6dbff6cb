package cli

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/amp-labs/amp-vector/envutil"
)

const (
	boxTopLeft     = "╒"
	boxBottomLeft  = "└"
	boxTopRight    = "╕"
	boxBottomRight = "┘"
	boxSide        = "│"
	boxTop         = "═"
	boxBottom      = "─"
	dividerLeft    = "┠"
	dividerMiddle  = "─"
	dividerRight   = "┨"
	ellipsis       = "…"
)

const (
	AlignLeft = iota
	AlignCenter
	AlignRight

	bannerPadding   = 2
	dividerPadding  = 2
	truncateReserve = 1
	halfDivisor     = 2
)

const DefaultTerminalWidth = 80

// BannersSuppressed reports whether AMP_NO_BANNER asks for plain text
// instead of boxed banners.
func BannersSuppressed(ctx context.Context) bool {
	return envutil.Bool(ctx, "AMP_NO_BANNER", envutil.Default(false)).ValueOrElse(false)
}

// Divider returns a horizontal rule of the given width, newline terminated.
func Divider(width int) string {
	return fmt.Sprintf("%s%s%s\n", dividerLeft, strings.Repeat(dividerMiddle, max(width-dividerPadding, 0)), dividerRight)
}

// BannerAutoWidth boxes s using DefaultTerminalWidth, or returns it unboxed
// when banners are suppressed.
func BannerAutoWidth(ctx context.Context, s string, alignment int) string {
	if BannersSuppressed(ctx) {
		return s + "\n"
	}

	return Banner(s, DefaultTerminalWidth, alignment)
}

// Banner draws s inside a box of the given width, one row per line of s.
// Lines longer than the box are truncated with an ellipsis. An unknown
// alignment or a non-positive width yields "".
func Banner(s string, width int, alignment int) string {
	if width <= bannerPadding {
		return ""
	}

	inner := width - bannerPadding
	parts := []string{boxTopLeft + strings.Repeat(boxTop, inner) + boxTopRight}

	for _, l := range getLines(s) {
		line, ok := pad(l, inner, alignment)
		if !ok {
			return ""
		}

		parts = append(parts, boxSide+line+boxSide)
	}

	parts = append(parts, boxBottomLeft+strings.Repeat(boxBottom, inner)+boxBottomRight)

	return strings.Join(parts, "\n") + "\n"
}

func getLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")

	return strings.Split(s, "\n")
}

func countGraphic(s string) int {
	count := 0

	for _, r := range s {
		if unicode.IsGraphic(r) {
			count++
		}
	}

	return count
}

func truncateGraphic(s string, n int) (string, int) {
	var sb strings.Builder

	count := 0

	for _, r := range s {
		if unicode.IsGraphic(r) {
			if count == n {
				break
			}

			count++
		}

		sb.WriteRune(r)
	}

	return sb.String(), count
}

func pad(text string, width int, alignment int) (string, bool) {
	str, length := text, countGraphic(text)
	if length > width {
		str, length = truncateGraphic(str, width-truncateReserve)
		str += ellipsis
		length++
	}

	diff := width - length

	switch alignment {
	case AlignLeft:
		return str + strings.Repeat(" ", diff), true
	case AlignRight:
		return strings.Repeat(" ", diff) + str, true
	case AlignCenter:
		left := diff / halfDivisor

		return strings.Repeat(" ", left) + str + strings.Repeat(" ", diff-left), true
	default:
		return "", false
	}
}
