package usererror

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapText splits s into lines no wider than width display columns. Explicit
// newlines are kept. Lines break at the last space that fits, or mid-word when
// a single word is wider than width. A non-positive width disables wrapping.
func wrapText(s string, width int) []string {
	if width <= 0 {
		return strings.Split(s, "\n")
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		lines = append(lines, wrapLine(para, width)...)
	}
	return lines
}

func wrapLine(s string, width int) []string {
	if runewidth.StringWidth(s) <= width {
		return []string{s}
	}
	var lines []string
	for len(s) > 0 {
		if runewidth.StringWidth(s) <= width {
			lines = append(lines, s)
			break
		}
		line := runewidth.Truncate(s, width, "")
		if line == "" {
			// Safety: advance at least one rune to avoid an infinite loop.
			line = string([]rune(s)[0])
		}
		rest := s[len(line):]
		if i := strings.LastIndexByte(line, ' '); i > 0 && !strings.HasPrefix(rest, " ") {
			rest = s[i:]
			line = line[:i]
		}
		lines = append(lines, strings.TrimRight(line, " "))
		s = strings.TrimLeft(rest, " ")
	}
	return lines
}
