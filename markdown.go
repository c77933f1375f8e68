package usererror

import (
	"fmt"
	"io"
	"strings"
)

// writeMarkdown renders each Message as a bold headline, a bullet list of
// reasons and a blockquote of help text. Messages are separated by a blank
// line.
func writeMarkdown(w io.Writer, msgs []*Message) error {
	for i, m := range msgs {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "**Error:** %s\n", escapeMarkdown(m.summary)); err != nil {
			return err
		}
		if m.HasReasons() {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
			for _, r := range m.reasons {
				if _, err := fmt.Fprintf(w, "- %s\n", escapeMarkdown(r)); err != nil {
					return err
				}
			}
		}
		if m.HasHelp() {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
			for _, line := range m.helpLines() {
				if _, err := fmt.Fprintf(w, "> %s\n", escapeMarkdown(line)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"|", `\|`,
	"\n", " ",
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
