package usererror

import (
	"fmt"
	"html"
	"io"
)

func writeHTML(w io.Writer, msgs []*Message) error {
	for _, m := range msgs {
		if _, err := fmt.Fprintln(w, `<div class="error">`); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "  <p><strong>Error:</strong> %s</p>\n", html.EscapeString(m.summary)); err != nil {
			return err
		}
		if m.HasReasons() {
			if _, err := fmt.Fprintln(w, "  <ul>"); err != nil {
				return err
			}
			for _, r := range m.reasons {
				if _, err := fmt.Fprintf(w, "    <li>%s</li>\n", html.EscapeString(r)); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(w, "  </ul>"); err != nil {
				return err
			}
		}
		if m.HasHelp() {
			if _, err := fmt.Fprintf(w, "  <p class=\"help\">%s</p>\n", htmlLines(m.helpLines())); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "</div>"); err != nil {
			return err
		}
	}
	return nil
}

func htmlLines(lines []string) string {
	var out string
	for i, line := range lines {
		if i > 0 {
			out += "<br>"
		}
		out += html.EscapeString(line)
	}
	return out
}
