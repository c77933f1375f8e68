package usererror

import (
	"fmt"
	"io"
	"text/template"
)

// writeGoTemplate executes the template once per Message. The template sees
// .Summary (string), .Reasons ([]string, general to specific) and .Help
// (string, possibly multi-line); no styling is applied.
func writeGoTemplate(w io.Writer, tmplStr string, msgs []*Message) error {
	tmpl, err := template.New("").Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	for _, m := range msgs {
		if err := tmpl.Execute(w, m.view()); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
