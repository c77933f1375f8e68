package usererror

import (
	"fmt"
	"io"
)

func writeConsole(w io.Writer, t Theme, msgs []*Message) error {
	for _, m := range msgs {
		if _, err := fmt.Fprintln(w, m.Render(t)); err != nil {
			return err
		}
	}
	return nil
}
