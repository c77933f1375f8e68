package usererror

import (
	"io"

	"github.com/goccy/go-json"
)

func writeJSONL(w io.Writer, msgs []*Message) error {
	enc := json.NewEncoder(w)
	for _, m := range msgs {
		if err := enc.Encode(m.view()); err != nil {
			return err
		}
	}
	return nil
}
