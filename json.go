package usererror

import (
	"io"

	"github.com/goccy/go-json"
)

// MarshalJSON encodes the Message as {"summary", "reasons", "help"}, omitting
// absent fields.
func (m *Message) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.view())
}

// UnmarshalJSON decodes the shape produced by MarshalJSON.
func (m *Message) UnmarshalJSON(data []byte) error {
	var v view
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = *Compose(v.Summary, v.Reasons, v.Help)
	return nil
}

func writeJSON(w io.Writer, msgs []*Message) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if len(msgs) == 1 {
		return enc.Encode(msgs[0].view())
	}
	views := make([]view, len(msgs))
	for i, m := range msgs {
		views[i] = m.view()
	}
	return enc.Encode(views)
}
