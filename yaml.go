package usererror

import (
	"io"

	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes the Message with the same fields as MarshalJSON.
func (m *Message) MarshalYAML() (any, error) {
	return m.view(), nil
}

// UnmarshalYAML decodes the shape produced by MarshalYAML.
func (m *Message) UnmarshalYAML(node *yaml.Node) error {
	var v view
	if err := node.Decode(&v); err != nil {
		return err
	}
	*m = *Compose(v.Summary, v.Reasons, v.Help)
	return nil
}

func writeYAML(w io.Writer, msgs []*Message) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if len(msgs) == 1 {
		if err := enc.Encode(msgs[0].view()); err != nil {
			return err
		}
	} else {
		views := make([]view, len(msgs))
		for i, m := range msgs {
			views[i] = m.view()
		}
		if err := enc.Encode(views); err != nil {
			return err
		}
	}
	return enc.Close()
}
