package usererror

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrInvalidTemplate   = errors.New("invalid template")
)

// Format represents an output format for Messages.
type Format string

const (
	Console  Format = "console"
	Plain    Format = "plain"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
	Markdown Format = "markdown"
	HTML     Format = "html"
)

const goTemplatePrefix = "go-template="

var formats = []Format{Console, Plain, JSON, JSONL, YAML, Markdown, HTML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names.
// GoTemplate is not included because it is parameterized.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// GoTemplate returns a Format that renders each Message using a Go
// text/template. The template sees the fields Summary, Reasons and Help.
func GoTemplate(tmpl string) Format {
	return Format(goTemplatePrefix + tmpl)
}

// ParseFormat parses a format string. Recognizes all static formats and
// go-template=<tmpl> strings.
func ParseFormat(s string) (Format, error) {
	if strings.HasPrefix(s, goTemplatePrefix) {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// Write renders msgs in format f and writes them to w. Console output uses
// theme t; other formats ignore it. Nil Messages are skipped.
func Write(w io.Writer, f Format, t Theme, msgs ...*Message) error {
	msgs = nonNil(msgs)
	switch f {
	case Console:
		return writeConsole(w, t, msgs)
	case Plain:
		return writeConsole(w, PlainTheme(), msgs)
	case JSON:
		return writeJSON(w, msgs)
	case JSONL:
		return writeJSONL(w, msgs)
	case YAML:
		return writeYAML(w, msgs)
	case Markdown:
		return writeMarkdown(w, msgs)
	case HTML:
		return writeHTML(w, msgs)
	default:
		if tmpl, ok := strings.CutPrefix(string(f), goTemplatePrefix); ok {
			return writeGoTemplate(w, tmpl, msgs)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

func nonNil(msgs []*Message) []*Message {
	for i, m := range msgs {
		if m != nil {
			continue
		}
		out := append([]*Message(nil), msgs[:i]...)
		for _, m := range msgs[i+1:] {
			if m != nil {
				out = append(out, m)
			}
		}
		return out
	}
	return msgs
}

// Marshal renders msgs in format f and returns the bytes.
func Marshal(f Format, t Theme, msgs ...*Message) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, t, msgs...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
