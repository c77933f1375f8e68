package usererror

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Message is a user-facing error: a one-line summary, an ordered list of
// reasons, and optional help text.
//
// Reasons are ordered from the most general to the most specific. AddReason
// appends, PushSummary inserts the previous summary at the front, and
// FromError records causes from the immediate cause down to the root.
//
// The zero value is not useful; construct Messages with [New], [Newf],
// [Compose], [FromError] or [Convert].
type Message struct {
	summary string
	reasons []string
	help    string
	cause   error
}

// Converter is implemented by errors that know how to describe themselves to
// a user. [FromError] and [Convert] prefer it over generic chain extraction.
type Converter interface {
	UserMessage() *Message
}

// New returns a Message with the given summary and no reasons or help text.
// An empty summary is replaced by "<program> encountered an unknown error".
func New(summary string) *Message {
	if summary == "" {
		summary = defaultSummary()
	}
	return &Message{summary: summary}
}

// Newf is like [New] but formats the summary.
func Newf(format string, args ...any) *Message {
	return New(fmt.Sprintf(format, args...))
}

// Compose returns a Message with every field set at once. A nil or empty
// reasons slice leaves the Message without reasons, and an empty help string
// leaves it without help text.
func Compose(summary string, reasons []string, help string) *Message {
	m := New(summary)
	if len(reasons) > 0 {
		m.reasons = append([]string(nil), reasons...)
	}
	m.help = help
	return m
}

// FromError derives a Message from err. The summary is err's text and the
// reasons are the texts of err's causes, immediate cause first and root cause
// last. A *Message is copied and a [Converter] supplies its own Message. A nil
// err yields the placeholder summary.
func FromError(err error) *Message {
	if err == nil {
		return New("")
	}
	if m, ok := err.(*Message); ok && m != nil {
		return m.clone()
	}
	if c, ok := err.(Converter); ok {
		if m := fromConverter(c, err); m != nil {
			return m
		}
	}
	m := New(err.Error())
	m.cause = err
	if chain := causes(err); len(chain) > 0 {
		m.reasons = chain
	}
	return m
}

// Convert picks the most specific description of err: a *Message or
// [Converter] anywhere on its Unwrap chain, then [FromSQLError] for database
// errors, then [FromIOError] for file system errors, and [FromError] for
// everything else.
func Convert(err error) *Message {
	if err == nil {
		return New("")
	}
	if m := curatedMessage(err); m != nil {
		return m
	}
	switch {
	case isSQLError(err):
		return FromSQLError(err)
	case isIOError(err):
		return FromIOError(err)
	default:
		return FromError(err)
	}
}

// curatedMessage finds a *Message or Converter wrapped inside err. A result without
// a cause of its own gets err.
func curatedMessage(err error) *Message {
	var m *Message
	if errors.As(err, &m) && m != nil {
		c := m.clone()
		if c.cause == nil {
			c.cause = err
		}
		return c
	}
	var conv Converter
	if errors.As(err, &conv) {
		return fromConverter(conv, err)
	}
	return nil
}

// fromConverter copies the Converter's Message so callers may mutate it.
func fromConverter(c Converter, err error) *Message {
	cm := c.UserMessage()
	if cm == nil {
		return nil
	}
	m := cm.clone()
	if m.cause == nil {
		m.cause = err
	}
	return m
}

func (m *Message) clone() *Message {
	c := *m
	if m.reasons != nil {
		c.reasons = append([]string(nil), m.reasons...)
	}
	return &c
}

// SetSummary replaces the summary and leaves reasons untouched.
func (m *Message) SetSummary(summary string) *Message {
	if summary == "" {
		summary = defaultSummary()
	}
	m.summary = summary
	return m
}

// PushSummary replaces the summary and keeps the old one as the first reason.
// Use it when passing a Message up the call stack to give it a more general
// headline without losing the specific one.
func (m *Message) PushSummary(summary string) *Message {
	m.reasons = append([]string{m.summary}, m.reasons...)
	return m.SetSummary(summary)
}

// AddReason appends a reason.
func (m *Message) AddReason(reason string) *Message {
	m.reasons = append(m.reasons, reason)
	return m
}

// AddReasonf is like [Message.AddReason] but formats the reason.
func (m *Message) AddReasonf(format string, args ...any) *Message {
	return m.AddReason(fmt.Sprintf(format, args...))
}

// ClearReasons removes all reasons.
func (m *Message) ClearReasons() *Message {
	m.reasons = nil
	return m
}

// SetHelp replaces the help text. An empty string clears it.
func (m *Message) SetHelp(help string) *Message {
	m.help = help
	return m
}

// AddHelp appends a line to the help text.
func (m *Message) AddHelp(line string) *Message {
	if m.help == "" {
		m.help = line
		return m
	}
	m.help += "\n" + line
	return m
}

// ClearHelp removes the help text.
func (m *Message) ClearHelp() *Message {
	m.help = ""
	return m
}

// Summary returns the uncolored summary.
func (m *Message) Summary() string { return m.summary }

// Reasons returns a copy of the reasons, or nil if there are none.
func (m *Message) Reasons() []string {
	if len(m.reasons) == 0 {
		return nil
	}
	return append([]string(nil), m.reasons...)
}

// Help returns the help text, or "" if there is none.
func (m *Message) Help() string { return m.help }

// HasReasons reports whether at least one reason is recorded.
func (m *Message) HasReasons() bool { return len(m.reasons) > 0 }

// HasHelp reports whether help text is set.
func (m *Message) HasHelp() bool { return m.help != "" }

// Error returns the uncolored summary so a Message can travel as an error.
func (m *Message) Error() string { return m.summary }

// Unwrap returns the error the Message was derived from, if any.
func (m *Message) Unwrap() error { return m.cause }

// String renders the Message with [DefaultTheme].
func (m *Message) String() string { return m.Render(DefaultTheme()) }

// Fields returns the reasons and help text as structured log fields.
func (m *Message) Fields() logrus.Fields {
	f := logrus.Fields{}
	if m.HasReasons() {
		f["reasons"] = m.Reasons()
	}
	if m.HasHelp() {
		f["help"] = m.help
	}
	if m.cause != nil {
		f[logrus.ErrorKey] = m.cause
	}
	return f
}

// view is the serialized shape of a Message.
type view struct {
	Summary string   `json:"summary" yaml:"summary"`
	Reasons []string `json:"reasons,omitempty" yaml:"reasons,omitempty"`
	Help    string   `json:"help,omitempty" yaml:"help,omitempty"`
}

func (m *Message) view() view {
	return view{Summary: m.summary, Reasons: m.Reasons(), Help: m.help}
}

// helpLines splits the help text for formats that render it line by line.
func (m *Message) helpLines() []string {
	if m.help == "" {
		return nil
	}
	return strings.Split(m.help, "\n")
}
