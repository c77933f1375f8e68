package usererror

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/google/shlex"
)

// EditorSummary is the summary of Messages built from an [EditorError].
const EditorSummary = "Editor error"

// EditorErrorKind identifies the step of an editor session that failed.
type EditorErrorKind int

const (
	// EditorTempFile: the temporary buffer file could not be created.
	EditorTempFile EditorErrorKind = iota
	// EditorOpen: the editor could not be started.
	EditorOpen
	// EditorCapture: the edited contents could not be read back.
	EditorCapture
	// EditorCopy: an existing file could not be copied into the buffer.
	EditorCopy
)

func (k EditorErrorKind) String() string {
	switch k {
	case EditorTempFile:
		return "temp-file"
	case EditorOpen:
		return "open"
	case EditorCapture:
		return "capture"
	case EditorCopy:
		return "copy"
	default:
		return fmt.Sprintf("EditorErrorKind(%d)", int(k))
	}
}

// EditorError reports a failure while letting the user edit text in an
// external editor.
type EditorError struct {
	Kind   EditorErrorKind
	Editor string // command line of the editor, e.g. the value of $EDITOR
	File   string // file copied into the buffer, for EditorCopy
	Err    error
}

func (e *EditorError) Error() string {
	if e == nil {
		return ""
	}
	msg := "editor " + e.Kind.String() + " failed"
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *EditorError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// UserMessage implements [Converter]. A nil *EditorError has nothing to add
// and returns nil.
func (e *EditorError) UserMessage() *Message {
	if e == nil {
		return nil
	}
	m := New(EditorSummary)
	m.cause = e
	switch e.Kind {
	case EditorTempFile:
		m.AddReason("Could not create a temporary file to use as a buffer")
	case EditorOpen:
		m.AddReasonf("Could not open %s as a text editor", editorName(e.Editor))
		m.SetHelp("Set the EDITOR environment variable to an installed editor, e.g. EDITOR=vi")
	case EditorCapture:
		m.AddReason("Failed to capture user input")
	case EditorCopy:
		m.AddReasonf("Failed to copy the contents of `%s` to the temporary buffer for editing", e.File)
		m.SetHelp("Make sure the file exists.")
	default:
		m.AddReason(e.Error())
	}
	return m
}

var errEmptyEditor = errors.New("no editor configured")

// ParseEditor splits an editor command line such as "code --wait" into the
// program and its arguments using shell quoting rules. An empty or malformed
// command yields an *EditorError of kind EditorOpen.
func ParseEditor(command string) (string, []string, error) {
	fields, err := shlex.Split(command)
	if err != nil {
		return "", nil, &EditorError{Kind: EditorOpen, Editor: command, Err: err}
	}
	if len(fields) == 0 {
		return "", nil, &EditorError{Kind: EditorOpen, Editor: command, Err: errEmptyEditor}
	}
	return fields[0], fields[1:], nil
}

// editorName returns the program name of an editor command line for display.
func editorName(command string) string {
	fields, err := shlex.Split(command)
	if err != nil || len(fields) == 0 {
		if command == "" {
			return "the configured program"
		}
		return command
	}
	return filepath.Base(fields[0])
}
