package usererror

import (
	"errors"
	"io"
	"io/fs"
	"os"
)

// IOSummary is the summary of Messages built by [FromIOError].
const IOSummary = "An I/O operation failed"

type curated struct {
	target error
	reason string
	help   string
}

var ioTable = []curated{
	{fs.ErrNotExist, "The file or directory does not exist", "Check the path for typos, or create it first."},
	{fs.ErrPermission, "Permission was denied", "Check the file's permissions, or run the command as a user who can access it."},
	{fs.ErrExist, "The file or directory already exists", "Remove it or choose a different name."},
	{fs.ErrClosed, "The file was already closed", ""},
	{io.ErrUnexpectedEOF, "The input ended in the middle of a record", "The file may be truncated or still being written."},
	{io.EOF, "No more input is available", ""},
	{os.ErrDeadlineExceeded, "The operation timed out", "Try again, or check that the device is responsive."},
}

// FromIOError converts an error from the os, io or io/fs packages into a
// Message with a curated reason and help text. A *fs.PathError contributes
// the operation and path. Errors not in the table contribute their own text
// as the last reason.
func FromIOError(err error) *Message {
	if err == nil {
		return New("")
	}
	m := New(IOSummary)
	m.cause = err

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		m.AddReasonf("Could not %s %s", pathErr.Op, pathErr.Path)
	}
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		m.AddReasonf("Could not %s %s to %s", linkErr.Op, linkErr.Old, linkErr.New)
	}

	if c, ok := lookup(ioTable, err); ok {
		m.AddReason(c.reason)
		m.SetHelp(c.help)
		return m
	}
	switch {
	case pathErr != nil:
		m.AddReason(pathErr.Err.Error())
	case linkErr != nil:
		m.AddReason(linkErr.Err.Error())
	default:
		m.AddReason(err.Error())
	}
	return m
}

// isIOError reports whether err belongs to the I/O adapter's domain.
func isIOError(err error) bool {
	if _, ok := lookup(ioTable, err); ok {
		return true
	}
	var pathErr *fs.PathError
	var linkErr *os.LinkError
	var sysErr *os.SyscallError
	return errors.As(err, &pathErr) || errors.As(err, &linkErr) || errors.As(err, &sysErr)
}

func lookup(table []curated, err error) (curated, bool) {
	for _, c := range table {
		if errors.Is(err, c.target) {
			return c, true
		}
	}
	return curated{}, false
}
