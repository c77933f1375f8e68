package usererror

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// ExitCode is the status PrintAndExit terminates the process with.
const ExitCode = 1

// Printer writes Messages to a sink. The zero value writes the console format
// with [DefaultTheme] to standard error and exits with os.Exit.
type Printer struct {
	// Out receives the rendered Message. Default: color.Error (stderr).
	Out io.Writer
	// Format selects the rendering. Default: Console.
	Format Format
	// Theme styles the Console format. Default: DefaultTheme().
	Theme *Theme
	// Logger, when set, receives one Error entry per printed Message.
	Logger logrus.FieldLogger
	// Exit terminates the process. Default: os.Exit.
	Exit func(code int)
	// ShowCause adds a "Caused by:" line with the text of the underlying
	// error after the Message, styled as help text. Only the Console and
	// Plain formats print it, and only when it differs from the summary.
	ShowCause bool
}

func (p *Printer) out() io.Writer {
	if p.Out == nil {
		return color.Error
	}
	return p.Out
}

func (p *Printer) format() Format {
	if p.Format == "" {
		return Console
	}
	return p.Format
}

func (p *Printer) theme() Theme {
	if p.Theme == nil {
		return DefaultTheme()
	}
	return *p.Theme
}

// Print renders m followed by a newline. A nil Message prints nothing.
func (p *Printer) Print(m *Message) error {
	return p.print(m, p.Logger)
}

func (p *Printer) print(m *Message, log logrus.FieldLogger) error {
	if m == nil {
		return nil
	}
	if log != nil {
		log.WithFields(m.Fields()).Error(m.summary)
	}
	if err := Write(p.out(), p.format(), p.theme(), m); err != nil {
		return err
	}
	if p.ShowCause {
		return p.writeCause(m)
	}
	return nil
}

func (p *Printer) writeCause(m *Message) error {
	if m.cause == nil || m.cause.Error() == m.summary {
		return nil
	}
	var t Theme
	switch p.format() {
	case Console:
		t = p.theme()
	case Plain:
		t = PlainTheme()
	default:
		return nil
	}
	_, err := fmt.Fprintln(p.out(), t.Help.apply("Caused by: "+m.cause.Error()))
	return err
}

// PrintAndExit prints m and terminates the process with [ExitCode], even when
// m is nil. Write errors are ignored: there is nowhere left to report them. It does not
// return unless Exit does.
func (p *Printer) PrintAndExit(m *Message) {
	log := p.Logger
	if log != nil {
		log = log.WithField("exit_code", ExitCode)
	}
	_ = p.print(m, log)
	if p.Exit == nil {
		os.Exit(ExitCode)
	}
	p.Exit(ExitCode)
}

// Print writes the Message to standard error followed by a newline.
func (m *Message) Print() {
	var p Printer
	_ = p.Print(m)
}

// PrintAndExit prints the Message to standard error and exits the process
// with status 1. It never returns; run any cleanup before calling it.
func (m *Message) PrintAndExit() {
	var p Printer
	p.PrintAndExit(m)
}
