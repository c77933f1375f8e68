// Package usererror renders errors as readable, color-highlighted messages
// for the users of command-line programs.
//
// A [Message] has a one-line summary, an ordered list of reasons, and
// optional help text. Printed with the default theme it looks like:
//
//	Error: Failed to build project
//	- Database could not be parsed
//	- File "main.db" not found
//	Try: touch main.db
//
// The "Error:" label is bold white on red, the summary bold red, bullets
// yellow, reasons bold white and help text faint. Escape sequences are always
// emitted; use [PlainTheme] or the [Plain] format for uncolored output.
//
// # Building Messages
//
// Construct a Message directly and chain mutations:
//
//	usererror.New("File failed to open").
//		AddReason("File not found").
//		SetHelp("Try: touch file.txt").
//		PrintAndExit()
//
// Or derive one from any error with [FromError]. The summary is the error's
// text and every error on its causal chain (found through Unwrap, multi-error
// Unwrap, or a pkg/errors style Cause method) becomes a reason:
//
//	m := usererror.FromError(err)
//
// # Reason Order
//
// Reasons always read from the most general to the most specific:
//
//   - [FromError] lists the immediate cause first and the root cause last.
//   - [Message.AddReason] appends.
//   - [Message.PushSummary] moves the current summary to the front of the
//     reasons before replacing it.
//
// # Adapters
//
// [Convert] chooses the most specific description available. Errors that
// implement [Converter] describe themselves; [FromSQLError] and [FromIOError]
// map well-known database and file system errors to hand-written reasons and
// help text; [EditorError] covers external editor sessions.
//
// # Themes
//
// Styling is a [Theme] value passed to [Message.Render] or set on a
// [Printer]. Themes can be loaded from YAML with [LoadTheme]:
//
//	label:   {text: "Error:", attrs: [bold, fg-white, bg-red]}
//	summary: {attrs: [bold, fg-red]}
//	bullet:  {text: "-", attrs: [fg-yellow]}
//	reason:  {attrs: [bold, fg-white]}
//	help:    {attrs: [faint]}
//	width: 80
//
// # Output
//
// [Message.Print] writes to standard error and [Message.PrintAndExit] then
// exits with status 1. A [Printer] chooses the sink, [Format], theme, exit
// hook and an optional logrus logger. [Write] and [Marshal] also render
// Messages as JSON, JSONL, YAML, Markdown, HTML or a Go template.
package usererror
