package usererror

import "github.com/fatih/color"

// Style decorates one rendered segment. A nil Style leaves text unchanged.
type Style func(string) string

func (s Style) apply(text string) string {
	if s == nil {
		return text
	}
	return s(text)
}

// Theme controls how [Message.Render] decorates each segment. Themes are plain
// values: pass a different one per call instead of mutating shared state.
type Theme struct {
	// LabelText precedes the summary. Default "Error:".
	LabelText string
	// BulletText precedes every reason. Default "-".
	BulletText string

	Label   Style
	Summary Style
	Bullet  Style
	Reason  Style
	Help    Style

	// Width wraps reasons and help text to this many display columns.
	// Zero disables wrapping.
	Width int
}

const (
	defaultLabelText  = "Error:"
	defaultBulletText = "-"
)

// Default attribute sets. Colors are always emitted, regardless of whether
// the output is a terminal.
var (
	labelAttrs   = []color.Attribute{color.Bold, color.FgWhite, color.BgRed}
	summaryAttrs = []color.Attribute{color.Bold, color.FgRed}
	bulletAttrs  = []color.Attribute{color.FgYellow}
	reasonAttrs  = []color.Attribute{color.Bold, color.FgWhite}
	helpAttrs    = []color.Attribute{color.Faint}
)

// DefaultTheme returns the standard console theme: a bold white-on-red
// "Error:" label, a bold red summary, yellow bullets, bold white reasons and
// faint help text.
func DefaultTheme() Theme {
	return Theme{
		LabelText:  defaultLabelText,
		BulletText: defaultBulletText,
		Label:      NewStyle(labelAttrs...),
		Summary:    NewStyle(summaryAttrs...),
		Bullet:     NewStyle(bulletAttrs...),
		Reason:     NewStyle(reasonAttrs...),
		Help:       NewStyle(helpAttrs...),
	}
}

// PlainTheme returns a theme with the default label and bullet but no
// escape sequences.
func PlainTheme() Theme {
	return Theme{
		LabelText:  defaultLabelText,
		BulletText: defaultBulletText,
	}
}

// NewStyle returns a Style that wraps text in the SGR sequence for attrs and
// a trailing reset. Colors are forced on. With no attrs it returns nil.
func NewStyle(attrs ...color.Attribute) Style {
	if len(attrs) == 0 {
		return nil
	}
	c := color.New(attrs...)
	c.EnableColor()
	return func(s string) string { return c.Sprint(s) }
}
