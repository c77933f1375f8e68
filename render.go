package usererror

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Render returns the Message as up to three segments joined by newlines:
//
//	Error: <summary>
//	- <reason>
//	- <reason>
//	<help>
//
// The reasons segment is omitted when there are no reasons and the help
// segment when there is no help text; an absent segment leaves no blank line.
// Each styled run carries its own reset sequence. Rendering does not mutate
// the Message, so repeated calls return identical strings. A nil Message
// renders as "".
func (m *Message) Render(t Theme) string {
	if m == nil {
		return ""
	}
	sections := make([]string, 0, 3)
	sections = append(sections, renderSummary(m.summary, t))
	if m.HasReasons() {
		sections = append(sections, renderReasons(m.reasons, t))
	}
	if m.HasHelp() {
		sections = append(sections, renderHelp(m.help, t))
	}
	return strings.Join(sections, "\n")
}

func renderSummary(summary string, t Theme) string {
	return t.Label.apply(t.LabelText) + " " + t.Summary.apply(summary)
}

func renderReasons(reasons []string, t Theme) string {
	bullet := t.Bullet.apply(t.BulletText)
	indent := strings.Repeat(" ", runewidth.StringWidth(t.BulletText)+1)
	width := t.Width
	if width > 0 {
		width -= len(indent)
		if width < 1 {
			width = 1
		}
	}

	lines := make([]string, 0, len(reasons))
	for _, r := range reasons {
		for i, part := range wrapText(r, width) {
			if i == 0 {
				lines = append(lines, bullet+" "+t.Reason.apply(part))
				continue
			}
			lines = append(lines, indent+t.Reason.apply(part))
		}
	}
	return strings.Join(lines, "\n")
}

func renderHelp(help string, t Theme) string {
	if t.Width <= 0 {
		return t.Help.apply(help)
	}
	return t.Help.apply(strings.Join(wrapText(help, t.Width), "\n"))
}
