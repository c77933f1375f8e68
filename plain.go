package usererror

// Strip returns the Message rendered without escape sequences, as printed by
// the Plain format.
func (m *Message) Strip() string {
	return m.Render(PlainTheme())
}
