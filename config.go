package usererror

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for theme configuration.
var (
	ErrInvalidTheme     = errors.New("invalid theme")
	ErrUnknownAttribute = errors.New("unknown style attribute")
)

var attributes = map[string]color.Attribute{
	"bold":      color.Bold,
	"faint":     color.Faint,
	"italic":    color.Italic,
	"underline": color.Underline,
	"reverse":   color.ReverseVideo,

	"fg-black":   color.FgBlack,
	"fg-red":     color.FgRed,
	"fg-green":   color.FgGreen,
	"fg-yellow":  color.FgYellow,
	"fg-blue":    color.FgBlue,
	"fg-magenta": color.FgMagenta,
	"fg-cyan":    color.FgCyan,
	"fg-white":   color.FgWhite,

	"fg-hi-black":   color.FgHiBlack,
	"fg-hi-red":     color.FgHiRed,
	"fg-hi-green":   color.FgHiGreen,
	"fg-hi-yellow":  color.FgHiYellow,
	"fg-hi-blue":    color.FgHiBlue,
	"fg-hi-magenta": color.FgHiMagenta,
	"fg-hi-cyan":    color.FgHiCyan,
	"fg-hi-white":   color.FgHiWhite,

	"bg-black":   color.BgBlack,
	"bg-red":     color.BgRed,
	"bg-green":   color.BgGreen,
	"bg-yellow":  color.BgYellow,
	"bg-blue":    color.BgBlue,
	"bg-magenta": color.BgMagenta,
	"bg-cyan":    color.BgCyan,
	"bg-white":   color.BgWhite,
}

// Attributes returns the attribute names accepted in theme files, sorted.
func Attributes() []string {
	names := make([]string, 0, len(attributes))
	for name := range attributes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ThemeConfig is the YAML shape of a [Theme]. Omitted sections and omitted
// attrs keep the default; an empty attrs list renders the segment unstyled.
type ThemeConfig struct {
	Label   *SegmentConfig `yaml:"label,omitempty"`
	Summary *SegmentConfig `yaml:"summary,omitempty"`
	Bullet  *SegmentConfig `yaml:"bullet,omitempty"`
	Reason  *SegmentConfig `yaml:"reason,omitempty"`
	Help    *SegmentConfig `yaml:"help,omitempty"`
	Width   int            `yaml:"width,omitempty"`
}

// SegmentConfig styles one segment. Text is only used by label and bullet.
type SegmentConfig struct {
	Text  *string  `yaml:"text,omitempty"`
	Attrs []string `yaml:"attrs,flow"`
}

// DefaultThemeConfig returns the configuration equivalent of [DefaultTheme].
func DefaultThemeConfig() ThemeConfig {
	label, bullet := defaultLabelText, defaultBulletText
	return ThemeConfig{
		Label:   &SegmentConfig{Text: &label, Attrs: []string{"bold", "fg-white", "bg-red"}},
		Summary: &SegmentConfig{Attrs: []string{"bold", "fg-red"}},
		Bullet:  &SegmentConfig{Text: &bullet, Attrs: []string{"fg-yellow"}},
		Reason:  &SegmentConfig{Attrs: []string{"bold", "fg-white"}},
		Help:    &SegmentConfig{Attrs: []string{"faint"}},
	}
}

// ParseTheme decodes a YAML theme and applies it on top of [DefaultTheme].
func ParseTheme(data []byte) (Theme, error) {
	return LoadTheme(bytes.NewReader(data))
}

// LoadTheme reads a YAML theme from r and applies it on top of
// [DefaultTheme]. An empty document yields the default theme.
func LoadTheme(r io.Reader) (Theme, error) {
	var cfg ThemeConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Theme{}, fmt.Errorf("%w: %s", ErrInvalidTheme, err)
	}
	return cfg.Theme()
}

// Theme builds a Theme from the configuration.
func (c ThemeConfig) Theme() (Theme, error) {
	t := DefaultTheme()
	if c.Width < 0 {
		return Theme{}, fmt.Errorf("%w: negative width %d", ErrInvalidTheme, c.Width)
	}
	t.Width = c.Width

	segments := []struct {
		name  string
		cfg   *SegmentConfig
		style *Style
		text  *string
	}{
		{"label", c.Label, &t.Label, &t.LabelText},
		{"summary", c.Summary, &t.Summary, nil},
		{"bullet", c.Bullet, &t.Bullet, &t.BulletText},
		{"reason", c.Reason, &t.Reason, nil},
		{"help", c.Help, &t.Help, nil},
	}
	for _, seg := range segments {
		if seg.cfg == nil {
			continue
		}
		if seg.cfg.Attrs != nil {
			style, err := parseStyle(seg.cfg.Attrs)
			if err != nil {
				return Theme{}, fmt.Errorf("%s: %w", seg.name, err)
			}
			*seg.style = style
		}
		if seg.cfg.Text != nil && seg.text != nil {
			*seg.text = *seg.cfg.Text
		}
	}
	return t, nil
}

// MarshalTheme encodes cfg as YAML.
func MarshalTheme(cfg ThemeConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func parseStyle(names []string) (Style, error) {
	attrs := make([]color.Attribute, 0, len(names))
	for _, name := range names {
		a, ok := attributes[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownAttribute, name)
		}
		attrs = append(attrs, a)
	}
	return NewStyle(attrs...), nil
}
