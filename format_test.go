package usererror_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	usererror "github.com/xvrqt/user-error"
)

// --- Helpers ---

type errWriter struct{}

func (e *errWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

var errWriteFailed = errors.New("write failed")

func sample() *usererror.Message {
	return usererror.Compose("Failed to build project",
		[]string{"Database could not be parsed", `File "main.db" not found`},
		"Try: touch main.db")
}

// ============================================================
// Tests
// ============================================================

func TestParseFormat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    usererror.Format
		wantErr require.ErrorAssertionFunc
	}{
		"console":  {input: "console", want: usererror.Console, wantErr: require.NoError},
		"plain":    {input: "plain", want: usererror.Plain, wantErr: require.NoError},
		"json":     {input: "json", want: usererror.JSON, wantErr: require.NoError},
		"jsonl":    {input: "jsonl", want: usererror.JSONL, wantErr: require.NoError},
		"yaml":     {input: "yaml", want: usererror.YAML, wantErr: require.NoError},
		"markdown": {input: "markdown", want: usererror.Markdown, wantErr: require.NoError},
		"html":     {input: "html", want: usererror.HTML, wantErr: require.NoError},
		"template": {input: "go-template={{.Summary}}", want: usererror.GoTemplate("{{.Summary}}"), wantErr: require.NoError},
		"unknown":  {input: "xml", want: "", wantErr: require.Error},
	}
	for name, tt := range tests {
		tt := tt // per-iteration copy for Go <1.22 loop semantics
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := usererror.ParseFormat(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormatUnsupportedSentinel(t *testing.T) {
	t.Parallel()
	_, err := usererror.ParseFormat("xml")
	assert.ErrorIs(t, err, usererror.ErrUnsupportedFormat)
}

func TestFormats(t *testing.T) {
	t.Parallel()
	got := usererror.Formats()
	assert.Equal(t, []usererror.Format{
		usererror.Console, usererror.Plain, usererror.JSON, usererror.JSONL,
		usererror.YAML, usererror.Markdown, usererror.HTML,
	}, got)
	// Returned slice must be a copy.
	got[0] = "modified"
	assert.Equal(t, usererror.Console, usererror.Formats()[0])
}

func TestFormatString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "console", usererror.Console.String())
	assert.Equal(t, "yaml", usererror.YAML.String())
}

// --- Console / Plain ---

func TestWriteConsole(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := usererror.Write(&buf, usererror.Console, usererror.DefaultTheme(), sample())
	require.NoError(t, err)
	assert.Equal(t, sample().String()+"\n", buf.String())
}

func TestWritePlain(t *testing.T) {
	t.Parallel()
	got, err := usererror.Marshal(usererror.Plain, usererror.DefaultTheme(), sample(), usererror.New("second"))
	require.NoError(t, err)
	want := "Error: Failed to build project\n" +
		"- Database could not be parsed\n" +
		"- File \"main.db\" not found\n" +
		"Try: touch main.db\n" +
		"Error: second\n"
	assert.Equal(t, want, string(got))
}

// --- JSON ---

func TestWriteJSON(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		msgs []*usererror.Message
		want string
	}{
		"summary only": {
			msgs: []*usererror.Message{usererror.New("boom")},
			want: "{\n  \"summary\": \"boom\"\n}\n",
		},
		"multiple": {
			msgs: []*usererror.Message{usererror.New("a"), usererror.New("b").AddReason("r")},
			want: "[\n  {\n    \"summary\": \"a\"\n  },\n  {\n    \"summary\": \"b\",\n    \"reasons\": [\n      \"r\"\n    ]\n  }\n]\n",
		},
	}
	for name, tt := range tests {
		tt := tt // per-iteration copy for Go <1.22 loop semantics
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			err := usererror.Write(&buf, usererror.JSON, usererror.PlainTheme(), tt.msgs...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteJSONL(t *testing.T) {
	t.Parallel()
	got, err := usererror.Marshal(usererror.JSONL, usererror.PlainTheme(),
		usererror.New("a").SetHelp("h"), usererror.New("b"))
	require.NoError(t, err)
	assert.Equal(t, `{"summary":"a","help":"h"}`+"\n"+`{"summary":"b"}`+"\n", string(got))
}

func TestMessageJSONRoundTrip(t *testing.T) {
	t.Parallel()
	data, err := json.Marshal(sample())
	require.NoError(t, err)
	var got usererror.Message
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, sample().Strip(), got.Strip())
}

// --- YAML ---

func TestWriteYAML(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := usererror.Write(&buf, usererror.YAML, usererror.PlainTheme(), sample())
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "summary: Failed to build project\n")
	assert.Contains(t, out, "reasons:\n")
	assert.Contains(t, out, "- Database could not be parsed\n")
	assert.Contains(t, out, "help: 'Try: touch main.db'\n")
	assert.NotContains(t, out, "---")
}

func TestMessageYAMLRoundTrip(t *testing.T) {
	t.Parallel()
	data, err := yaml.Marshal(sample())
	require.NoError(t, err)
	var got usererror.Message
	require.NoError(t, yaml.Unmarshal(data, &got))
	assert.Equal(t, sample().Reasons(), got.Reasons())
	assert.Equal(t, sample().Help(), got.Help())
}

// --- Markdown ---

func TestWriteMarkdown(t *testing.T) {
	t.Parallel()
	m := usererror.Compose("Build *failed*", []string{"a_b"}, "line 1\nline 2")
	got, err := usererror.Marshal(usererror.Markdown, usererror.PlainTheme(), m, usererror.New("next"))
	require.NoError(t, err)
	want := "**Error:** Build \\*failed\\*\n" +
		"\n" +
		"- a\\_b\n" +
		"\n" +
		"> line 1\n" +
		"> line 2\n" +
		"\n" +
		"**Error:** next\n"
	assert.Equal(t, want, string(got))
}

// --- HTML ---

func TestWriteHTML(t *testing.T) {
	t.Parallel()
	m := usererror.Compose("<b>bad</b>", []string{"x & y"}, "one\ntwo")
	got, err := usererror.Marshal(usererror.HTML, usererror.PlainTheme(), m)
	require.NoError(t, err)
	want := "<div class=\"error\">\n" +
		"  <p><strong>Error:</strong> &lt;b&gt;bad&lt;/b&gt;</p>\n" +
		"  <ul>\n" +
		"    <li>x &amp; y</li>\n" +
		"  </ul>\n" +
		"  <p class=\"help\">one<br>two</p>\n" +
		"</div>\n"
	assert.Equal(t, want, string(got))
}

// --- GoTemplate ---

func TestWriteGoTemplate(t *testing.T) {
	t.Parallel()
	f := usererror.GoTemplate("{{.Summary}}{{range .Reasons}} | {{.}}{{end}}")
	got, err := usererror.Marshal(f, usererror.PlainTheme(), sample())
	require.NoError(t, err)
	assert.Equal(t, "Failed to build project | Database could not be parsed | File \"main.db\" not found\n", string(got))
}

func TestWriteGoTemplateInvalid(t *testing.T) {
	t.Parallel()
	_, err := usererror.Marshal(usererror.GoTemplate("{{.Summary"), usererror.PlainTheme(), sample())
	assert.ErrorIs(t, err, usererror.ErrInvalidTemplate)
}

// --- Errors ---

func TestWriteUnsupportedFormat(t *testing.T) {
	t.Parallel()
	_, err := usererror.Marshal("xml", usererror.PlainTheme(), sample())
	assert.ErrorIs(t, err, usererror.ErrUnsupportedFormat)
}

func TestWriteSkipsNilMessages(t *testing.T) {
	t.Parallel()
	for _, f := range append(usererror.Formats(), usererror.GoTemplate("{{.Summary}}")) {
		f := f // per-iteration copy for Go <1.22 loop semantics
		t.Run(f.String(), func(t *testing.T) {
			t.Parallel()
			want, err := usererror.Marshal(f, usererror.DefaultTheme(), sample())
			require.NoError(t, err)
			var got []byte
			require.NotPanics(t, func() {
				got, err = usererror.Marshal(f, usererror.DefaultTheme(), nil, sample(), nil)
			})
			require.NoError(t, err)
			assert.Equal(t, string(want), string(got))
		})
	}
}

func TestRenderNilMessage(t *testing.T) {
	t.Parallel()
	var m *usererror.Message
	assert.Empty(t, m.Render(usererror.DefaultTheme()))
	assert.Empty(t, m.String())
}

func TestWriteErrors(t *testing.T) {
	t.Parallel()
	for _, f := range append(usererror.Formats(), usererror.GoTemplate("{{.Summary}}")) {
		f := f // per-iteration copy for Go <1.22 loop semantics
		t.Run(f.String(), func(t *testing.T) {
			t.Parallel()
			err := usererror.Write(&errWriter{}, f, usererror.DefaultTheme(), sample())
			assert.Error(t, err)
		})
	}
}
