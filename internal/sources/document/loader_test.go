package document

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khulnasoft/startpage/internal/landing"
)

const validYAML = `---
imageBackground: true
openInNewTab: false
twelveHourFormat: true
greetingMorning: Morning
greetingAfternoon: Afternoon
greetingEvening: Evening
greetingNight: Night
firstListIcon: home
secondListIcon: external-link
lists:
  firstList:
    - name: Attack Map
      link: /map/
    - name: Kibana
      link: /kibana/
  secondList:
    - name: CyberPot @ GitHub
      link: https://github.com/khulnasoft/cyberpot/
`

const allNullJSON = `{
  "imageBackground": null,
  "openInNewTab": null,
  "twelveHourFormat": null,
  "greetingMorning": null,
  "greetingAfternoon": null,
  "greetingEvening": null,
  "greetingNight": null,
  "firstListIcon": null,
  "secondListIcon": null,
  "lists": {"firstList": [{"name": null, "link": null}], "secondList": []}
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoaderLoadYAML(t *testing.T) {
	loader := NewLoader(writeFile(t, "startpage.yaml", validYAML))
	doc, err := loader.Load()
	require.NoError(t, err)

	assert.True(t, doc.ImageBackground)
	assert.False(t, doc.OpenInNewTab)
	assert.True(t, doc.TwelveHourFormat)
	require.Len(t, doc.Lists.FirstList, 2)
	assert.Equal(t, landing.LinkEntry{Name: "Attack Map", Link: "/map/"}, doc.Lists.FirstList[0])
	assert.Equal(t, landing.LinkEntry{Name: "Kibana", Link: "/kibana/"}, doc.Lists.FirstList[1])
	assert.Equal(t, "CyberPot @ GitHub", doc.Lists.SecondList[0].Name)
}

func TestLoaderLoadJSON(t *testing.T) {
	data, err := landing.EncodeJSON(landing.Default())
	require.NoError(t, err)

	loader := NewLoader(writeFile(t, "startpage.json", string(data)))
	doc, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, landing.Default(), doc)
}

func TestParseYAMLRoundTrip(t *testing.T) {
	orig := landing.Default()
	data, err := landing.EncodeYAML(orig)
	require.NoError(t, err)

	doc, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, orig, doc)
}

func TestParseEmptyLists(t *testing.T) {
	doc := landing.Default()
	doc.Lists = landing.Lists{FirstList: []landing.LinkEntry{}, SecondList: []landing.LinkEntry{}}
	data, err := landing.EncodeYAML(doc)
	require.NoError(t, err)

	parsed, err := Parse(data)
	require.NoError(t, err)
	assert.NotNil(t, parsed.Lists.FirstList)
	assert.Empty(t, parsed.Lists.FirstList)
	assert.Empty(t, parsed.Lists.SecondList)
}

func TestParseNullListIsNormalized(t *testing.T) {
	content := `imageBackground: false
openInNewTab: false
twelveHourFormat: false
greetingMorning: a
greetingAfternoon: b
greetingEvening: c
greetingNight: d
firstListIcon: home
secondListIcon: link
lists:
  firstList:
  secondList: []
`
	doc, err := Parse([]byte(content))
	require.NoError(t, err)
	assert.Equal(t, []landing.LinkEntry{}, doc.Lists.FirstList)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantMissing string
		wantType    string
		wantErr     error
		contains    string
	}{
		{
			name:    "empty file",
			content: "",
			wantErr: ErrEmptyDocument,
		},
		{
			name:     "not a mapping",
			content:  "- a\n- b\n",
			contains: "must be a mapping",
		},
		{
			name:        "missing top-level field",
			content:     removeLine(validYAML, "greetingNight: Night\n"),
			wantMissing: "greetingNight",
		},
		{
			name:        "missing list",
			content:     removeLine(validYAML, "  secondList:\n    - name: CyberPot @ GitHub\n      link: https://github.com/khulnasoft/cyberpot/\n"),
			wantMissing: "lists.secondList",
		},
		{
			name:        "missing entry link",
			content:     removeLine(validYAML, "      link: /kibana/\n"),
			wantMissing: "lists.firstList[1].link",
		},
		{
			name:     "unknown field",
			content:  validYAML + "theme: dark\n",
			contains: "field theme not found",
		},
		{
			name:     "bool field holds a string",
			content:  replaceLine(validYAML, "openInNewTab: false\n", "openInNewTab: sometimes\n"),
			wantType: "openInNewTab",
			contains: "openInNewTab: expected bool, got !!str (line 3)",
		},
		{
			name:     "quoted bool",
			content:  replaceLine(validYAML, "imageBackground: true\n", "imageBackground: \"true\"\n"),
			wantType: "imageBackground",
		},
		{
			name:     "null string field",
			content:  replaceLine(validYAML, "greetingMorning: Morning\n", "greetingMorning: null\n"),
			wantType: "greetingMorning",
			contains: "expected string, got !!null",
		},
		{
			name:     "empty string field",
			content:  replaceLine(validYAML, "greetingNight: Night\n", "greetingNight:\n"),
			wantType: "greetingNight",
		},
		{
			name:     "number in string field",
			content:  replaceLine(validYAML, "greetingMorning: Morning\n", "greetingMorning: 1\n"),
			wantType: "greetingMorning",
			contains: "expected string, got !!int",
		},
		{
			name:     "number as entry name",
			content:  replaceLine(validYAML, "    - name: Kibana\n", "    - name: 42\n"),
			wantType: "lists.firstList[1].name",
			contains: "lists.firstList[1].name: expected string, got !!int",
		},
		{
			name:     "null entry link",
			content:  replaceLine(validYAML, "      link: /map/\n", "      link: ~\n"),
			wantType: "lists.firstList[0].link",
		},
		{
			name:     "null entry",
			content:  replaceLine(validYAML, "    - name: Attack Map\n      link: /map/\n", "    - null\n"),
			wantType: "lists.firstList[0]",
			contains: "expected mapping, got !!null",
		},
		{
			name:     "null lists",
			content:  validYAML[:strings.Index(validYAML, "lists:")] + "lists: null\n",
			wantType: "lists",
		},
		{
			name:     "json with every scalar null",
			content:  allNullJSON,
			wantType: "imageBackground",
			contains: "expected bool, got !!null",
		},
		{
			name:     "invalid link",
			content:  replaceLine(validYAML, "      link: /map/\n", "      link: map/\n"),
			wantErr:  landing.ErrInvalidDocument,
			contains: "lists.firstList[0].link",
		},
		{
			name:     "malformed yaml",
			content:  "lists: [\n",
			contains: "failed to parse document",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			require.Error(t, err)

			if tt.wantMissing != "" {
				var missing *MissingFieldError
				require.True(t, errors.As(err, &missing), "got %v", err)
				assert.Equal(t, tt.wantMissing, missing.Field)
			}
			if tt.wantType != "" {
				var typeErr *TypeError
				require.True(t, errors.As(err, &typeErr), "got %v", err)
				assert.Equal(t, tt.wantType, typeErr.Field)
			}
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.contains != "" {
				assert.Contains(t, err.Error(), tt.contains)
			}
		})
	}
}

func TestLoaderLoadFileNotFound(t *testing.T) {
	loader := NewLoader("/nonexistent/path/startpage.yaml")
	_, err := loader.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoaderErrorNamesFile(t *testing.T) {
	path := writeFile(t, "broken.yaml", removeLine(validYAML, "firstListIcon: home\n"))
	_, err := NewLoader(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.Contains(t, err.Error(), `missing field "firstListIcon"`)
}

func removeLine(s, line string) string {
	return replaceLine(s, line, "")
}

func replaceLine(s, line, with string) string {
	return strings.Replace(s, line, with, 1)
}

func TestResolveBuiltIn(t *testing.T) {
	doc, source, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, BuiltInSource, source)
	assert.Equal(t, landing.Default(), doc)
}

func TestResolveFile(t *testing.T) {
	path := writeFile(t, "startpage.yaml", validYAML)

	doc, source, err := Resolve(path)
	require.NoError(t, err)
	assert.Equal(t, path, source)
	assert.Len(t, doc.Lists.FirstList, 2)
}

func TestResolveMissingFile(t *testing.T) {
	_, _, err := Resolve(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
