package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khulnasoft/startpage/internal/landing"
	"github.com/khulnasoft/startpage/internal/sources/document"
	"github.com/khulnasoft/startpage/internal/version"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(documentFileEnv, "")

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeDocument(t *testing.T, doc *landing.Document) string {
	t.Helper()
	data, err := landing.EncodeYAML(doc)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "startpage.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestVersion(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version.String()+"\n", out)
}

func TestValidateBuiltIn(t *testing.T) {
	out, err := runCLI(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "built-in is valid (6 + 3 links)")
}

func TestValidateFile(t *testing.T) {
	path := writeDocument(t, landing.Default())

	out, err := runCLI(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, path+" is valid")
}

func TestValidateRejectsBadLink(t *testing.T) {
	doc := landing.Default()
	doc.Lists.SecondList[0].Link = "github.com/khulnasoft"
	path := writeDocument(t, doc)

	_, err := runCLI(t, "validate", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, landing.ErrInvalidDocument)
	assert.Contains(t, err.Error(), "lists.secondList[0].link")
}

func TestValidateTooManyArgs(t *testing.T) {
	_, err := runCLI(t, "validate", "a.yaml", "b.yaml")
	require.Error(t, err)
}

func TestPrintFormats(t *testing.T) {
	out, err := runCLI(t, "print")
	require.NoError(t, err)
	doc, err := document.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, landing.Default(), doc)

	out, err = runCLI(t, "print", "--format", "json")
	require.NoError(t, err)
	doc, err = document.Parse([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, landing.Default(), doc)

	out, err = runCLI(t, "print", "-o", "JS")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "const CONFIG = {"))
}

func TestPrintFile(t *testing.T) {
	doc := landing.Default()
	doc.Lists.FirstList = doc.Lists.FirstList[:1]
	path := writeDocument(t, doc)

	out, err := runCLI(t, "print", "--file", path, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"Attack Map"`)
	assert.NotContains(t, out, `"Kibana"`)
}

func TestPrintRejectsUnknownFormat(t *testing.T) {
	_, err := runCLI(t, "print", "--format", "toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yaml|json|js")
}

func TestOutputFormatFlag(t *testing.T) {
	format := formatYAML
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Var(&format, "format", "")

	require.NoError(t, fs.Parse([]string{"--format=json"}))
	assert.Equal(t, formatJSON, format)
	assert.Equal(t, "format", fs.Lookup("format").Value.Type())
	assert.Error(t, fs.Parse([]string{"--format=xml"}))
}

func TestLoadEnvFiles(t *testing.T) {
	const key = "STARTPAGE_CLI_TEST_TITLE"
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(key+"=From dotenv\n"), 0o644))
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	require.NoError(t, loadEnvFiles(nil))
	require.NoError(t, loadEnvFiles([]string{path}))
	assert.Equal(t, "From dotenv", os.Getenv(key))

	err := loadEnvFiles([]string{filepath.Join(t.TempDir(), "missing.env")})
	require.Error(t, err)
}
