package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with an empty config file so local settings do not leak in.
func execute(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, nil, 0644))

	var stdout, stderr bytes.Buffer
	code := run(append([]string{"--config", configPath}, args...), strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestLookupCode(t *testing.T) {
	code, stdout, _ := execute(t, "", "PL")

	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "PL\tPL\tPoland\t616\n", stdout)
}

func TestLookupCodeUnspecified(t *testing.T) {
	code, stdout, _ := execute(t, "", "")

	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "\t\t\t\n", stdout)
}

func TestLookupCodeInvalid(t *testing.T) {
	for _, input := range []string{"ZZ", "ru"} {
		code, stdout, stderr := execute(t, "", input)

		assert.Equal(t, ExitInvalidInput, code, input)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, `invalid country code "`+input+`"`)
	}
}

func TestLookupCodeJSON(t *testing.T) {
	code, stdout, _ := execute(t, "", "--json", "RU")
	require.Equal(t, ExitSuccess, code)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &parsed))
	assert.Equal(t, "RU", parsed["code"])
	assert.Equal(t, "Russian Federation", parsed["name"])
	assert.Equal(t, "643", parsed["numeric"])
}

func TestLookupCodeJSONInvalid(t *testing.T) {
	code, stdout, _ := execute(t, "", "--json", "ZZ")
	assert.Equal(t, ExitInvalidInput, code)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &parsed))
	assert.Equal(t, `invalid country code "ZZ"`, parsed["error"])
}

func TestLookupBatch(t *testing.T) {
	code, stdout, _ := execute(t, "PL\nDE\n", "--concurrency", "2")

	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "PL\tPL\tPoland\t616\nDE\tDE\tGermany\t276\n", stdout)
}

func TestLookupBatchWithFailures(t *testing.T) {
	code, stdout, _ := execute(t, "PL\nXX\n")

	assert.Equal(t, ExitInvalidInput, code)
	assert.Contains(t, stdout, "XX\t-\t-\tERROR:")
}

func TestName(t *testing.T) {
	code, stdout, _ := execute(t, "", "name", "Tanzania")

	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "Tanzania\tTZ\tTanzania, United Republic of\t834\n", stdout)
}

func TestNameNotFound(t *testing.T) {
	code, _, stderr := execute(t, "", "name", "Atlantis")

	assert.Equal(t, ExitNotFound, code)
	assert.Contains(t, stderr, "country not found")
}

func TestNameBatch(t *testing.T) {
	code, stdout, _ := execute(t, "Iran\nIran (Islamic Republic of)\n", "name")

	assert.Equal(t, ExitSuccess, code)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Contains(t, line, "\tIR\t")
	}
}

func TestNumeric(t *testing.T) {
	code, stdout, _ := execute(t, "", "numeric", "004")

	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "004\tAF\tAfghanistan\t004\n", stdout)

	code, _, _ = execute(t, "", "numeric", "1")
	assert.Equal(t, ExitNotFound, code)
}

func TestList(t *testing.T) {
	code, stdout, _ := execute(t, "", "list", "--style", "csv")

	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout, "PL,Poland,616")
	assert.Contains(t, stdout, "ZW,Zimbabwe,716")
}

func TestListJSON(t *testing.T) {
	code, stdout, _ := execute(t, "", "list", "--json")
	require.Equal(t, ExitSuccess, code)

	var parsed []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(stdout), &parsed))
	assert.Len(t, parsed, 249)
	assert.Equal(t, "AD", parsed[0]["code"])
}

func TestListUnknownStyle(t *testing.T) {
	code, _, stderr := execute(t, "", "list", "--style", "xml")

	assert.Equal(t, ExitInvalidInput, code)
	assert.Contains(t, stderr, "unknown table style")
}

func TestVersion(t *testing.T) {
	code, stdout, _ := execute(t, "", "version")

	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, stdout, "iso3166 dev")
	assert.Contains(t, stdout, "Countries: 249")
}

func TestConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("format: json\n"), 0644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"--config", configPath, "PL"}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, ExitSuccess, code)
	assert.True(t, json.Valid(stdout.Bytes()))

	// flags take precedence over the file
	stdout.Reset()
	code = run([]string{"--config", configPath, "--json=false", "PL"}, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, "PL\tPL\tPoland\t616\n", stdout.String())
}

func TestConfigFileMissing(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "PL"}, strings.NewReader(""), &stdout, &stderr)

	assert.Equal(t, ExitInvalidInput, code)
	assert.Contains(t, stderr.String(), "read config")
}

func TestInvalidFlags(t *testing.T) {
	code, _, _ := execute(t, "", "--concurrency", "0", "PL")
	assert.Equal(t, ExitInvalidInput, code)

	code, _, _ = execute(t, "", "--log-level", "loud", "PL")
	assert.Equal(t, ExitInvalidInput, code)
}

func TestDebugLogging(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "iso3166.log")
	code, _, stderr := execute(t, "", "--log-level", "debug", "--log-file", logPath, "PL")
	require.Equal(t, ExitSuccess, code)

	assert.Contains(t, stderr, "Lookup")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Configuration loaded")
}
