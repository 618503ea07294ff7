package pincheck

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// sandbox moves into a fresh directory with no global config in reach.
func sandbox(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", dir)
	chdir(t, dir)
	return dir
}

// chdir changes into dir for the duration of the test (testing.T.Chdir
// needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func write(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	// a nil slice would make cobra fall back to os.Args
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCLI_SampleManifest(t *testing.T) {
	dir := sandbox(t)
	write(t, dir, "requirements.txt", "flask==1.0.2\ndjango==3.0\nrequests==2.19.1\n")
	out, _, err := run(t, "--no-color")
	require.NoError(t, err)
	assert.Equal(t, "Insecure dependencies found:\n"+
		"- flask==1.0.2 (insecure version: 1.0.2)\n"+
		"- requests==2.19.1 (insecure version: 2.19.1)\n", out)
}

func TestCLI_ScanSubcommandMatchesRoot(t *testing.T) {
	dir := sandbox(t)
	write(t, dir, "requirements.txt", "flask==1.0.2\n")
	a, _, err := run(t, "--no-color")
	require.NoError(t, err)
	b, _, err := run(t, "scan", "--no-color")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCLI_AllClear(t *testing.T) {
	dir := sandbox(t)
	write(t, dir, "requirements.txt", "# no pins\nflask>=2.0\n\n")
	out, _, err := run(t, "--no-color")
	require.NoError(t, err)
	assert.Equal(t, "All dependencies are safe!\n", out)
}

func TestCLI_MissingManifest(t *testing.T) {
	sandbox(t)
	out, errOut, err := run(t, "--no-color", "-m", "does_not_exist.txt")
	require.NoError(t, err, "a missing manifest is reported, not returned")
	assert.Equal(t, "Error: the file does_not_exist.txt does not exist.\n", out)
	assert.Empty(t, errOut)
}

func TestCLI_MissingDefaultManifest(t *testing.T) {
	sandbox(t)
	out, _, err := run(t)
	require.NoError(t, err)
	assert.Equal(t, "Error: the file requirements.txt does not exist.\n", out)
}

func TestCLI_MalformedLine(t *testing.T) {
	dir := sandbox(t)
	write(t, dir, "requirements.txt", "flask==1.0.2\nfoo==1==2\n")
	out, _, err := run(t, "--no-color")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Error: requirements.txt:2: malformed requirement"), out)
	assert.NotContains(t, out, "Insecure dependencies found")
}

func TestCLI_UnexpectedErrorIsReturned(t *testing.T) {
	dir := sandbox(t)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "requirements.txt"), 0o755))
	out, _, err := run(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scan error")
	assert.Empty(t, out)
}

func TestCLI_FailOnFindings(t *testing.T) {
	dir := sandbox(t)
	write(t, dir, "requirements.txt", "django==2.2\n")
	_, _, err := run(t, "--no-color", "--fail-on-findings")
	assert.True(t, errors.Is(err, errFindingsPresent))

	write(t, dir, "requirements.txt", "django==3.2\n")
	_, _, err = run(t, "--no-color", "--fail-on-findings")
	assert.NoError(t, err)
}

func TestCLI_UnknownFormat(t *testing.T) {
	dir := sandbox(t)
	write(t, dir, "requirements.txt", "django==2.2\n")
	out, _, err := run(t, "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
	assert.Empty(t, out)
}

func TestCLI_JSONFormat(t *testing.T) {
	dir := sandbox(t)
	write(t, dir, "requirements.txt", "requests==2.19.1\nflask==1.0.2\n")
	out, _, err := run(t, "-f", "json")
	require.NoError(t, err)
	var arr []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &arr), out)
	require.Len(t, arr, 2)
	assert.Equal(t, "requests", arr[0]["package"])
	assert.Equal(t, "flask", arr[1]["package"])
}

func TestCLI_SARIFFormat(t *testing.T) {
	dir := sandbox(t)
	write(t, dir, "requirements.txt", "flask==1.0.2\n")
	out, _, err := run(t, "--format", "sarif")
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc), out)
	assert.Equal(t, "2.1.0", doc["version"])
}

func TestCLI_LocalConfigExtendsTable(t *testing.T) {
	dir := sandbox(t)
	write(t, dir, "deps.txt", "urllib3==1.24.1\nflask==1.0.2\n")
	write(t, dir, ".pincheck.yml", "manifest: deps.txt\ninsecure_packages:\n  urllib3: 1.24.1\n")
	out, _, err := run(t, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "- urllib3==1.24.1 (insecure version: 1.24.1)")
	assert.Contains(t, out, "- flask==1.0.2 (insecure version: 1.0.2)")
}

func TestCLI_FlagBeatsConfig(t *testing.T) {
	dir := sandbox(t)
	write(t, dir, "deps.txt", "flask==1.0.2\n")
	write(t, dir, "other.txt", "requests==2.0\n")
	write(t, dir, ".pincheck.yml", "manifest: deps.txt\n")
	out, _, err := run(t, "--no-color", "-m", "other.txt")
	require.NoError(t, err)
	assert.Equal(t, "All dependencies are safe!\n", out)
}

func TestCLI_GlobalConfig(t *testing.T) {
	dir := sandbox(t)
	gdir := filepath.Join(dir, "xdg", "pincheck")
	require.NoError(t, os.MkdirAll(gdir, 0o755))
	write(t, gdir, "config.yml", "replace_defaults: true\ninsecure_packages:\n  numpy: \"1.16.0\"\n")
	write(t, dir, "requirements.txt", "flask==1.0.2\nnumpy==1.16.0\n")
	out, _, err := run(t, "--no-color")
	require.NoError(t, err)
	assert.Equal(t, "Insecure dependencies found:\n- numpy==1.16.0 (insecure version: 1.16.0)\n", out)
}

func TestCLI_ExplicitConfigMustExist(t *testing.T) {
	sandbox(t)
	_, _, err := run(t, "--config", "missing.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config missing.yml")
}

func TestCLI_Idempotent(t *testing.T) {
	dir := sandbox(t)
	write(t, dir, "requirements.txt", "flask==1.0.2\ndjango==2.2\n")
	a, _, err := run(t, "--no-color")
	require.NoError(t, err)
	b, _, err := run(t, "--no-color")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestCLI_VerboseLogsToStderr(t *testing.T) {
	dir := sandbox(t)
	write(t, dir, "requirements.txt", "flask==1.0.2\n")
	out, errOut, err := run(t, "--no-color", "-v")
	require.NoError(t, err)
	assert.Contains(t, errOut, "manifest parsed")
	assert.NotContains(t, out, "manifest parsed")
}

func TestCLI_TableCommand(t *testing.T) {
	sandbox(t)
	out, _, err := run(t, "table", "--json")
	require.NoError(t, err)
	var tbl map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &tbl))
	assert.Equal(t, map[string]string{"flask": "1.0.2", "django": "2.2", "requests": "2.19.1"}, tbl)

	out, _, err = run(t, "table")
	require.NoError(t, err)
	assert.Contains(t, out, "django")
	assert.Contains(t, out, "2.19.1")
}

func TestCLI_ConfigShow(t *testing.T) {
	dir := sandbox(t)
	write(t, dir, ".pincheck.yml", "format: table\ninsecure_packages:\n  urllib3: 1.24.1\n")
	out, _, err := run(t, "config", "show", "-m", "deps.txt")
	require.NoError(t, err)
	var eff effectiveConfig
	require.NoError(t, yaml.Unmarshal([]byte(out), &eff), out)
	assert.Equal(t, "deps.txt", eff.Manifest)
	assert.Equal(t, "table", eff.Format)
	assert.Equal(t, "1.24.1", eff.InsecurePackages["urllib3"])
	assert.Equal(t, "2.2", eff.InsecurePackages["django"])
}

func TestCLI_Version(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "pincheck v"), out)
}

func TestCLI_Completion(t *testing.T) {
	out, _, err := run(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "pincheck")
}

func TestNewRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"manifest", "format", "fail-on-findings"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	for _, name := range []string{"config", "no-color", "verbose"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
	names := map[string]bool{}
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"scan", "table", "config", "version", "completion"} {
		assert.True(t, names[want], want)
	}
}

func TestCLI_LongCommentLine(t *testing.T) {
	dir := sandbox(t)
	write(t, dir, "requirements.txt", "# "+strings.Repeat("x", 70*1024)+"\nflask==1.0.2\n")
	out, _, err := run(t, "--no-color")
	require.NoError(t, err)
	assert.Equal(t, "Insecure dependencies found:\n- flask==1.0.2 (insecure version: 1.0.2)\n", out)
}

func TestCLI_BrokenLocalConfigFailsClosed(t *testing.T) {
	dir := sandbox(t)
	write(t, dir, "requirements.txt", "urllib3==1.24.1\n")
	write(t, dir, ".pincheck.yml", "insecure_packages:\n  urllib3: 1.24.1\n  bad: [\n")
	out, _, err := run(t, "--no-color")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".pincheck.yml")
	assert.NotContains(t, out, "All dependencies are safe!")
	assert.Empty(t, out)
}

func TestCLI_BrokenGlobalConfigFailsClosed(t *testing.T) {
	dir := sandbox(t)
	gdir := filepath.Join(dir, "xdg", "pincheck")
	require.NoError(t, os.MkdirAll(gdir, 0o755))
	write(t, gdir, "config.yml", "insecure_packages: [oops\n")
	write(t, dir, "requirements.txt", "flask==1.0.2\n")
	out, _, err := run(t, "--no-color")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.yml")
	assert.Empty(t, out)
}

func TestCLI_DefaultColorOutputIsPlain(t *testing.T) {
	dir := sandbox(t)
	t.Setenv("CLICOLOR_FORCE", "")
	write(t, dir, "requirements.txt", "flask==1.0.2\n")
	out, _, err := run(t)
	require.NoError(t, err)
	assert.Equal(t, "Insecure dependencies found:\n- flask==1.0.2 (insecure version: 1.0.2)\n", out)
}

func TestCLI_ConfigShowRejectsUnknownFormat(t *testing.T) {
	sandbox(t)
	out, _, err := run(t, "config", "show", "-f", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
	assert.Empty(t, out)
}
