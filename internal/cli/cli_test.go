package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"

	apperr "github.com/matzehuels/cmplogview/pkg/errors"
)

const testDoc = `{
  "cmps": [
    {
      "header": "magic_check",
      "log": [
        {"v0": 0, "v1": 0, "v0_128": 0, "v1_128": 0},
        {"v0": 0, "v1": 0, "v0_128": 0, "v1_128": 0},
        {"v0": 0, "v1": 0, "v0_128": 0, "v1_128": 0},
        {"v0": 16961, "v1": 0, "v0_128": 0, "v1_128": 0},
        {"v0": 2625, "v1": 1, "v0_128": 1195984440, "v1_128": 67}
      ]
    },
    {"header": "quiet", "log": [{"v0": 1, "v1": 2, "v0_128": 3, "v1_128": 4}]}
  ]
}`

const testReport = `magic_check
03 - /AB/ - //
04 - /A/ - //
04 - /8FIG/ - /C/   (128)
quiet
`

type result struct {
	stdout string
	stderr string
	code   int
	err    error
}

// execute runs the CLI with args in an isolated config environment.
func execute(t *testing.T, args ...string) result {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var stdout, logs, stderr bytes.Buffer
	c := New(&logs, log.InfoLevel)
	c.Out = &stdout
	c.Program = "cmplogview"

	root := c.RootCommand()
	root.SetArgs(args)
	root.SetErr(&stderr)
	err := root.ExecuteContext(context.Background())

	code := ExitCode(err, &stdout, &stderr)
	return result{stdout: stdout.String(), stderr: stderr.String(), code: code, err: err}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReport(t *testing.T) {
	path := writeFile(t, "cmplog.json", testDoc)

	res := execute(t, path)
	if res.code != ExitOK {
		t.Fatalf("exit code = %d, want 0 (err: %v)", res.code, res.err)
	}
	if diff := cmp.Diff(testReport, res.stdout); diff != "" {
		t.Errorf("report mismatch (-want +got):\n%s", diff)
	}
	if res.stderr != "" {
		t.Errorf("stderr = %q, want empty", res.stderr)
	}
}

func TestReportIdempotent(t *testing.T) {
	path := writeFile(t, "cmplog.json", testDoc)

	first := execute(t, path)
	second := execute(t, path)
	if first.stdout != second.stdout {
		t.Errorf("second run differs:\n%q\n%q", first.stdout, second.stdout)
	}
}

func TestReportExtraArgsIgnored(t *testing.T) {
	path := writeFile(t, "cmplog.json", testDoc)

	res := execute(t, path, "ignored.json")
	if res.code != ExitOK || res.stdout != testReport {
		t.Errorf("exit code = %d, stdout = %q", res.code, res.stdout)
	}
}

func TestUsage(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"root", nil, "usage: cmplogview <path-to-json>\n"},
		{"hex", []string{"hex"}, "usage: cmplogview hex <path-to-json>\n"},
		{"summary", []string{"summary"}, "usage: cmplogview summary <path-to-json>\n"},
		{"browse", []string{"browse"}, "usage: cmplogview browse <path-to-json>\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := execute(t, tt.args...)
			if res.code != ExitError {
				t.Errorf("exit code = %d, want %d", res.code, ExitError)
			}
			if !apperr.Is(res.err, apperr.ErrCodeUsage) {
				t.Errorf("error code = %q, want %q", apperr.GetCode(res.err), apperr.ErrCodeUsage)
			}
			if res.stdout != tt.want {
				t.Errorf("stdout = %q, want %q", res.stdout, tt.want)
			}
			if res.stderr != "" {
				t.Errorf("stderr = %q, want empty", res.stderr)
			}
		})
	}
}

func TestReportErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		path string
		code apperr.Code
	}{
		{"missing file", filepath.Join(dir, "missing.json"), apperr.ErrCodeFileAccess},
		{"directory", dir, apperr.ErrCodeFileAccess},
		{"invalid json", writeFile(t, "bad.json", `{"cmps": [`), apperr.ErrCodeParse},
		{"missing field", writeFile(t, "schema.json", `{"cmps": [{"header": "h"}]}`), apperr.ErrCodeSchema},
		{
			"negative operand",
			writeFile(t, "neg.json", `{"cmps": [{"header": "h", "log": [{"v0": -1, "v1": 0, "v0_128": 0, "v1_128": 0}]}]}`),
			apperr.ErrCodeNegativeValue,
		},
		{"control character path", "bad\x01path.json", apperr.ErrCodeInvalidPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := execute(t, tt.path)
			if res.code != ExitError {
				t.Errorf("exit code = %d, want %d", res.code, ExitError)
			}
			if !apperr.Is(res.err, tt.code) {
				t.Errorf("error code = %q, want %q (err: %v)", apperr.GetCode(res.err), tt.code, res.err)
			}
			if res.stdout != "" {
				t.Errorf("stdout = %q, want nothing printed", res.stdout)
			}
			if !strings.HasPrefix(res.stderr, string(tt.code)+": ") || strings.Count(res.stderr, "\n") != 1 {
				t.Errorf("stderr = %q, want one %s line", res.stderr, tt.code)
			}
		})
	}
}

func TestEscapeFlagAndConfig(t *testing.T) {
	path := writeFile(t, "cmplog.json", `{"cmps": [{"header": "h", "log": [{"v0": 2625, "v1": 0, "v0_128": 0, "v1_128": 0}]}]}`)
	escapeOn := writeFile(t, "on.toml", "[report]\nescape = true\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"default", []string{path}, "h\n00 - /A/ - //\n"},
		{"flag", []string{"--escape", path}, "h\n00 - /A\\x0a/ - /\\x00/\n"},
		{"config", []string{"--config", escapeOn, path}, "h\n00 - /A\\x0a/ - /\\x00/\n"},
		{"flag overrides config", []string{"--config", escapeOn, "--escape=false", path}, "h\n00 - /A/ - //\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := execute(t, tt.args...)
			if res.code != ExitOK {
				t.Fatalf("exit code = %d (err: %v)", res.code, res.err)
			}
			if diff := cmp.Diff(tt.want, res.stdout); diff != "" {
				t.Errorf("report mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConfigErrors(t *testing.T) {
	path := writeFile(t, "cmplog.json", testDoc)

	tests := []struct {
		name   string
		config string
	}{
		{"missing explicit file", filepath.Join(t.TempDir(), "none.toml")},
		{"bad level", writeFile(t, "bad.toml", "[log]\nlevel = \"chatty\"\n")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := execute(t, "--config", tt.config, path)
			if !apperr.Is(res.err, apperr.ErrCodeInvalidConfig) {
				t.Errorf("error code = %q, want %q", apperr.GetCode(res.err), apperr.ErrCodeInvalidConfig)
			}
			if res.stdout != "" {
				t.Errorf("stdout = %q, want empty", res.stdout)
			}
		})
	}
}

func TestHexCommand(t *testing.T) {
	path := writeFile(t, "cmplog.json", testDoc)

	res := execute(t, "hex", path)
	if res.code != ExitOK {
		t.Fatalf("exit code = %d (err: %v)", res.code, res.err)
	}
	want := strings.Join([]string{
		"magic_check",
		"    003 0x0000000000004241 0x0000000000000000",
		"    004 0x0000000000000A41 0x0000000000000001",
		"    004 0x0000000047494638 0x0000000000000043   (128)",
		"quiet",
		"    000 0x0000000000000001 0x0000000000000002",
		"    000 0x0000000000000003 0x0000000000000004   (128)",
		"",
	}, "\n")
	if diff := cmp.Diff(want, res.stdout); diff != "" {
		t.Errorf("hex mismatch (-want +got):\n%s", diff)
	}
}

func TestSummaryCommand(t *testing.T) {
	path := writeFile(t, "cmplog.json", testDoc)

	res := execute(t, "summary", path)
	if res.code != ExitOK {
		t.Fatalf("exit code = %d (err: %v)", res.code, res.err)
	}
	for _, want := range []string{"Header", "magic_check", "components", "report lines", "--all"} {
		if !strings.Contains(res.stdout, want) {
			t.Errorf("summary output missing %q:\n%s", want, res.stdout)
		}
	}
	if strings.Contains(res.stdout, "quiet") {
		t.Errorf("summary without --all should hide silent components:\n%s", res.stdout)
	}

	res = execute(t, "summary", "--all", path)
	if !strings.Contains(res.stdout, "quiet") {
		t.Errorf("summary --all should list silent components:\n%s", res.stdout)
	}
}

func TestVersionFlag(t *testing.T) {
	res := execute(t, "--version")
	if res.code != ExitOK {
		t.Fatalf("exit code = %d (err: %v)", res.code, res.err)
	}
	if !strings.HasPrefix(res.stdout, "cmplogview version ") {
		t.Errorf("stdout = %q, want version line", res.stdout)
	}
}

func TestCompletionCommand(t *testing.T) {
	res := execute(t, "completion", "bash")
	if res.code != ExitOK {
		t.Fatalf("exit code = %d (err: %v)", res.code, res.err)
	}
	if !strings.Contains(res.stdout, "cmplogview") {
		t.Error("bash completion should mention the program name")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		want       int
		wantStdout string
		wantStderr string
	}{
		{"nil", nil, ExitOK, "", ""},
		{"canceled", context.Canceled, ExitInterrupted, "", ""},
		{"usage", apperr.Usage("prog", "<path-to-json>"), ExitError, "usage: prog <path-to-json>\n", ""},
		{"other", apperr.New(apperr.ErrCodeParse, "decode"), ExitError, "", "PARSE: decode\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if got := ExitCode(tt.err, &stdout, &stderr); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
			if stdout.String() != tt.wantStdout {
				t.Errorf("stdout = %q, want %q", stdout.String(), tt.wantStdout)
			}
			if stderr.String() != tt.wantStderr {
				t.Errorf("stderr = %q, want %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}
