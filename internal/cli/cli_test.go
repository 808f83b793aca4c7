package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"verbose-log/internal/verboselog"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"VERBOSELOG_CONFIG",
		"VERBOSELOG_ENABLED",
		"VERBOSELOG_STAGING_DOMAINS",
		"VERBOSELOG_PAGE_URL",
		"VERBOSELOG_POLICY",
		"VERBOSELOG_COLOR",
	} {
		t.Setenv(key, "")
	}
}

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand(&stdout, &stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestLogCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "Staging prints debug",
			args: []string{"--url", "https://site.webflow.io/", "log", "--level", "debug", "hello", "world"},
			want: "🟢 [DEBUG]: hello world\n",
		},
		{
			name: "Production hides info",
			args: []string{"--url", "https://www.example.com/", "log", "hello"},
			want: "",
		},
		{
			name: "Production shows error",
			args: []string{"--url", "https://www.example.com/", "log", "-l", "ERROR", "boom"},
			want: "🟠 [ERROR]: boom\n",
		},
		{
			name: "Custom emoji",
			args: []string{"--url", "https://site.webflow.io/", "log", "-e", "🚀", "launch"},
			want: "🚀 [INFO]: launch\n",
		},
		{
			name: "Staging domain flag",
			args: []string{"--url", "https://preview.foo.test/", "--staging-domain", "foo.test", "log", "-l", "warn", "careful"},
			want: "🟡 [WARN]: careful\n",
		},
		{
			name: "Disabled flag",
			args: []string{"--url", "https://site.webflow.io/", "--disabled", "log", "-l", "critical", "quiet"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			stdout, _, err := run(t, "", tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if stdout != tt.want {
				t.Errorf("stdout = %q, want %q", stdout, tt.want)
			}
		})
	}
}

func TestLogCommandUnknownLevel(t *testing.T) {
	clearEnv(t)
	_, _, err := run(t, "", "log", "--level", "fatal", "x")
	if !errors.Is(err, verboselog.ErrUnknownLevel) {
		t.Errorf("error = %v, want ErrUnknownLevel", err)
	}
}

func TestLogCommandRequiresMessage(t *testing.T) {
	clearEnv(t)
	if _, _, err := run(t, "", "log"); err == nil {
		t.Error("expected an error when no message is given")
	}
}

func TestTableCommand(t *testing.T) {
	clearEnv(t)
	stdout, _, err := run(t, "", "--url", "https://www.example.com/", "table", "-l", "critical", `["a","b"]`)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	want := "🔴 [CRITICAL]: Table data logged below:\n" +
		"(index) | Values\n" +
		"--------+-------\n" +
		"0       | a\n" +
		"1       | b\n"
	if stdout != want {
		t.Errorf("stdout:\n%s\nwant:\n%s", stdout, want)
	}
}

func TestTableCommandReadsStdin(t *testing.T) {
	clearEnv(t)
	stdin := `[{"name":"x","qty":1},{"name":"y","qty":2}]`
	stdout, _, err := run(t, stdin, "--url", "https://site.webflow.io/", "table", "-")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"🔵 [INFO]: Table data logged below:", "(index) | name | qty", "0       | x    | 1", "1       | y    | 2"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}
}

func TestTableCommandInvalidJSON(t *testing.T) {
	clearEnv(t)
	_, _, err := run(t, "", "table", "{not json")
	if err == nil || !strings.Contains(err.Error(), "decode table data") {
		t.Errorf("error = %v, want decode error", err)
	}
}

func TestClassifyCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
		want string
	}{
		{"Default domain", []string{"classify", "--url", "https://a.webflow.io"}, nil, "staging\n"},
		{"Production", []string{"classify", "--url", "https://a.example.com"}, nil, "production\n"},
		{"Domain from env", []string{"classify", "--url", "https://a.foo.test"}, map[string]string{"VERBOSELOG_STAGING_DOMAINS": "foo.test"}, "staging\n"},
		{"URL from env", []string{"classify"}, map[string]string{"VERBOSELOG_PAGE_URL": "https://b.webflow.io"}, "staging\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			stdout, _, err := run(t, "", tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if stdout != tt.want {
				t.Errorf("stdout = %q, want %q", stdout, tt.want)
			}
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "staging_domains: [foo.test]\npage_url: https://shop.foo.test/\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := run(t, "", "--config", path, "classify")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if stdout != "staging\n" {
		t.Errorf("stdout = %q, want staging", stdout)
	}
}

func TestConfigFileErrors(t *testing.T) {
	clearEnv(t)
	_, _, err := run(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "classify")
	if err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestMetricsFlag(t *testing.T) {
	clearEnv(t)
	_, stderr, err := run(t, "", "--metrics", "--url", "https://www.example.com/", "log", "-l", "critical", "x")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(stderr, "verbose_log_messages_total") {
		t.Errorf("stderr should contain metrics, got:\n%s", stderr)
	}
}

func TestVersionCommand(t *testing.T) {
	clearEnv(t)
	stdout, _, err := run(t, "", "version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(stdout, "verbose-log ") {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestColor(t *testing.T) {
	t.Run("flag forces escapes", func(t *testing.T) {
		clearEnv(t)
		stdout, _, err := run(t, "", "--color", "--url", "https://site.webflow.io/", "log", "x")
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if !strings.Contains(stdout, "\x1b[") {
			t.Errorf("stdout should contain ANSI escapes, got %q", stdout)
		}
	})

	t.Run("environment ignored off a terminal", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("VERBOSELOG_COLOR", "true")
		stdout, _, err := run(t, "", "--url", "https://site.webflow.io/", "log", "x")
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if want := "🔵 [INFO]: x\n"; stdout != want {
			t.Errorf("stdout = %q, want %q", stdout, want)
		}
	})
}
