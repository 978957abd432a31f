package cli_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"go.yaml.in/yaml/v3"

	"github.com/km-arc/go-locator/internal/cli"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := cli.NewRootCommand("test")
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--env-file", "testdata/missing.env"))
	err := cmd.Execute()
	return out.String(), err
}

func TestBindings_Text(t *testing.T) {
	out, err := run(t, "bindings")
	if err != nil {
		t.Fatalf("bindings: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 4 || lines[0] != "*game.Boss" {
		t.Errorf("sorted bindings: got %v", lines)
	}
}

func TestBindings_YAML(t *testing.T) {
	out, err := run(t, "bindings", "--format", "yaml")
	if err != nil {
		t.Fatalf("bindings: %v", err)
	}
	var report struct {
		App      string   `yaml:"app"`
		Bindings []string `yaml:"bindings"`
	}
	if err := yaml.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("yaml: %v\n%s", err, out)
	}
	if report.App == "" || len(report.Bindings) == 0 {
		t.Errorf("report: %+v", report)
	}
}

func TestBindings_JSON(t *testing.T) {
	out, err := run(t, "bindings", "-f", "json")
	if err != nil {
		t.Fatalf("bindings: %v", err)
	}
	var report map[string]any
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("json: %v", err)
	}
}

func TestBindings_UnknownFormat(t *testing.T) {
	if _, err := run(t, "bindings", "--format", "xml"); err == nil {
		t.Error("expected an error for an unknown format")
	}
}

func TestPlay_SharesLoggerAcrossBosses(t *testing.T) {
	out, err := run(t, "play", "--bosses", "2", "--audio", "production")
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if !strings.Contains(out, "player jumped: ProductionAudioManager") {
		t.Errorf("output: %q", out)
	}
	if n := strings.Count(out, "Boss was hit."); n != 2 {
		t.Errorf("hits: got %d, want 2", n)
	}

	// Every boss line carries the same logger id.
	var ids []string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "Boss") {
			ids = append(ids, line[:strings.Index(line, "]")])
		}
	}
	for _, id := range ids {
		if id != ids[0] {
			t.Fatalf("bosses used different loggers: %v", ids)
		}
	}
}

func TestPlay_UnknownAudio(t *testing.T) {
	if _, err := run(t, "play", "--audio", "surround"); err == nil {
		t.Error("expected an error for an unknown audio manager")
	}
}
