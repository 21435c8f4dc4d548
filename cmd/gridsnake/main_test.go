package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/gridsnake/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, id := range []string{"snake", "snake_classic"} {
		if !strings.Contains(out, id) {
			t.Errorf("list output missing %q:\n%s", id, out)
		}
	}
}

func TestConfigCommandPrintsLoadableYAML(t *testing.T) {
	out, err := execute(t, "config")
	if err != nil {
		t.Fatalf("config: %v", err)
	}

	cfg, err := config.Parse([]byte(out))
	if err != nil {
		t.Fatalf("output does not parse: %v\n%s", err, out)
	}
	if cfg.Grid.Cols != 20 || cfg.Window.Title != "Snake OpenGL" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestPlayUnknownVariant(t *testing.T) {
	_, err := execute(t, "play", "tetris")
	if err == nil || !strings.Contains(err.Error(), "unknown variant") {
		t.Errorf("err = %v, want unknown variant", err)
	}
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	if _, err := newLogger(&bytes.Buffer{}, "loud"); err == nil {
		t.Error("expected error for unknown level")
	}

	var buf bytes.Buffer
	logger, err := newLogger(&buf, "warn")
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("hidden")
	logger.Warn("shown", "length", 3)
	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("level filtering broken: %q", buf.String())
	}
}

func TestVariantArg(t *testing.T) {
	if got := variantArg(nil); got != "snake" {
		t.Errorf("variantArg(nil) = %q", got)
	}
	if got := variantArg([]string{"snake_classic"}); got != "snake_classic" {
		t.Errorf("variantArg = %q", got)
	}
}
