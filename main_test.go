package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderCommand(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("IMAGE_NAME", "ENTRESTO.png")

	imgDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(imgDir, "ENTRESTO.png"), []byte("\x89PNG"), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "site")

	var stdout bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{"render", "--out", out, "--image-dir", imgDir, "--theme", "dark"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	lines := strings.Fields(stdout.String())
	if len(lines) != 12 {
		t.Errorf("Expected 12 files listed, got %d: %v", len(lines), lines)
	}

	for _, name := range []string{"ENTRESTO.png", "index.html", "dosage.html", "manufacturer.html"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("Expected %s in output: %v", name, err)
		}
	}

	page, err := os.ReadFile(filepath.Join(out, "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(page), `data-theme="dark"`) {
		t.Error("Exported page should use the dark theme")
	}
}

func TestRenderCommandErrors(t *testing.T) {
	t.Setenv("ENV", "test")

	tests := []struct {
		name string
		args []string
	}{
		{"missing out", []string{"render"}},
		{"bad theme", []string{"render", "--out", t.TempDir(), "--theme", "sepia"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCmd()
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(tt.args)

			if err := cmd.Execute(); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestRenderCommandRejectsBadConfig(t *testing.T) {
	t.Setenv("ENV", "staging-eu")

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"render", "--out", t.TempDir()})

	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "invalid ENV") {
		t.Errorf("Expected invalid ENV error, got %v", err)
	}
}
