package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigUnsetVariableExpandsEmpty(t *testing.T) {
	os.Unsetenv("RESUMEFORGE_TEST_RENDERER_URL")
	t.Setenv("PDF_RENDERER_URL", "")

	path := writeConfigFile(t, "renderer:\n  engine: remote\n  remote_url: ${RESUMEFORGE_TEST_RENDERER_URL}\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Renderer.RemoteURL != "" {
		t.Fatalf("remote_url = %q, want empty when the variable is unset", cfg.Renderer.RemoteURL)
	}
}

func TestLoadConfigExpandsSetVariable(t *testing.T) {
	t.Setenv("RESUMEFORGE_TEST_RENDERER_URL", "http://renderer.internal:8999")
	t.Setenv("PDF_RENDERER_URL", "")

	path := writeConfigFile(t, "renderer:\n  engine: remote\n  remote_url: ${RESUMEFORGE_TEST_RENDERER_URL}\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if got, want := cfg.Renderer.RemoteURL, "http://renderer.internal:8999"; got != want {
		t.Fatalf("remote_url = %q, want %q", got, want)
	}
}
