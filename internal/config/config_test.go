package config

import (
	"os"
	"path/filepath"
	"testing"

	"docvault/internal/domain"
)

func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv(envProject, "")
	t.Setenv(envShared, "")
}

func TestLoad_Defaults(t *testing.T) {
	isolateEnv(t)
	workDir := t.TempDir()

	cfg, err := Load(workDir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.ProjectDir != filepath.Join(workDir, VaultDirName) {
		t.Errorf("ProjectDir = %q", cfg.ProjectDir)
	}
	if cfg.SharedDir == "" {
		t.Error("SharedDir should have a default")
	}
}

func TestLoad_DiscoversVaultInParent(t *testing.T) {
	isolateEnv(t)
	root := t.TempDir()
	vault := filepath.Join(root, VaultDirName)
	if err := os.MkdirAll(vault, 0o755); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(nested)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ProjectDir != vault {
		t.Errorf("ProjectDir = %q, want %q", cfg.ProjectDir, vault)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolateEnv(t)
	t.Setenv(envProject, "/custom/project")
	t.Setenv(envShared, "/custom/shared")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ProjectDir != "/custom/project" {
		t.Errorf("ProjectDir = %q", cfg.ProjectDir)
	}
	if cfg.SharedDir != "/custom/shared" {
		t.Errorf("SharedDir = %q", cfg.SharedDir)
	}
}

func TestLoad_ProjectConfigWithComments(t *testing.T) {
	isolateEnv(t)
	workDir := t.TempDir()

	content := `{
		// where shared documents live
		"shared_dir": "/opt/docs",
		"editor": "hx", // trailing comma below is fine
	}`
	if err := os.WriteFile(filepath.Join(workDir, ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(workDir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.SharedDir != "/opt/docs" {
		t.Errorf("SharedDir = %q", cfg.SharedDir)
	}
	if cfg.Editor != "hx" {
		t.Errorf("Editor = %q", cfg.Editor)
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	isolateEnv(t)
	workDir := t.TempDir()

	if err := os.WriteFile(filepath.Join(workDir, ConfigFileName), []byte("{{{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(workDir); err == nil {
		t.Error("expected error for invalid config")
	}
}

func TestConfig_Roots(t *testing.T) {
	cfg := Config{ProjectDir: "/p", SharedDir: "/s"}

	project, shared := cfg.Roots(domain.EntityDoc)
	if project != filepath.Join("/p", "docs") || shared != filepath.Join("/s", "docs") {
		t.Errorf("doc roots = (%q, %q)", project, shared)
	}

	project, shared = cfg.Roots(domain.EntityTemplate)
	if project != filepath.Join("/p", "templates") || shared != filepath.Join("/s", "templates") {
		t.Errorf("template roots = (%q, %q)", project, shared)
	}
}
