// Package config locates the two storage roots and loads optional
// configuration. Precedence, lowest to highest: built-in defaults, the
// global user config, the project config file, environment variables.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"

	"docvault/internal/domain"
)

const (
	// VaultDirName is the directory that marks a project root.
	VaultDirName = ".docvault"
	// ConfigFileName is the per-project config file, looked up next to
	// the vault directory.
	ConfigFileName = ".docvault.json"

	envProject = "DOCVAULT_PROJECT"
	envShared  = "DOCVAULT_SHARED"
)

// Config holds the resolved settings. The config files use HuJSON, so
// comments and trailing commas are fine.
type Config struct {
	ProjectDir string `json:"project_dir,omitempty"`
	SharedDir  string `json:"shared_dir,omitempty"`
	Editor     string `json:"editor,omitempty"`
}

// Load resolves configuration starting from workDir.
func Load(workDir string) (Config, error) {
	cfg := Config{
		ProjectDir: discoverProjectDir(workDir),
		SharedDir:  defaultSharedDir(),
	}

	global, err := loadFile(globalConfigPath())
	if err != nil {
		return Config{}, err
	}
	cfg = merge(cfg, global)

	project, err := loadFile(projectConfigPath(workDir))
	if err != nil {
		return Config{}, err
	}
	cfg = merge(cfg, project)

	if env := os.Getenv(envProject); env != "" {
		cfg.ProjectDir = env
	}
	if env := os.Getenv(envShared); env != "" {
		cfg.SharedDir = env
	}

	cfg.ProjectDir = expandHome(cfg.ProjectDir)
	cfg.SharedDir = expandHome(cfg.SharedDir)
	return cfg, nil
}

// Roots returns the per-entity boundary roots: {projectDir}/docs,
// {sharedDir}/templates, and so on.
func (c Config) Roots(e domain.Entity) (project, shared string) {
	sub := e.Name + "s"
	return filepath.Join(c.ProjectDir, sub), filepath.Join(c.SharedDir, sub)
}

// SearchDBPath is where the derived search index lives. It sits outside
// every scope root so it never collides with a boundary.
func (c Config) SearchDBPath() string {
	return filepath.Join(c.ProjectDir, ".cache", "search.db")
}

// discoverProjectDir walks upward from workDir looking for an existing
// vault directory; if none exists, the vault goes under workDir.
func discoverProjectDir(workDir string) string {
	dir := workDir
	for {
		candidate := filepath.Join(dir, VaultDirName)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return filepath.Join(workDir, VaultDirName)
		}
		dir = parent
	}
}

func defaultSharedDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "docvault")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return VaultDirName
	}
	return filepath.Join(home, VaultDirName)
}

func globalConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "docvault", "config.json")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "docvault", "config.json")
}

// projectConfigPath finds the config file next to the vault directory,
// walking upward like discoverProjectDir.
func projectConfigPath(workDir string) string {
	dir := workDir
	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func loadFile(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	std, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	var cfg Config
	if err := json.Unmarshal(std, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func merge(base, overlay Config) Config {
	if overlay.ProjectDir != "" {
		base.ProjectDir = overlay.ProjectDir
	}
	if overlay.SharedDir != "" {
		base.SharedDir = overlay.SharedDir
	}
	if overlay.Editor != "" {
		base.Editor = overlay.Editor
	}
	return base
}

func expandHome(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
