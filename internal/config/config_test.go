package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestDefaults(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(filepath.Join(tmp, "missing.yaml"))); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	if got := GetString(KeyTheme); got != "tokyonight" {
		t.Errorf("default theme = %q, want tokyonight", got)
	}
	if got := GetString(KeyLayoutStrategy); got != "hierarchical" {
		t.Errorf("default layout strategy = %q, want hierarchical", got)
	}
	if !GetBool(KeyForceRefine) {
		t.Error("default force-refine = false, want true")
	}
	if got := GetString(KeyOutputFormat); got != "rich" {
		t.Errorf("default output format = %q, want rich", got)
	}
	if got := GetInt(KeyBranchLevels); got != 2 {
		t.Errorf("default branch levels = %d, want 2", got)
	}
}

func TestUserConfigOverridesDefaults(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user", "config.yaml")
	writeFile(t, userCfg, "theme: dracula\n")

	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if got := GetString(KeyTheme); got != "dracula" {
		t.Errorf("theme = %q, want dracula", got)
	}
}

func TestProjectConfigOverridesUserConfig(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user", "config.yaml")
	writeFile(t, userCfg, "theme: dracula\nlayout:\n  strategy: radial\n")
	projCfg := filepath.Join(tmp, "work", ".compass", "config.yaml")
	writeFile(t, projCfg, "theme: nord\n")

	if err := Initialize(WithWorkingDir(filepath.Join(tmp, "work")), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if got := GetString(KeyTheme); got != "nord" {
		t.Errorf("theme = %q, want nord", got)
	}
	// Keys the project config omits still come from the user config.
	if got := GetString(KeyLayoutStrategy); got != "radial" {
		t.Errorf("layout strategy = %q, want radial", got)
	}
}

func TestProjectConfigDiscoveredInParent(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	projCfg := filepath.Join(tmp, ".compass", "config.yaml")
	writeFile(t, projCfg, "theme: gruvbox\n")
	nested := filepath.Join(tmp, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	if err := Initialize(WithWorkingDir(nested), WithUserConfig(filepath.Join(tmp, "missing.yaml"))); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if got := GetString(KeyTheme); got != "gruvbox" {
		t.Errorf("theme = %q, want gruvbox", got)
	}
}

func TestEnvOverridesFiles(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user", "config.yaml")
	writeFile(t, userCfg, "theme: dracula\n")
	t.Setenv("COMPASS_THEME", "nord")
	t.Setenv("COMPASS_LAYOUT_STRATEGY", "radial")

	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if got := GetString(KeyTheme); got != "nord" {
		t.Errorf("theme = %q, want nord", got)
	}
	if got := GetString(KeyLayoutStrategy); got != "radial" {
		t.Errorf("layout strategy = %q, want radial", got)
	}
}

func TestApplyOverridesWinsOverEverything(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	t.Setenv("COMPASS_THEME", "nord")
	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(filepath.Join(tmp, "missing.yaml"))); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if err := ApplyOverrides(map[string]any{KeyTheme: "gruvbox"}); err != nil {
		t.Fatalf("ApplyOverrides: %v", err)
	}
	if got := GetString(KeyTheme); got != "gruvbox" {
		t.Errorf("theme = %q, want gruvbox", got)
	}
}

func TestSet(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	if err := Initialize(WithWorkingDir(tmp), WithUserConfig(filepath.Join(tmp, "missing.yaml"))); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if err := Set(KeyForceRefine, false); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if GetBool(KeyForceRefine) {
		t.Error("force-refine = true after Set(false)")
	}
}

func TestMergeConfigFileRejectsDirectory(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	dirAsConfig := filepath.Join(tmp, "config.yaml")
	if err := os.MkdirAll(dirAsConfig, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	err := Initialize(WithWorkingDir(tmp), WithUserConfig(dirAsConfig))
	if err == nil {
		t.Fatal("Initialize succeeded with directory as user config")
	}
}

func TestSaveThemeWritesUserConfig(t *testing.T) {
	reset()
	t.Cleanup(reset)

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, ".compass", "config.yaml")
	userConfigPathOverride = userCfg

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	workDir := filepath.Join(tmp, "nowhere")
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.Chdir(workDir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	if err := SaveTheme("nord"); err != nil {
		t.Fatalf("SaveTheme: %v", err)
	}

	reset()
	userConfigPathOverride = ""
	if err := Initialize(WithWorkingDir(workDir), WithUserConfig(userCfg)); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	if got := GetString(KeyTheme); got != "nord" {
		t.Errorf("theme after SaveTheme = %q, want nord", got)
	}
}
