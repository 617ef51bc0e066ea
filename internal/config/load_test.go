package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadBootstrapsDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, paths, err := Load("", home)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	want := filepath.Join(home, ".webspec", "config.yaml")
	if paths.ConfigPath != want || paths.ConfigSource != want {
		t.Fatalf("unexpected config path: %+v", paths)
	}
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("default config not written: %v", err)
	}
	if cfg.Extraction.DescMax != 40 || len(cfg.Categories) != 9 {
		t.Fatalf("unexpected cfg: %+v", cfg.Extraction)
	}
}

func TestLoadCustomConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfgPath := filepath.Join(home, "custom.yaml")
	raw := strings.Join([]string{
		"extraction:",
		"  desc_max: 60",
		"  target_script: Han",
		"categories:",
		"  - key: 무게",
		"    aliases: [Weight, 중량]",
		"output:",
		"  format: JSON",
	}, "\n")
	if err := os.WriteFile(cfgPath, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _, err := Load("custom.yaml", home)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Extraction.DescMax != 60 || cfg.Extraction.SummaryMax != 200 {
		t.Fatalf("extraction: %+v", cfg.Extraction)
	}
	if len(cfg.Categories) != 1 || cfg.Categories[0].Key != "무게" || cfg.Categories[0].Aliases[1] != "중량" {
		t.Fatalf("categories: %+v", cfg.Categories)
	}
	if cfg.Output.Format != FormatJSON {
		t.Fatalf("format: %s", cfg.Output.Format)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestLoadConfigFormatError(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfgPath := filepath.Join(home, ".webspec", "config.yaml")
	if err := os.MkdirAll(filepath.Dir(cfgPath), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(cfgPath, []byte("extraction: [oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, _, err := Load(cfgPath, home)
	if err == nil || !strings.Contains(err.Error(), "설정 파일 형식 오류") {
		t.Fatalf("expected config format error, got %v", err)
	}
}

func TestEnsureBootstrapMkdirError(t *testing.T) {
	d := t.TempDir()
	blocker := filepath.Join(d, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	err := ensureBootstrap(&Paths{ConfigPath: filepath.Join(blocker, "config.yaml")})
	if err == nil || !strings.Contains(err.Error(), "설정 디렉터리 생성 실패") {
		t.Fatalf("expected mkdir error, got %v", err)
	}
}

func TestEnsureFile(t *testing.T) {
	d := t.TempDir()
	p := filepath.Join(d, "x.txt")
	if err := ensureFile(p, []byte("abc"), 0o644); err != nil {
		t.Fatalf("ensureFile error: %v", err)
	}
	if err := ensureFile(p, []byte("new"), 0o644); err != nil {
		t.Fatalf("ensureFile second write should be noop: %v", err)
	}
	raw, _ := os.ReadFile(p)
	if string(raw) != "abc" {
		t.Fatalf("ensureFile should not overwrite existing file")
	}
	if err := ensureFile(d, []byte("x"), 0o644); err == nil {
		t.Fatalf("expected ensureFile error when path is directory")
	}
}

func TestExpandPath(t *testing.T) {
	home := "/tmp/home"
	if got := expandPath("~/x", home, ""); got != "/tmp/home/x" {
		t.Fatalf("expand ~ failed: %s", got)
	}
	if got := expandPath("a/b", home, "/cwd"); got != "/cwd/a/b" {
		t.Fatalf("expand relative failed: %s", got)
	}
	if got := expandPath("/abs", home, "/cwd"); got != "/abs" {
		t.Fatalf("abs changed: %s", got)
	}
	if got := expandPath("  ", home, "/cwd"); got != "" {
		t.Fatalf("blank: %q", got)
	}
}
