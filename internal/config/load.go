package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var embeddedDefaultConfig []byte

func Load(pathArg, cwd string) (*Config, *Paths, error) {
	paths, err := resolvePaths(pathArg, cwd)
	if err != nil {
		return nil, nil, err
	}
	if err := ensureBootstrap(paths); err != nil {
		return nil, nil, err
	}

	raw, err := os.ReadFile(paths.ConfigPath)
	if err != nil {
		return nil, nil, fmt.Errorf("설정 파일 읽기 실패(%s): %w", paths.ConfigPath, err)
	}
	cfg, err := Parse(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("설정 파일 형식 오류(%s): %w", paths.ConfigPath, err)
	}
	paths.ConfigSource = paths.ConfigPath
	return cfg, paths, nil
}

// Parse decodes raw YAML and fills defaults. It does not validate ranges so
// that command-line overrides can still be applied.
func Parse(raw []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func Default() *Config {
	cfg, err := Parse(embeddedDefaultConfig)
	if err != nil {
		cfg = &Config{}
		cfg.applyDefaults()
	}
	return cfg
}

func resolvePaths(configArg, cwd string) (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("사용자 홈 디렉터리 확인 실패: %w", err)
	}
	root := filepath.Join(home, ".webspec")
	configPath := filepath.Join(root, "config.yaml")
	if strings.TrimSpace(configArg) != "" {
		configPath = expandPath(configArg, home, cwd)
	}
	return &Paths{
		HomeDir:    home,
		RootDir:    root,
		ConfigPath: configPath,
	}, nil
}

func ensureBootstrap(paths *Paths) error {
	if err := os.MkdirAll(filepath.Dir(paths.ConfigPath), 0o755); err != nil {
		return fmt.Errorf("설정 디렉터리 생성 실패: %w", err)
	}
	return ensureFile(paths.ConfigPath, embeddedDefaultConfig, 0o644)
}

func ensureFile(path string, data []byte, mode os.FileMode) error {
	if st, err := os.Stat(path); err == nil && !st.IsDir() {
		return nil
	}
	if err := os.WriteFile(path, data, mode); err != nil {
		return fmt.Errorf("기본 파일 쓰기 실패(%s): %w", path, err)
	}
	return nil
}

func expandPath(v, home, cwd string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return v
	}
	if strings.HasPrefix(v, "~/") {
		return filepath.Join(home, v[2:])
	}
	if filepath.IsAbs(v) {
		return v
	}
	if strings.TrimSpace(cwd) != "" {
		return filepath.Join(cwd, v)
	}
	return v
}
