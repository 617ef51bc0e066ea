package config

import (
	"fmt"
	"strings"

	"webspec/internal/extract"
)

type Config struct {
	Extraction  ExtractionConfig   `yaml:"extraction"`
	Categories  []extract.Category `yaml:"categories"`
	Concurrency int                `yaml:"concurrency"`
	Output      OutputConfig       `yaml:"output"`
}

type ExtractionConfig struct {
	DescMax         int      `yaml:"desc_max"`
	SummaryMax      int      `yaml:"summary_max"`
	FeatureCap      int      `yaml:"feature_cap"`
	KVCap           int      `yaml:"kv_cap"`
	BulletCap       int      `yaml:"bullet_cap"`
	BulletMaxLen    int      `yaml:"bullet_max_len"`
	PlaceholderName string   `yaml:"placeholder_name"`
	TargetScript    string   `yaml:"target_script"`
	Units           []string `yaml:"units"`
}

type OutputConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"`
}

type Paths struct {
	HomeDir      string
	RootDir      string
	ConfigPath   string
	ConfigSource string
}

const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

func (c *Config) applyDefaults() {
	e := &c.Extraction
	if e.DescMax <= 0 {
		e.DescMax = extract.DefaultDescMax
	}
	if e.SummaryMax <= 0 {
		e.SummaryMax = extract.DefaultSummaryMax
	}
	if e.FeatureCap <= 0 {
		e.FeatureCap = extract.DefaultFeatureCap
	}
	if e.KVCap <= 0 {
		e.KVCap = extract.DefaultKVCap
	}
	if e.BulletCap <= 0 {
		e.BulletCap = extract.DefaultBulletCap
	}
	if e.BulletMaxLen <= 0 {
		e.BulletMaxLen = extract.DefaultBulletMaxLen
	}
	if strings.TrimSpace(e.PlaceholderName) == "" {
		e.PlaceholderName = extract.DefaultPlaceholderName
	}
	if strings.TrimSpace(e.TargetScript) == "" {
		e.TargetScript = extract.DefaultTargetScript
	}
	if len(e.Units) == 0 {
		e.Units = extract.DefaultUnits()
	}
	if len(c.Categories) == 0 {
		c.Categories = extract.DefaultCategories()
	}
	if c.Concurrency < 0 {
		c.Concurrency = 0
	}
	if strings.TrimSpace(c.Output.Dir) == "" {
		c.Output.Dir = "."
	}
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = FormatMarkdown
	}
}

// Validate reports the first setting outside its supported range.
func (c *Config) Validate() error {
	e := c.Extraction
	if e.DescMax < extract.MinDescMax || e.DescMax > extract.MaxDescMax {
		return fmt.Errorf("desc_max 는 %d~%d 범위여야 함: %d", extract.MinDescMax, extract.MaxDescMax, e.DescMax)
	}
	if e.SummaryMax < extract.MinSummaryMax || e.SummaryMax > extract.MaxSummaryMax {
		return fmt.Errorf("summary_max 는 %d~%d 범위여야 함: %d", extract.MinSummaryMax, extract.MaxSummaryMax, e.SummaryMax)
	}
	if e.BulletMaxLen < 8 {
		return fmt.Errorf("bullet_max_len 은 8 이상이어야 함: %d", e.BulletMaxLen)
	}
	if extract.ScriptTable(e.TargetScript) == nil {
		return fmt.Errorf("알 수 없는 target_script: %s", e.TargetScript)
	}
	for i, cat := range c.Categories {
		if strings.TrimSpace(cat.Key) == "" {
			return fmt.Errorf("categories[%d] 의 key 가 비어 있음", i)
		}
	}
	switch c.Output.Format {
	case FormatMarkdown, FormatJSON:
	default:
		return fmt.Errorf("지원하지 않는 출력 형식: %s", c.Output.Format)
	}
	return nil
}

func (c *Config) ExtractConfig() extract.Config {
	e := c.Extraction
	return extract.Config{
		DescMax:         e.DescMax,
		SummaryMax:      e.SummaryMax,
		FeatureCap:      e.FeatureCap,
		KVCap:           e.KVCap,
		BulletCap:       e.BulletCap,
		BulletMaxLen:    e.BulletMaxLen,
		PlaceholderName: e.PlaceholderName,
		TargetScript:    e.TargetScript,
		Units:           append([]string(nil), e.Units...),
		Categories:      append([]extract.Category(nil), c.Categories...),
	}
}
