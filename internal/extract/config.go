package extract

import "unicode"

const (
	DefaultDescMax         = 40
	DefaultSummaryMax      = 200
	DefaultFeatureCap      = 24
	DefaultKVCap           = 500
	DefaultBulletCap       = 300
	DefaultBulletMaxLen    = 64
	DefaultPlaceholderName = "제품명"
	DefaultTargetScript    = "Hangul"

	MinDescMax    = 10
	MaxDescMax    = 200
	MinSummaryMax = 50
	MaxSummaryMax = 600
	minBulletLen  = 8
)

func DefaultUnits() []string {
	return []string{
		"ghz", "mhz", "khz", "gb", "mb", "tb", "w", "v", "a", "mm", "cm", "inch",
		"gbit", "gbe", "pcie", "usb", "sata", "nvme", "ddr", "rdimm", "udimm",
		"ecc", "wifi", "bt", "poe",
	}
}

// Config carries every limit and table the pipeline reads. Nothing is taken
// from package state, so differently configured runs may proceed in parallel.
type Config struct {
	DescMax         int
	SummaryMax      int
	FeatureCap      int
	KVCap           int
	BulletCap       int
	BulletMaxLen    int
	PlaceholderName string
	// TargetScript names a unicode.Scripts entry, e.g. "Hangul".
	TargetScript string
	Units        []string
	Categories   []Category
}

func DefaultConfig() Config {
	return Config{
		DescMax:         DefaultDescMax,
		SummaryMax:      DefaultSummaryMax,
		FeatureCap:      DefaultFeatureCap,
		KVCap:           DefaultKVCap,
		BulletCap:       DefaultBulletCap,
		BulletMaxLen:    DefaultBulletMaxLen,
		PlaceholderName: DefaultPlaceholderName,
		TargetScript:    DefaultTargetScript,
		Units:           DefaultUnits(),
		Categories:      DefaultCategories(),
	}
}

// withDefaults fills zero values and clamps the description and summary
// limits into their supported ranges.
func (c Config) withDefaults() Config {
	if c.DescMax <= 0 {
		c.DescMax = DefaultDescMax
	}
	c.DescMax = clamp(c.DescMax, MinDescMax, MaxDescMax)
	if c.SummaryMax <= 0 {
		c.SummaryMax = DefaultSummaryMax
	}
	c.SummaryMax = clamp(c.SummaryMax, MinSummaryMax, MaxSummaryMax)
	if c.FeatureCap <= 0 {
		c.FeatureCap = DefaultFeatureCap
	}
	if c.KVCap <= 0 {
		c.KVCap = DefaultKVCap
	}
	if c.BulletCap <= 0 {
		c.BulletCap = DefaultBulletCap
	}
	if c.BulletMaxLen <= 0 {
		c.BulletMaxLen = DefaultBulletMaxLen
	}
	if c.BulletMaxLen < minBulletLen {
		c.BulletMaxLen = minBulletLen
	}
	if c.PlaceholderName == "" {
		c.PlaceholderName = DefaultPlaceholderName
	}
	if c.TargetScript == "" {
		c.TargetScript = DefaultTargetScript
	}
	if c.Units == nil {
		c.Units = DefaultUnits()
	}
	if c.Categories == nil {
		c.Categories = DefaultCategories()
	}
	return c
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ScriptTable resolves a script name; unknown names yield nil.
func ScriptTable(name string) *unicode.RangeTable {
	if name == "" {
		return nil
	}
	return unicode.Scripts[name]
}
