package extract

import "strings"

type Category struct {
	Key     string   `yaml:"key" json:"key"`
	Aliases []string `yaml:"aliases" json:"aliases"`
}

// Matches reports whether any alias occurs, case-insensitively, inside the
// key or the value. A category without aliases matches on its own key.
func (c Category) Matches(key, value string) bool {
	k := strings.ToLower(key)
	v := strings.ToLower(value)
	aliases := c.Aliases
	if len(aliases) == 0 {
		aliases = []string{c.Key}
	}
	for _, alias := range aliases {
		a := strings.ToLower(strings.TrimSpace(alias))
		if a == "" {
			continue
		}
		if strings.Contains(k, a) || strings.Contains(v, a) {
			return true
		}
	}
	return false
}

func DefaultCategories() []Category {
	return []Category{
		{Key: "CPU", Aliases: []string{"CPU", "Processor", "프로세서"}},
		{Key: "GPU", Aliases: []string{"GPU", "Graphics", "그래픽", "VGA"}},
		{Key: "Memory", Aliases: []string{"Memory", "RAM", "메모리", "DRAM", "DDR", "RDIMM", "UDIMM", "ECC"}},
		{Key: "Storage", Aliases: []string{"Storage", "스토리지", "SSD", "HDD", "NVMe", "SATA", "M.2", "U.2"}},
		{Key: "Power", Aliases: []string{"Power", "PSU", "전원", "AC", "DC", "Adapter", "어댑터", "전력", "입력"}},
		{Key: "I/O", Aliases: []string{"I/O", "IO", "Interface", "입출력", "포트", "USB", "PCIe", "HDMI", "DP", "VGA", "COM", "RS-232", "RS-485"}},
		{Key: "LAN", Aliases: []string{"LAN", "Ethernet", "GbE", "10GbE", "2.5GbE", "RJ-45", "네트워크"}},
		{Key: "Dimensions", Aliases: []string{"Dimensions", "크기", "규격", "외형", "치수", "Size", "Form Factor", "W x D x H", "WxDxH", "mm", "cm", "inch"}},
		{Key: "Operating Temperature", Aliases: []string{"Operating Temperature", "Operating Temp", "동작 온도", "작동 온도", "온도", "Temperature range", "Operating range"}},
	}
}

func cloneCategories(in []Category) []Category {
	out := make([]Category, 0, len(in))
	for _, c := range in {
		out = append(out, Category{Key: c.Key, Aliases: append([]string(nil), c.Aliases...)})
	}
	return out
}
