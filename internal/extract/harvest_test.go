package extract

import (
	"fmt"
	"strings"
	"testing"
)

func TestHarvestKeyValues(t *testing.T) {
	text := strings.Join([]string{
		"CPU: Intel Xeon Gold 6338",
		"Ethernet - 2x 10GbE RJ-45",
		"Note - see: appendix",
		"no separator here",
		": empty key",
		"Empty value:",
		"",
		strings.Repeat("k", 61) + ": too long key",
		"Long: " + strings.Repeat("v", 300),
		"  메모리 : DDR5 512GB  ",
	}, "\n")
	got := HarvestKeyValues(text, 0)
	want := []KeyValue{
		{Key: "CPU", Value: "Intel Xeon Gold 6338", Index: 0},
		{Key: "Ethernet", Value: "2x 10GbE RJ-45", Index: 1},
		{Key: "Note - see", Value: "appendix", Index: 2},
		{Key: "메모리", Value: "DDR5 512GB", Index: 9},
	}
	if len(got) != len(want) {
		t.Fatalf("got %#v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%d: got %#v, want %#v", i, got[i], want[i])
		}
	}
}

func TestHarvestKeyValuesCap(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 20; i++ {
		fmt.Fprintf(&b, "k%d: v%d\n", i, i)
	}
	got := HarvestKeyValues(b.String(), 5)
	if len(got) != 5 || got[4].Key != "k4" {
		t.Fatalf("got %#v", got)
	}
}

func TestHarvestKeyValuesCRLF(t *testing.T) {
	got := HarvestKeyValues("A: 1\r\nB: 2\rC: 3", 0)
	if len(got) != 3 || got[2].Value != "3" {
		t.Fatalf("got %#v", got)
	}
}

func TestHarvestBullets(t *testing.T) {
	text := strings.Join([]string{
		"• 팬리스 설계",
		"●듀얼 LAN",
		"- 2x USB 3.2 -",
		"▪ ",
		"‣ 넓은 동작 온도:",
		"– DC 12V",
		"— 1U 랙마운트",
		"· VESA 마운트",
		"* TPM 2.0 *",
		"일반 문장",
		"  -- 이중 마커",
	}, "\n")
	got := HarvestBullets(text, 0)
	want := []string{"팬리스 설계", "듀얼 LAN", "2x USB 3.2", "넓은 동작 온도", "DC 12V", "1U 랙마운트", "VESA 마운트", "TPM 2.0", "이중 마커"}
	if len(got) != len(want) {
		t.Fatalf("got %#v", got)
	}
	for i := range want {
		if got[i].Text != want[i] {
			t.Fatalf("%d: got %q, want %q", i, got[i].Text, want[i])
		}
	}
}

func TestHarvestBulletsCap(t *testing.T) {
	text := strings.Repeat("- 항목 1\n", 10)
	if got := HarvestBullets(text, 3); len(got) != 3 {
		t.Fatalf("got %d", len(got))
	}
}

func TestCategoryMatches(t *testing.T) {
	cats := DefaultCategories()
	if len(cats) != 9 || cats[0].Key != "CPU" || cats[8].Key != "Operating Temperature" {
		t.Fatalf("unexpected table: %#v", cats)
	}
	cpu, mem, temp := cats[0], cats[2], cats[8]
	if !cpu.Matches("Processor", "Intel") {
		t.Fatalf("key alias should match")
	}
	if !cpu.Matches("사양", "쿼드코어 프로세서") {
		t.Fatalf("localized alias in value should match")
	}
	if !mem.Matches("Spec", "64GB ddr5 ecc") {
		t.Fatalf("case-insensitive value match expected")
	}
	if !temp.Matches("동작 온도", "-10~50") {
		t.Fatalf("korean key should match")
	}
	if cpu.Matches("Weight", "2kg") {
		t.Fatalf("unexpected match")
	}
	bare := Category{Key: "Weight"}
	if !bare.Matches("weight", "2kg") {
		t.Fatalf("category without aliases matches its key")
	}
}
