package app

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestNormalizeFromStdin(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	in := strings.NewReader("• 64GB 메모리,\n\n– 64GB 메모리\nSleek Design\n- 2x 10GbE 포트\n")
	var out bytes.Buffer
	n, err := Normalize(NormalizeOptions{CWD: t.TempDir(), Stdin: in, Stdout: &out})
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if n != 2 {
		t.Fatalf("want 2 lines, got %d: %q", n, out.String())
	}
	if out.String() != "- 64GB 메모리\n- 2x 10GbE 포트\n" {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestNormalizeFromFilesWithCap(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	work := t.TempDir()
	writeFile(t, filepath.Join(work, "a.txt"), "- CPU 8코어\n- 메모리 32GB\n")
	writeFile(t, filepath.Join(work, "b.txt"), "- 전원 500W\n")
	var out bytes.Buffer
	n, err := Normalize(NormalizeOptions{Inputs: []string{"a.txt", "b.txt"}, FeatureCap: 2, CWD: work, Stdout: &out})
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 || strings.Contains(out.String(), "500W") {
		t.Fatalf("cap not applied: %q", out.String())
	}
}

func TestNormalizeMissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	_, err := Normalize(NormalizeOptions{Inputs: []string{"missing.txt"}, CWD: t.TempDir()})
	if err == nil || !strings.Contains(err.Error(), "파일 읽기 실패") {
		t.Fatalf("unexpected err: %v", err)
	}
}
