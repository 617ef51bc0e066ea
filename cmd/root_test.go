package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestNormalizeArgs(t *testing.T) {
	cases := []struct {
		in   []string
		want []string
	}{
		{[]string{"a.pdf"}, []string{"gen", "a.pdf"}},
		{[]string{"gen", "a.pdf"}, []string{"gen", "a.pdf"}},
		{[]string{"normalize", "f.txt"}, []string{"normalize", "f.txt"}},
		{[]string{"--config", "x"}, []string{"--config", "x"}},
		{[]string{"--format", "json", "docs"}, []string{"gen", "--format", "json", "docs"}},
		{[]string{"-v"}, []string{"-v"}},
		{nil, nil},
	}
	for _, tc := range cases {
		if got := normalizeArgs(tc.in); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("%#v => %#v, want %#v", tc.in, got, tc.want)
		}
	}
}

func TestContainsPositionalSource(t *testing.T) {
	if containsPositionalSource([]string{"--config", "x"}) {
		t.Fatalf("unexpected true")
	}
	if containsPositionalSource([]string{"--desc-max", "30", "--verbose"}) {
		t.Fatalf("flag value must not count as input")
	}
	if !containsPositionalSource([]string{"--config", "x", "a.pdf"}) {
		t.Fatalf("expected true")
	}
	if !containsPositionalSource([]string{"--out=dir", "a.pdf"}) {
		t.Fatalf("expected true")
	}
	if !containsPositionalSource([]string{"--", "a.pdf"}) {
		t.Fatalf("expected true")
	}
}

func TestPrintVersion(t *testing.T) {
	var out bytes.Buffer
	printVersion(&out)
	if !strings.Contains(out.String(), "webspec 버전 "+Version) {
		t.Fatalf("unexpected version output: %s", out.String())
	}
}

func TestRootCmdVersionFlagAndNoArgsHelp(t *testing.T) {
	var out, errOut bytes.Buffer
	root := NewRootCmd(&out, &errOut)
	root.SetArgs([]string{"--version"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "webspec 버전") {
		t.Fatalf("unexpected: %s", out.String())
	}

	out.Reset()
	root = NewRootCmd(&out, &errOut)
	root.SetArgs([]string{})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "gen") || !strings.Contains(out.String(), "normalize") {
		t.Fatalf("help should list subcommands: %s", out.String())
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestGenCommandWritesOutput(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	work := t.TempDir()
	chdir(t, work)
	if err := os.WriteFile(filepath.Join(work, "spec.txt"), []byte("WS-1000 산업용 서버\nCPU: Intel Xeon Gold 6338\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out, errOut bytes.Buffer
	root := NewRootCmd(&out, &errOut)
	root.SetArgs(normalizeArgs([]string{"--out", "result", "--format", "json", "spec.txt"}))
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "작업 완료: 성공 1, 실패 0") {
		t.Fatalf("missing final line: %s", out.String())
	}
	matches, err := filepath.Glob(filepath.Join(work, "result", "webspec_spec_*.json"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected one json output, got %v (%v)", matches, err)
	}
}

func TestGenCommandFailureReturnsError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	work := t.TempDir()
	chdir(t, work)
	if err := os.WriteFile(filepath.Join(work, "broken.pdf"), []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}
	var out, errOut bytes.Buffer
	root := NewRootCmd(&out, &errOut)
	root.SetArgs([]string{"gen", "broken.pdf"})
	err := root.Execute()
	if err == nil || !strings.Contains(err.Error(), "실패 1") {
		t.Fatalf("expected failure summary error, got %v", err)
	}
}

func TestNormalizeCommandReadsStdin(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
	var out, errOut bytes.Buffer
	root := NewRootCmd(&out, &errOut)
	root.SetIn(strings.NewReader("• 64GB 메모리,\nSleek Design\n"))
	root.SetArgs([]string{"normalize"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	if out.String() != "- 64GB 메모리\n" {
		t.Fatalf("unexpected output: %q", out.String())
	}
}
