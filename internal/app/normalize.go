package app

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"webspec/internal/config"
	"webspec/internal/extract"
)

type NormalizeOptions struct {
	Inputs     []string
	ConfigPath string
	FeatureCap int
	CWD        string
	Stdin      io.Reader
	Stdout     io.Writer
}

// Normalize reads raw feature lines from the inputs (stdin when none are
// given), runs them through the bullet normalizer and prints the result one
// per line. It returns the number of lines printed.
func Normalize(opts NormalizeOptions) (int, error) {
	cwd, err := resolveCWD(opts.CWD)
	if err != nil {
		return 0, err
	}
	cfg, _, err := config.Load(opts.ConfigPath, cwd)
	if err != nil {
		return 0, err
	}
	if opts.FeatureCap > 0 {
		cfg.Extraction.FeatureCap = opts.FeatureCap
	}
	if err := cfg.Validate(); err != nil {
		return 0, fmt.Errorf("설정 값 오류: %w", err)
	}

	var lines []string
	if len(opts.Inputs) == 0 {
		if opts.Stdin == nil {
			return 0, fmt.Errorf("입력이 없음")
		}
		lines, err = readLines(opts.Stdin)
		if err != nil {
			return 0, fmt.Errorf("표준 입력 읽기 실패: %w", err)
		}
	}
	for _, in := range opts.Inputs {
		path := absPath(cwd, in)
		f, err := os.Open(path)
		if err != nil {
			return 0, fmt.Errorf("파일 읽기 실패(%s): %w", path, err)
		}
		got, err := readLines(f)
		f.Close()
		if err != nil {
			return 0, fmt.Errorf("파일 읽기 실패(%s): %w", path, err)
		}
		lines = append(lines, got...)
	}

	out := extract.NewAssembler(cfg.ExtractConfig()).NormalizeFeatures(lines)
	w := opts.Stdout
	if w == nil {
		w = io.Discard
	}
	for _, line := range out {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return 0, err
		}
	}
	return len(out), nil
}

func readLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lines := []string{}
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, sc.Err()
}
