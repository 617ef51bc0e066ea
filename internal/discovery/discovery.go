package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"webspec/internal/output"
	"webspec/internal/source"
)

type Result struct {
	Files    []string
	Warnings []string
}

func Discover(inputs []string) (Result, error) {
	if len(inputs) == 0 {
		return Result{}, fmt.Errorf("입력 경로가 없음")
	}
	set := map[string]struct{}{}
	warnings := []string{}

	for _, in := range inputs {
		if strings.TrimSpace(in) == "" {
			continue
		}
		st, err := os.Stat(in)
		if err != nil {
			return Result{}, fmt.Errorf("잘못된 입력 경로(%s): %w", in, err)
		}
		if st.IsDir() {
			files, warns, err := scanDir(in)
			if err != nil {
				return Result{}, err
			}
			warnings = append(warnings, warns...)
			for _, p := range files {
				set[p] = struct{}{}
			}
			continue
		}
		if !source.Supported(in) {
			return Result{}, fmt.Errorf("지원하지 않는 파일 형식(.pdf, .txt, .md 만 가능): %s", in)
		}
		set[in] = struct{}{}
	}

	files := make([]string, 0, len(set))
	for p := range set {
		files = append(files, p)
	}
	sort.Strings(files)
	if len(files) == 0 {
		return Result{}, fmt.Errorf("처리할 수 있는 문서를 찾지 못함")
	}
	return Result{Files: files, Warnings: warnings}, nil
}

func scanDir(root string) ([]string, []string, error) {
	out := []string{}
	warnings := []string{}

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if strings.HasPrefix(name, ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if !source.Supported(path) || output.IsGenerated(path) {
			return nil
		}
		info, infoErr := d.Info()
		if infoErr != nil {
			warnings = append(warnings, fmt.Sprintf("파일 정보 확인 실패로 건너뜀: %s", path))
			return nil
		}
		if info.Size() == 0 {
			warnings = append(warnings, fmt.Sprintf("빈 파일 건너뜀: %s", path))
			return nil
		}
		out = append(out, path)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("디렉터리 검색 실패(%s): %w", root, err)
	}
	return out, warnings, nil
}
