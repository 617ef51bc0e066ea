package output

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	prefix   = "webspec_"
)

func EnsureDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("출력 디렉터리가 비어 있음")
	}
	return os.MkdirAll(dir, 0o755)
}

// Next returns a path "webspec_<stem>_<id><ext>" inside dir that does not
// exist yet. stem is derived from the source file name.
func Next(dir, sourcePath, ext string, randomLen int, randSrc io.Reader) (id string, outPath string, err error) {
	if randomLen <= 0 {
		randomLen = 8
	}
	if randSrc == nil {
		randSrc = rand.Reader
	}
	stem := Stem(sourcePath)
	for i := 0; i < 1000; i++ {
		id, err = randomID(randomLen, randSrc)
		if err != nil {
			return "", "", err
		}
		outPath = filepath.Join(dir, fmt.Sprintf("%s%s_%s%s", prefix, stem, id, ext))
		if !exists(outPath) {
			return id, outPath, nil
		}
	}
	return "", "", fmt.Errorf("여러 번 시도했지만 겹치지 않는 파일명을 만들지 못함")
}

// IsGenerated reports whether path looks like a file this tool wrote.
func IsGenerated(path string) bool {
	return strings.HasPrefix(filepath.Base(path), prefix)
}

func Stem(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	stem = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, strings.TrimSpace(stem))
	if stem == "" || stem == "." {
		return "doc"
	}
	return stem
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func randomID(n int, randSrc io.Reader) (string, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(randSrc, buf); err != nil {
		return "", fmt.Errorf("난수 읽기 실패: %w", err)
	}
	out := make([]byte, n)
	for i, b := range buf {
		out[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(out), nil
}
