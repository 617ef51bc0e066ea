package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Logger writes one event per line. stdout receives NDJSON in verbose mode
// and a short Korean status line otherwise; the log file always gets NDJSON.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	file    io.Writer
	verbose bool
}

type Event struct {
	TS         string `json:"ts"`
	Level      string `json:"level"`
	Event      string `json:"event"`
	Input      string `json:"input,omitempty"`
	Kind       string `json:"kind,omitempty"`
	Name       string `json:"name,omitempty"`
	Features   int    `json:"features,omitempty"`
	Succeeded  int    `json:"succeeded,omitempty"`
	Failed     int    `json:"failed,omitempty"`
	LatencyMS  int64  `json:"latency_ms,omitempty"`
	OutputFile string `json:"output_file,omitempty"`
	Error      string `json:"error,omitempty"`
}

func New(stdout io.Writer, logFile string, verbose bool) (*Logger, io.Closer, error) {
	l := &Logger{out: stdout, verbose: verbose}
	if logFile == "" {
		return l, nil, nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	l.file = f
	return l, f, nil
}

func (l *Logger) Verbose() bool {
	return l != nil && l.verbose
}

func (l *Logger) Emit(ev Event) {
	if l == nil {
		return
	}
	if ev.TS == "" {
		ev.TS = time.Now().Format(time.RFC3339Nano)
	}
	if ev.Level == "" {
		ev.Level = "info"
	}
	b, err := json.Marshal(ev)
	if err != nil {
		return
	}
	b = append(b, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		_, _ = l.file.Write(b)
	}
	if l.out == nil {
		return
	}
	if l.verbose {
		_, _ = l.out.Write(b)
		return
	}
	if line := formatHuman(ev); line != "" {
		_, _ = io.WriteString(l.out, line+"\n")
	}
}

func formatHuman(ev Event) string {
	name := filepath.Base(ev.Input)
	switch ev.Event {
	case "startup":
		return "webspec 시작"
	case "config_loaded":
		return fmt.Sprintf("설정 불러옴: %s", ev.Input)
	case "scan_warning":
		return fmt.Sprintf("검색 경고: %s", ev.Error)
	case "load_warning":
		return fmt.Sprintf("[%s] 읽기 경고: %s", name, ev.Error)
	case "load_failed":
		return fmt.Sprintf("[%s] 읽기 실패: %s", name, ev.Error)
	case "extract_ok":
		return fmt.Sprintf("[%s] 추출 완료: %s, 특징 %d개 (%s)", name, fallback(ev.Name, "-"), ev.Features, FormatDurationMS(ev.LatencyMS))
	case "write_failed":
		return fmt.Sprintf("[%s] 저장 실패: %s", name, ev.Error)
	case "write_ok":
		return fmt.Sprintf("[%s] 저장 완료: %s", name, ev.OutputFile)
	default:
		return ""
	}
}

// FormatDurationMS renders a latency for people: ms, seconds, then minutes.
func FormatDurationMS(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	if ms < 60_000 {
		return fmt.Sprintf("%.2fs", float64(ms)/1000.0)
	}
	minutes := ms / 60_000
	remainMS := ms % 60_000
	if remainMS == 0 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dm%.1fs", minutes, float64(remainMS)/1000.0)
}

func fallback(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
