package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"webspec/internal/config"
	"webspec/internal/discovery"
	"webspec/internal/extract"
	"webspec/internal/logging"
	"webspec/internal/output"
	"webspec/internal/source"
)

type Options struct {
	Inputs      []string
	ConfigPath  string
	OutputDir   string
	Format      string
	DescMax     int
	SummaryMax  int
	FeatureCap  int
	Concurrency int
	LogFile     string
	Verbose     bool
	CWD         string
	Stdout      io.Writer
	Context     context.Context
	RandSource  io.Reader
}

type Result struct {
	Succeeded int
	Failed    int
	Outputs   []string
	ElapsedMS int64
}

func Run(opts Options) (Result, error) {
	started := time.Now()
	cwd, err := resolveCWD(opts.CWD)
	if err != nil {
		return Result{}, err
	}

	cfg, paths, err := config.Load(opts.ConfigPath, cwd)
	if err != nil {
		return Result{}, err
	}
	overrideConfig(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return Result{}, fmt.Errorf("설정 값 오류: %w", err)
	}

	logger, closer, err := logging.New(opts.Stdout, opts.LogFile, opts.Verbose)
	if err != nil {
		return Result{}, fmt.Errorf("로그 초기화 실패: %w", err)
	}
	if closer != nil {
		defer closer.Close()
	}
	logger.Emit(logging.Event{Event: "startup"})
	logger.Emit(logging.Event{Event: "config_loaded", Input: paths.ConfigSource})

	inputPaths := make([]string, 0, len(opts.Inputs))
	for _, in := range opts.Inputs {
		inputPaths = append(inputPaths, absPath(cwd, in))
	}
	discoverRes, err := discovery.Discover(inputPaths)
	if err != nil {
		return Result{}, err
	}
	for _, w := range discoverRes.Warnings {
		logger.Emit(logging.Event{Level: "warn", Event: "scan_warning", Error: w})
	}

	outDir := cfg.Output.Dir
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(cwd, outDir)
	}
	if err := output.EnsureDir(outDir); err != nil {
		return Result{}, fmt.Errorf("출력 디렉터리 생성 실패: %w", err)
	}

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := &processor{
		assembler: extract.NewAssembler(cfg.ExtractConfig()),
		outDir:    outDir,
		format:    cfg.Output.Format,
		logger:    logger,
		randSrc:   opts.RandSource,
	}

	result := Result{}
	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workerCount(cfg.Concurrency, len(discoverRes.Files)))
	for _, file := range discoverRes.Files {
		file := file
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			outPath, ok := p.process(file)
			mu.Lock()
			defer mu.Unlock()
			if ok {
				result.Succeeded++
				result.Outputs = append(result.Outputs, outPath)
			} else {
				result.Failed++
			}
			return nil
		})
	}
	waitErr := g.Wait()

	result.ElapsedMS = time.Since(started).Milliseconds()
	logger.Emit(logging.Event{Event: "finished", Succeeded: result.Succeeded, Failed: result.Failed, LatencyMS: result.ElapsedMS})
	if waitErr != nil {
		return result, fmt.Errorf("작업 중단: %w", waitErr)
	}
	return result, nil
}

type processor struct {
	assembler *extract.Assembler
	outDir    string
	format    string
	logger    *logging.Logger
	randSrc   io.Reader
	nameMu    sync.Mutex
}

// process handles one file end to end. Failures are logged and reported as
// false; they never stop the batch.
func (p *processor) process(file string) (string, bool) {
	started := time.Now()
	doc, err := source.Load(file)
	if err != nil {
		p.logger.Emit(logging.Event{Level: "error", Event: "load_failed", Input: file, Error: err.Error()})
		return "", false
	}
	for _, w := range doc.Warnings {
		p.logger.Emit(logging.Event{Level: "warn", Event: "load_warning", Input: file, Kind: doc.Kind, Error: w})
	}

	res, err := p.assembler.Build(&doc.Raw)
	if err != nil {
		p.logger.Emit(logging.Event{Level: "error", Event: "load_failed", Input: file, Error: err.Error()})
		return "", false
	}
	p.logger.Emit(logging.Event{
		Event:     "extract_ok",
		Input:     file,
		Kind:      doc.Kind,
		Name:      res.Name,
		Features:  len(res.Features),
		LatencyMS: time.Since(started).Milliseconds(),
	})

	body, ext, err := render(p.format, res)
	if err != nil {
		p.logger.Emit(logging.Event{Level: "error", Event: "write_failed", Input: file, Error: err.Error()})
		return "", false
	}
	outPath, err := p.writeNew(file, ext, body)
	if err != nil {
		p.logger.Emit(logging.Event{Level: "error", Event: "write_failed", Input: file, OutputFile: outPath, Error: err.Error()})
		return "", false
	}
	p.logger.Emit(logging.Event{Event: "write_ok", Input: file, OutputFile: outPath})
	return outPath, true
}

// writeNew picks a free name and writes body to it. Naming and creation are
// serialized so two workers never claim the same path.
func (p *processor) writeNew(file, ext string, body []byte) (string, error) {
	p.nameMu.Lock()
	defer p.nameMu.Unlock()
	_, outPath, err := output.Next(p.outDir, file, ext, 8, p.randSrc)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(outPath, body, 0o644); err != nil {
		return outPath, fmt.Errorf("파일 쓰기 실패(%s): %w", outPath, err)
	}
	return outPath, nil
}

func overrideConfig(cfg *config.Config, opts Options) {
	if strings.TrimSpace(opts.OutputDir) != "" {
		cfg.Output.Dir = opts.OutputDir
	}
	if strings.TrimSpace(opts.Format) != "" {
		cfg.Output.Format = strings.ToLower(strings.TrimSpace(opts.Format))
	}
	if opts.DescMax > 0 {
		cfg.Extraction.DescMax = opts.DescMax
	}
	if opts.SummaryMax > 0 {
		cfg.Extraction.SummaryMax = opts.SummaryMax
	}
	if opts.FeatureCap > 0 {
		cfg.Extraction.FeatureCap = opts.FeatureCap
	}
	if opts.Concurrency > 0 {
		cfg.Concurrency = opts.Concurrency
	}
}

func workerCount(configured, files int) int {
	n := configured
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if files > 0 && n > files {
		n = files
	}
	if n < 1 {
		n = 1
	}
	return n
}

func resolveCWD(cwd string) (string, error) {
	cwd = strings.TrimSpace(cwd)
	if cwd != "" {
		return cwd, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("현재 디렉터리 확인 실패: %w", err)
	}
	return wd, nil
}

func absPath(cwd, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(cwd, p)
}
