package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"webspec/internal/app"
	"webspec/internal/logging"
)

type genFlags struct {
	configArg      string
	outputDirArg   string
	formatArg      string
	descMaxArg     int
	summaryMaxArg  int
	featuresArg    int
	concurrencyArg int
	logFileArg     string
	verboseArg     bool
}

// valueFlags take a separate argument; normalizeArgs must not mistake that
// argument for an input path.
var valueFlags = []string{"--config", "--out", "-o", "--format", "--desc-max", "--summary-max", "--features", "--concurrency", "--log-file"}

func Execute() error {
	root := NewRootCmd(os.Stdout, os.Stderr)
	root.SetArgs(normalizeArgs(os.Args[1:]))
	return root.Execute()
}

func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := &genFlags{}
	showVersion := false

	root := &cobra.Command{
		Use:           "webspec [file_or_dir ...]",
		Short:         "제품 사양서(PDF/텍스트)에서 제품명, 설명, 요약, 특징을 추출",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGen(stdout, flags, &showVersion),
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.CompletionOptions.HiddenDefaultCmd = true
	bindGenFlags(root, flags)
	root.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "버전 정보 표시")

	genCmd := &cobra.Command{
		Use:           "gen [file_or_dir ...]",
		Short:         "문서마다 Markdown(또는 JSON) 결과 파일 생성",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGen(stdout, flags, &showVersion),
	}
	root.AddCommand(genCmd)

	normalizeCmd := &cobra.Command{
		Use:           "normalize [file ...]",
		Short:         "특징 목록을 정리해서 출력(파일이 없으면 표준 입력)",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("현재 디렉터리 확인 실패: %w", err)
			}
			_, err = app.Normalize(app.NormalizeOptions{
				Inputs:     args,
				ConfigPath: flags.configArg,
				FeatureCap: flags.featuresArg,
				CWD:        cwd,
				Stdin:      cmd.InOrStdin(),
				Stdout:     stdout,
			})
			return err
		},
	}
	root.AddCommand(normalizeCmd)

	versionCmd := &cobra.Command{
		Use:           "version",
		Short:         "버전 정보 표시",
		SilenceUsage:  true,
		SilenceErrors: true,
		Run: func(cmd *cobra.Command, args []string) {
			printVersion(stdout)
		},
	}
	root.AddCommand(versionCmd)
	return root
}

func bindGenFlags(cmd *cobra.Command, flags *genFlags) {
	cmd.PersistentFlags().StringVar(&flags.configArg, "config", "", "설정 파일 경로, 기본값 ~/.webspec/config.yaml")
	cmd.PersistentFlags().StringVarP(&flags.outputDirArg, "out", "o", "", "출력 디렉터리, 기본값 현재 디렉터리")
	cmd.PersistentFlags().StringVar(&flags.formatArg, "format", "", "출력 형식(markdown|json)")
	cmd.PersistentFlags().IntVar(&flags.descMaxArg, "desc-max", 0, "제품 설명 최대 글자 수(10~200)")
	cmd.PersistentFlags().IntVar(&flags.summaryMaxArg, "summary-max", 0, "제품 요약 최대 글자 수(50~600)")
	cmd.PersistentFlags().IntVar(&flags.featuresArg, "features", 0, "특징 최대 개수")
	cmd.PersistentFlags().IntVar(&flags.concurrencyArg, "concurrency", 0, "동시 처리 문서 수, 기본값 CPU 수")
	cmd.PersistentFlags().StringVar(&flags.logFileArg, "log-file", "", "NDJSON 로그 파일 경로")
	cmd.PersistentFlags().BoolVar(&flags.verboseArg, "verbose", false, "상세 NDJSON 출력(기계 처리용)")
}

func runGen(stdout io.Writer, flags *genFlags, showVersion *bool) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if showVersion != nil && *showVersion {
			printVersion(stdout)
			return nil
		}

		if len(args) == 0 {
			_ = cmd.Help()
			return nil
		}

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("현재 디렉터리 확인 실패: %w", err)
		}

		res, err := app.Run(app.Options{
			Inputs:      args,
			ConfigPath:  flags.configArg,
			OutputDir:   flags.outputDirArg,
			Format:      flags.formatArg,
			DescMax:     flags.descMaxArg,
			SummaryMax:  flags.summaryMaxArg,
			FeatureCap:  flags.featuresArg,
			Concurrency: flags.concurrencyArg,
			LogFile:     flags.logFileArg,
			Verbose:     flags.verboseArg,
			CWD:         cwd,
			Stdout:      stdout,
			Context:     cmd.Context(),
		})
		if err != nil {
			return err
		}

		finalLine := fmt.Sprintf(
			"작업 완료: 성공 %d, 실패 %d, 총 소요 시간 %s",
			res.Succeeded,
			res.Failed,
			logging.FormatDurationMS(res.ElapsedMS),
		)
		if res.Failed > 0 {
			return fmt.Errorf("%s", finalLine)
		}
		if !flags.verboseArg {
			fmt.Fprintln(stdout, finalLine)
		}
		return nil
	}
}

func normalizeArgs(args []string) []string {
	if len(args) == 0 {
		return args
	}
	first := args[0]
	switch first {
	case "gen", "normalize", "help", "completion", "version":
		return args
	}
	if first == "-h" || first == "--help" || first == "-v" || first == "--version" {
		return args
	}
	if !containsPositionalSource(args) {
		return args
	}
	return append([]string{"gen"}, args...)
}

func containsPositionalSource(args []string) bool {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return i+1 < len(args)
		}
		if isValueFlag(arg) {
			i++
			continue
		}
		if strings.HasPrefix(arg, "-") {
			continue
		}
		return true
	}
	return false
}

func isValueFlag(arg string) bool {
	for _, f := range valueFlags {
		if arg == f {
			return true
		}
	}
	return false
}
