package cmd

import (
	"fmt"
	"io"
)

// Set at build time with -ldflags "-X webspec/cmd.Version=...".
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

func versionText() string {
	return fmt.Sprintf("webspec 버전 %s (commit %s, 빌드 %s)", Version, Commit, BuildTime)
}

func printVersion(w io.Writer) {
	fmt.Fprintln(w, versionText())
}
