package main

import (
	"fmt"
	"runtime"

	"github.com/urfave/cli/v2"
)

// Version information - these can be set at build time using ldflags.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version   = "0.1.0"
	commit    = "unknown"
	buildDate = "unknown"
)

// runVersion handles the version command.
func (e *cliEnv) runVersion(cctx *cli.Context) error {
	if cctx.Bool("short") {
		fmt.Fprintln(e.stdout, version)
		return nil
	}

	fmt.Fprintf(e.stdout, "twothree version %s\n", version)
	fmt.Fprintf(e.stdout, "  Commit:     %s\n", commit)
	fmt.Fprintf(e.stdout, "  Built:      %s\n", buildDate)
	fmt.Fprintf(e.stdout, "  Go version: %s\n", runtime.Version())
	fmt.Fprintf(e.stdout, "  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	return nil
}
