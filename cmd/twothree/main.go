// Package main provides the entry point for the twothree CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	exitCode := run(os.Args, os.Stdout, os.Stderr)
	os.Exit(exitCode)
}

// run executes the CLI and returns an exit code.
// This is separated from main() to facilitate testing.
func run(args []string, stdout, stderr io.Writer) int {
	app := newApp(stdout, stderr)
	if err := app.Run(args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newApp(stdout, stderr io.Writer) *cli.App {
	env := &cliEnv{stdout: stdout, stderr: stderr}

	return &cli.App{
		Name:      "twothree",
		Usage:     "build and inspect 2-3 trees of integer keys",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a YAML configuration file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "log format (text, json)",
			},
			&cli.StringFlag{
				Name:  "render",
				Usage: "structure renderer (levels, tree, none)",
			},
		},
		Before: env.setup,
		Action: func(cctx *cli.Context) error {
			if cctx.NArg() > 0 {
				return fmt.Errorf("unknown command %q, run 'twothree help' for usage", cctx.Args().First())
			}
			return cli.ShowAppHelp(cctx)
		},
		Commands: []*cli.Command{
			{
				Name:   "demo",
				Usage:  "build the configured fixtures and print every query",
				Action: env.runDemo,
			},
			{
				Name:      "build",
				Usage:     "insert the given keys and print the resulting tree",
				ArgsUsage: "KEY...",
				Action:    env.runBuild,
			},
			{
				Name:      "query",
				Usage:     "insert the given keys and look up one key",
				ArgsUsage: "KEY...",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "key",
						Aliases:  []string{"k"},
						Usage:    "key to look up",
						Required: true,
					},
				},
				Action: env.runQuery,
			},
			{
				Name:  "version",
				Usage: "print version information",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "short",
						Usage: "show only the version number",
					},
				},
				Action: env.runVersion,
			},
		},
		// keep exit handling in run so tests never hit os.Exit
		ExitErrHandler: func(*cli.Context, error) {},
	}
}
