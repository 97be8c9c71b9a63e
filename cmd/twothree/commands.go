package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/KilimcininKorOglu/twothree/internal/config"
	"github.com/KilimcininKorOglu/twothree/internal/logging"
	"github.com/KilimcininKorOglu/twothree/internal/tree23"
	"github.com/urfave/cli/v2"
)

// cliEnv carries the resolved configuration and output streams shared by
// every command.
type cliEnv struct {
	stdout io.Writer
	stderr io.Writer
	config *config.Config
	logger logging.Logger
}

// setup resolves the configuration in order of precedence: defaults, the
// YAML file, TWOTHREE_* environment variables and finally global flags.
func (e *cliEnv) setup(cctx *cli.Context) error {
	cfg := config.DefaultConfig()
	if path := cctx.String("config"); path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if err := config.ApplyEnv(cfg, os.LookupEnv); err != nil {
		return err
	}

	if cctx.IsSet("log-level") {
		cfg.Logging.Level = cctx.String("log-level")
	}
	if cctx.IsSet("log-format") {
		cfg.Logging.Format = cctx.String("log-format")
	}
	if cctx.IsSet("render") {
		cfg.Output.Render = cctx.String("render")
	}

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration:\n%w", err)
	}

	e.config = cfg
	e.logger = e.newLogger(cfg.Logging)
	return nil
}

func (e *cliEnv) newLogger(cfg config.LogConfig) logging.Logger {
	level := logging.ParseLevel(cfg.Level)
	format := logging.ParseFormat(cfg.Format)

	switch cfg.Output {
	case "", "stderr":
		return logging.NewWithWriter(e.stderr, level, format)
	case "stdout":
		return logging.NewWithWriter(e.stdout, level, format)
	default:
		return logging.New(logging.Config{
			Level:  cfg.Level,
			Format: cfg.Format,
			Output: cfg.Output,
		})
	}
}

// build inserts every key with itself as the value and checks the result.
func (e *cliEnv) build(name string, keys []int) (*tree23.Tree[int, int], error) {
	tree := tree23.New[int, int]()
	tree.SetLogger(e.logger.WithFields("tree", name))
	for _, k := range keys {
		tree.Insert(k, k)
	}
	if err := tree.Validate(); err != nil {
		return nil, err
	}
	e.logger.Info("tree built", "tree", name, "keys", len(keys), "height", tree.Height())
	return tree, nil
}

// runDemo builds the sequential and the hand-picked fixture and prints
// every query for both.
func (e *cliEnv) runDemo(_ *cli.Context) error {
	sequential := make([]int, e.config.Demo.Sequential)
	for i := range sequential {
		sequential[i] = i
	}

	fixtures := []struct {
		name string
		keys []int
	}{
		{"sequential", sequential},
		{"keys", e.config.Demo.Keys},
	}

	for i, f := range fixtures {
		if i > 0 {
			fmt.Fprintln(e.stdout)
		}
		fmt.Fprintf(e.stdout, "== %s (%d keys) ==\n", f.name, len(f.keys))

		tree, err := e.build(f.name, f.keys)
		if err != nil {
			return err
		}
		if err := e.report(tree); err != nil {
			return err
		}

		// every inserted key, plus one past the largest
		if last, ok := tree.Max(); ok {
			for _, entry := range tree.InOrder() {
				e.neighbours(tree, entry.Key)
			}
			e.neighbours(tree, last.Key+1)
		}
	}
	return nil
}

// runBuild inserts the keys given as arguments.
func (e *cliEnv) runBuild(cctx *cli.Context) error {
	keys, err := argKeys(cctx)
	if err != nil {
		return err
	}
	tree, err := e.build("args", keys)
	if err != nil {
		return err
	}
	return e.report(tree)
}

// runQuery inserts the keys given as arguments and looks up --key.
func (e *cliEnv) runQuery(cctx *cli.Context) error {
	keys, err := argKeys(cctx)
	if err != nil {
		return err
	}
	tree, err := e.build("args", keys)
	if err != nil {
		return err
	}

	key := cctx.Int("key")
	if n := tree.Find(key); n != nil {
		fmt.Fprintf(e.stdout, "find(%d) = %s\n", key, n)
	} else {
		fmt.Fprintf(e.stdout, "find(%d) = none\n", key)
	}
	e.neighbours(tree, key)
	return nil
}

func argKeys(cctx *cli.Context) ([]int, error) {
	if cctx.NArg() == 0 {
		return nil, errors.New("no keys given")
	}
	return config.ParseKeys(cctx.Args().Slice())
}

// report prints the structure, the configured traversals and the extremes.
func (e *cliEnv) report(tree *tree23.Tree[int, int]) error {
	out := e.config.Output

	switch out.Render {
	case config.RenderLevels:
		if err := tree.Print(e.stdout); err != nil {
			return err
		}
	case config.RenderTree:
		fmt.Fprint(e.stdout, tree.Render())
	}

	fmt.Fprintf(e.stdout, "len: %d, height: %d\n", tree.Len(), tree.Height())
	for _, order := range out.Orders {
		var entries []tree23.Entry[int, int]
		switch order {
		case config.OrderPre:
			entries = tree.PreOrder()
		case config.OrderIn:
			entries = tree.InOrder()
		case config.OrderPost:
			entries = tree.PostOrder()
		}
		fmt.Fprintf(e.stdout, "%s-order: %s\n", order, joinKeys(entries))
	}

	fmt.Fprintf(e.stdout, "min: %s\n", describe(tree.Min()))
	fmt.Fprintf(e.stdout, "max: %s\n", describe(tree.Max()))
	return nil
}

func (e *cliEnv) neighbours(tree *tree23.Tree[int, int], key int) {
	fmt.Fprintf(e.stdout, "precursor(%d) = %s\n", key, describe(tree.Precursor(key)))
	fmt.Fprintf(e.stdout, "successor(%d) = %s\n", key, describe(tree.Successor(key)))
}

func describe(entry tree23.Entry[int, int], ok bool) string {
	if !ok {
		return "none"
	}
	return entry.String()
}

func joinKeys(entries []tree23.Entry[int, int]) string {
	parts := make([]string, len(entries))
	for i, entry := range entries {
		parts[i] = fmt.Sprint(entry.Key)
	}
	return strings.Join(parts, " ")
}
