package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/adapap/dedupset"
	"github.com/adapap/dedupset/set"
)

// Global carries state shared by every subcommand.
type Global struct {
	Out    io.Writer
	Config *Config
}

// CLI is the command line of dedupset.
type CLI struct {
	Config   string `short:"c" help:"YAML file with default words and options" type:"path" env:"DEDUPSET_CONFIG"`
	Verbose  bool   `short:"v" help:"Enable verbose logging"`
	FoldCase bool   `short:"f" help:"Treat words that differ only in case as duplicates" env:"DEDUPSET_FOLD_CASE"`

	Show ShowCmd `cmd:"" help:"Print the deduplicated words"`
	Save SaveCmd `cmd:"" help:"Write the deduplicated words to a file"`
}

// AfterApply runs after flag parsing; setup logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// ShowCmd prints the set built from the configured and given words.
type ShowCmd struct {
	Trace bool     `short:"t" help:"Print length and capacity after every word"`
	Words []string `arg:"" optional:"" help:"Words to add after the configured ones"`
}

func (s *ShowCmd) Run(cli *CLI, g *Global) error {
	words := buildSet(cli, g.Config, s.Words, func(word string, ws *set.Set[string]) {
		if s.Trace {
			fmt.Fprintf(g.Out, "%s: len %d cap %d\n", word, ws.Len(), ws.Cap())
		}
	})
	_, err := fmt.Fprintln(g.Out, words)
	return err
}

// SaveCmd writes the set to a file.
type SaveCmd struct {
	Output string   `short:"o" help:"Destination file (default from config, then set.txt)" type:"path" env:"DEDUPSET_OUTPUT"`
	Words  []string `arg:"" optional:"" help:"Words to add after the configured ones"`
}

func (s *SaveCmd) Run(cli *CLI, g *Global) error {
	path := s.Output
	if path == "" {
		path = g.Config.Output
	}
	words := buildSet(cli, g.Config, s.Words, nil)
	if err := set.SaveStrings(words, path); err != nil {
		return err
	}
	slog.Info("Saved set", "path", path, "size", words.Len())
	return nil
}

// buildSet adds the configured words followed by args, calling after (when
// non-nil) once per word.
func buildSet(cli *CLI, cfg *Config, args []string, after func(string, *set.Set[string])) *set.Set[string] {
	eq := dedupset.Text()
	if cli.FoldCase || cfg.FoldCase {
		eq = dedupset.FoldedText()
	}

	words := set.New(eq)
	for _, w := range append(append([]string{}, cfg.Words...), args...) {
		if !words.Add(w) {
			slog.Debug("Dropped duplicate", "word", w)
		}
		if after != nil {
			after(w, words)
		}
	}
	return words
}

func newParser(cli *CLI) (*kong.Kong, error) {
	return kong.New(cli,
		kong.Name("dedupset"),
		kong.Description("Deduplicate words while keeping their insertion order."),
		kong.UsageOnError(),
	)
}

func run(args []string, out io.Writer) error {
	var cli CLI
	parser, err := newParser(&cli)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cli.Config)
	if err != nil {
		return err
	}
	return ctx.Run(&cli, &Global{Out: out, Config: cfg})
}

func main() {
	if err := loadEnv(".env", ".env.local"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := run(os.Args[1:], os.Stdout); err != nil {
		slog.Error("dedupset failed", "error", err)
		os.Exit(1)
	}
}
