package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/strager/rgg/analyzer"
	"github.com/strager/rgg/lexer"
	"github.com/strager/rgg/token"
)

type cli struct {
	cfgFile string
	verbose bool
	noColor bool

	cfg *Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "rgg",
		Short: "Syntax and semantic checker for rgg programs",
		Long: `rgg checks programs written in a small imperative language.

A program is a single begin ... end block of assignments, if, while,
do/until, for and call statements over Number and String variables.
Analysis stops at the first syntax or type error.

Use "-" as the file name to read the program from stdin.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.PersistentFlags().StringVar(&c.cfgFile, "config", "", "config file (default: $RGG_CONFIG, ./rgg.toml or ./rgg.yaml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log analysis details to stderr")
	root.PersistentFlags().BoolVar(&c.noColor, "no-color", false, "disable styled output")

	root.AddCommand(
		&cobra.Command{
			Use:   "check <file>",
			Short: "Analyze a program and report the first error",
			Args:  cobra.ExactArgs(1),
			RunE:  c.runCheck,
		},
		&cobra.Command{
			Use:   "events <file>",
			Short: "Print the analyzer's event stream",
			Args:  cobra.ExactArgs(1),
			RunE:  c.runEvents,
		},
		&cobra.Command{
			Use:   "tree <file>",
			Short: "Print the construct tree as an S-expression",
			Args:  cobra.ExactArgs(1),
			RunE:  c.runTree,
		},
		&cobra.Command{
			Use:   "tokens <file>",
			Short: "Print the tokens of a program with their line numbers",
			Args:  cobra.ExactArgs(1),
			RunE:  c.runTokens,
		},
		&cobra.Command{
			Use:     "eval <code>",
			Short:   "Analyze inline code and print its event stream",
			Example: `  rgg eval 'begin x := 1; y := x * 2 end'`,
			Args:    cobra.ExactArgs(1),
			RunE:    c.runEval,
		},
	)

	return root
}

func (c *cli) setup(cmd *cobra.Command, args []string) error {
	cfg, err := FindConfig(c.cfgFile)
	if err != nil {
		return err
	}
	if c.noColor {
		cfg.NoColor = true
	}

	level := cfg.Level()
	if c.verbose {
		level = slog.LevelDebug
	}

	c.cfg = cfg
	c.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return nil
}

// readSource returns the program named by arg and the name diagnostics
// should use for it.
func readSource(cmd *cobra.Command, arg string) (string, []byte, error) {
	if arg == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return "<stdin>", data, nil
	}
	data, err := os.ReadFile(arg)
	if err != nil {
		return "", nil, fmt.Errorf("failed to read %s: %w", arg, err)
	}
	return arg, data, nil
}

// analyze runs one analysis of data. The returned analyzer exposes the
// symbol table left behind.
func (c *cli) analyze(name string, data []byte, sink analyzer.Sink) (*analyzer.Analyzer, error) {
	c.log.Debug("analyzing", "source", name, "bytes", len(data))

	a := analyzer.New(name, lexer.New(data), sink)
	err := a.Analyze()

	var diag *analyzer.Diagnostic
	if errors.As(err, &diag) {
		c.log.Debug("analysis failed", "source", name, "kind", diag.Kind.String(), "line", diag.Line)
	} else {
		c.log.Debug("analysis finished", "source", name, "symbols", a.Symbols().Len())
	}
	return a, err
}

func (c *cli) printDiagnostic(cmd *cobra.Command, err error) {
	s := newStyles(!c.cfg.NoColor)
	fmt.Fprintln(cmd.ErrOrStderr(), s.render(s.err, err.Error()))
}

func (c *cli) runCheck(cmd *cobra.Command, args []string) error {
	name, data, err := readSource(cmd, args[0])
	if err != nil {
		return err
	}

	a, err := c.analyze(name, data, nil)
	if err != nil {
		c.printDiagnostic(cmd, err)
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: no errors found\n", name)
	if c.verbose {
		s := newStyles(!c.cfg.NoColor)
		for _, v := range a.Symbols().Variables() {
			fmt.Fprintf(out, "  %s\n", s.render(s.decl, v.String()))
		}
	}
	return nil
}

func (c *cli) runEvents(cmd *cobra.Command, args []string) error {
	name, data, err := readSource(cmd, args[0])
	if err != nil {
		return err
	}
	return c.printEvents(cmd, name, data)
}

func (c *cli) runEval(cmd *cobra.Command, args []string) error {
	return c.printEvents(cmd, "<eval>", []byte(args[0]))
}

func (c *cli) printEvents(cmd *cobra.Command, name string, data []byte) error {
	p := NewPrinter(cmd.OutOrStdout(), c.cfg)
	_, err := c.analyze(name, data, p)
	if p.Err() != nil {
		return fmt.Errorf("failed to write events: %w", p.Err())
	}
	return err
}

func (c *cli) runTree(cmd *cobra.Command, args []string) error {
	name, data, err := readSource(cmd, args[0])
	if err != nil {
		return err
	}

	rec := &analyzer.Recorder{}
	_, err = c.analyze(name, data, rec)

	out := cmd.OutOrStdout()
	if tree := BuildTree(rec.Events); tree != nil {
		fmt.Fprintln(out, tree.Indent(c.cfg.Indent))
	}
	fmt.Fprintln(out, DeclsTree("decls", rec.Declarations()).Indent(c.cfg.Indent))
	if err != nil {
		c.printDiagnostic(cmd, err)
	}
	return err
}

func (c *cli) runTokens(cmd *cobra.Command, args []string) error {
	_, data, err := readSource(cmd, args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, tok := range token.Collect(lexer.New(data)) {
		fmt.Fprintf(out, "%d\t%s\n", tok.Line, tok)
	}
	return nil
}
