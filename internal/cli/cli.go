// Package cli implements the cmplogview command-line interface.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cmplogview/pkg/buildinfo"
	"github.com/matzehuels/cmplogview/pkg/cmplog"
	"github.com/matzehuels/cmplogview/pkg/config"
	apperr "github.com/matzehuels/cmplogview/pkg/errors"
	"github.com/matzehuels/cmplogview/pkg/report"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = config.AppName

	// pathArg is the placeholder for the input file in usage lines.
	pathArg = "<path-to-json>"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives reports. Logs never go here.
	Out io.Writer

	// Program is the name printed in usage lines, normally os.Args[0].
	Program string

	cfg        config.Config
	configPath string
	escape     bool
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	program := appName
	if len(os.Args) > 0 {
		program = os.Args[0]
	}
	return &CLI{
		Logger:  newLogger(w, level),
		Out:     os.Stdout,
		Program: program,
		cfg:     config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The root command itself prints the operand report.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName + " " + pathArg,
		Short: "Show printable ASCII hidden in CmpLog comparison operands",
		Long: `cmplogview reads a CmpLog trace stored as JSON and prints, for every
comparison site, the operands whose little-endian bytes contain printable
ASCII. Magic values a target compares its input against show up as text.`,
		Version:       buildinfo.Version,
		Args:          c.requirePath(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runReport(cmd, args[0])
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Out)

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/cmplogview/config.toml)")
	root.PersistentFlags().BoolVar(&c.escape, "escape", false, `show non-printable bytes as \xNN instead of dropping them`)

	// Register all subcommands
	root.AddCommand(c.hexCommand())
	root.AddCommand(c.summaryCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Shared Helpers
// =============================================================================

// requirePath returns an Args validator that reports a USAGE error when the
// input path is missing. words are the subcommand names between the program
// and the path in the usage line. Extra arguments are ignored.
func (c *CLI) requirePath(words ...string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return apperr.Usage(c.Program, append(words, pathArg)...)
		}
		return nil
	}
}

// loadConfig reads the config file and applies its log level.
func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg
	if level, err := log.ParseLevel(strings.ToLower(cfg.Log.Level)); err == nil {
		c.SetLogLevel(level)
	}
	return nil
}

// reportOptions merges config values with flags set on cmd.
func (c *CLI) reportOptions(cmd *cobra.Command) report.Options {
	opts := report.Options{Escape: c.cfg.Report.Escape}
	if f := cmd.Flag("escape"); f != nil && f.Changed {
		opts.Escape = c.escape
	}
	return opts
}

// load validates path and imports the document, logging how long it took.
func (c *CLI) load(ctx context.Context, path string) (*cmplog.Document, error) {
	if err := apperr.ValidateInputPath(path); err != nil {
		return nil, err
	}
	logger := loggerFromContext(ctx)
	logger.Debug("Loading", "path", path)

	prog := newProgress(logger)
	doc, err := cmplog.ImportJSON(path)
	if err != nil {
		return nil, err
	}
	comps, entries := doc.Stats()
	prog.done(fmt.Sprintf("Loaded %d components, %d entries", comps, entries))
	return doc, nil
}

// write runs fn against a buffered c.Out and flushes it.
func (c *CLI) write(fn func(w io.Writer) error) error {
	bw := bufio.NewWriter(c.Out)
	if err := fn(bw); err != nil {
		return apperr.Wrap(apperr.ErrCodeOutput, err, "write output")
	}
	if err := bw.Flush(); err != nil {
		return apperr.Wrap(apperr.ErrCodeOutput, err, "write output")
	}
	return nil
}
