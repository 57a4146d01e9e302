package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corey/wordmatch/internal/app"
	"github.com/corey/wordmatch/internal/config"
	"github.com/corey/wordmatch/internal/logging"
)

var (
	flagConfig    string
	flagLogLevel  string
	flagLogFormat string
	flagColor     string
	flagNoColor   bool

	flagIgnoreCase     bool
	flagOutput         bool
	flagOutputDir      string
	flagDetectEncoding bool
	flagPrint          bool
)

var rootCmd = &cobra.Command{
	Use:   "wordmatch <input_file> <vocab_file>",
	Short: "Find vocabulary words in a text file",
	Long: "Loads a vocabulary (one word per line) and reports which of its words appear\n" +
		"as whole lines of the input file, and on which lines.",
	Args:          cobra.ExactArgs(2),
	RunE:          runMatch,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "config file (default ~/.config/wordmatch/config.toml or ./wordmatch.toml)")
	pf.StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&flagLogFormat, "log-format", "", "log format: console or json")
	pf.StringVar(&flagColor, "color", "auto", "colorize output: auto, always, never")
	pf.BoolVar(&flagNoColor, "no-color", false, "disable color output")

	addMatchFlags(rootCmd)

	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configCmd)
}

// addMatchFlags registers the flags shared by every command that runs a match.
func addMatchFlags(c *cobra.Command) {
	f := c.Flags()
	f.BoolVarP(&flagIgnoreCase, "ignorecase", "i", false, "ignore case when matching words")
	f.BoolVarP(&flagOutput, "output", "o", false, "write the match result to output-<unix time>.txt")
	f.StringVar(&flagOutputDir, "output-dir", "", "directory for result files (default from config, \".\")")
	f.BoolVar(&flagDetectEncoding, "detect-encoding", false, "sniff non-UTF-8 input and transcode it before matching")
	f.BoolVarP(&flagPrint, "print", "p", false, "print a table of matched words and their lines")
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	s := resolveSettings(cmd, cfg, args)
	color := resolveColor(flagColor, flagNoColor)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, formatBanner(s, color))
	report, err := app.New(cfg, logger).Run(s)
	if err != nil {
		return err
	}
	fmt.Fprint(out, formatSummary(report, color))
	if flagPrint && report.Result.Len() > 0 {
		fmt.Fprintln(out, renderMatchTable(report.Result, color))
	}
	return nil
}

// loadEnv loads configuration, applies logging flag overrides and builds the
// logger on the command's stderr.
func loadEnv(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg, _, _, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, err
	}
	pf := cmd.Flags()
	if pf.Changed("log-level") {
		cfg.Logging.Level = strings.ToLower(strings.TrimSpace(flagLogLevel))
	}
	if pf.Changed("log-format") {
		cfg.Logging.Format = strings.ToLower(strings.TrimSpace(flagLogFormat))
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("log flags: %w", err)
	}
	logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

// resolveSettings starts from configured defaults; flags set on the command
// line win.
func resolveSettings(cmd *cobra.Command, cfg *config.Config, args []string) app.Settings {
	s := app.SettingsFromConfig(cfg, args[0], args[1])
	f := cmd.Flags()
	if f.Changed("ignorecase") {
		s.IgnoreCase = flagIgnoreCase
	}
	if f.Changed("output") {
		s.Output = flagOutput
	}
	if f.Changed("output-dir") {
		s.OutputDir = flagOutputDir
	}
	if f.Changed("detect-encoding") {
		s.DetectEncoding = flagDetectEncoding
	}
	return s
}
