package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corey/wordmatch/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show configuration",
	Long:  "Shows the resolved config file, match defaults, watch throttling, and logging settings.",
	Args:  cobra.NoArgs,
	RunE:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a sample config file",
	Long:  "Writes a commented sample config to --config, or to ~/.config/wordmatch/config.toml. Never overwrites.",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, path, exists, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	color := resolveColor(flagColor, flagNoColor)
	out := cmd.OutOrStdout()

	source := paint(color, colorYellow, "not found, using defaults")
	if exists {
		source = paint(color, colorGreen, "loaded")
	}
	encoding := "UTF-8 only"
	if cfg.Match.DetectEncoding {
		encoding = "detect"
	}

	fmt.Fprintln(out, paint(color, colorBold, "⚡ wordmatch config"))
	fmt.Fprintf(out, "  File:         %s (%s)\n", path, source)
	fmt.Fprintf(out, "  Ignore case:  %t\n", cfg.Match.IgnoreCase)
	fmt.Fprintf(out, "  Output:       %t\n", cfg.Match.Output)
	fmt.Fprintf(out, "  Output dir:   %s\n", cfg.Match.OutputDir)
	fmt.Fprintf(out, "  Encoding:     %s\n", encoding)
	fmt.Fprintf(out, "  Watch:        every %s (burst %d)\n", cfg.WatchInterval(), cfg.Watch.Burst)
	fmt.Fprintf(out, "  Logging:      %s / %s\n", cfg.Logging.Level, cfg.Logging.Format)
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := flagConfig
	if path == "" {
		var err error
		if path, err = config.DefaultConfigPath(); err != nil {
			return err
		}
	}
	if err := config.CreateSample(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample config to %s\n", path)
	return nil
}
