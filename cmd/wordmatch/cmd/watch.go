package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/corey/wordmatch/internal/app"
)

var watchCmd = &cobra.Command{
	Use:   "watch <input_file> <vocab_file>",
	Short: "Re-run matching whenever the input or vocabulary file changes",
	Long: "Runs a match immediately, then again each time either file is written,\n" +
		"until interrupted. Reruns are throttled by [watch] interval_ms.",
	Args: cobra.ExactArgs(2),
	RunE: runWatch,
}

func init() {
	addMatchFlags(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	s := resolveSettings(cmd, cfg, args)
	color := resolveColor(flagColor, flagNoColor)
	out := cmd.OutOrStdout()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintln(out, formatBanner(s, color))
	return app.New(cfg, logger).Watch(ctx, s, func(report *app.Report, err error) {
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), FormatError(err))
			return
		}
		fmt.Fprint(out, formatSummary(report, color))
		if flagPrint && report.Result.Len() > 0 {
			fmt.Fprintln(out, renderMatchTable(report.Result, color))
		}
	})
}
