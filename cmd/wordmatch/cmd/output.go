package cmd

import (
	"fmt"
	"strings"

	"github.com/corey/wordmatch/internal/app"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// paint wraps s in an ANSI code when color is enabled.
func paint(color bool, code, s string) string {
	if !color {
		return s
	}
	return code + s + colorReset
}

// formatBanner is printed before a run starts.
//
//	-- Start matching predefined words from vocab.txt in input file input.txt --
func formatBanner(s app.Settings, color bool) string {
	return fmt.Sprintf("-- Start matching predefined words from %s in input file %s --",
		paint(color, colorCyan, s.VocabPath), paint(color, colorCyan, s.InputPath))
}

// formatSummary reports a finished run.
//
//	Finished writing match output to output-1700000000.5.txt
//	Found 4 matched words
//	-- Finished running in 0.00123 seconds --
func formatSummary(r *app.Report, color bool) string {
	var sb strings.Builder
	if r.OutputPath != "" {
		sb.WriteString(fmt.Sprintf("Finished writing match output to %s\n", paint(color, colorCyan, r.OutputPath)))
	}
	sb.WriteString(fmt.Sprintf("Found %s matched words\n", paint(color, colorBold+colorGreen, fmt.Sprint(r.Result.Len()))))
	sb.WriteString(paint(color, colorGray, fmt.Sprintf("-- Finished running in %.5f seconds --", r.Elapsed.Seconds())))
	sb.WriteString("\n")
	return sb.String()
}
