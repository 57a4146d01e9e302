package cmd

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/corey/wordmatch/internal/ports"
)

// renderMatchTable lists matched words in first-occurrence order. Terminals
// get rounded box drawing; pipes and files get plain ASCII.
func renderMatchTable(result *ports.MatchResult, fancy bool) string {
	tw := table.NewWriter()
	if fancy {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}

	tw.AppendHeader(table.Row{"Word", "Count", "Lines"})
	for _, word := range result.Words() {
		lines := result.Lines(word)
		tw.AppendRow(table.Row{word, strconv.Itoa(len(lines)), ports.FormatLines(lines)})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
