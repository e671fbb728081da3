package main

import (
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"statewords/internal/pipeline"
)

// summaryTable renders the run's phase timings and final pair count.
func summaryTable(result *pipeline.Result) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	tw.AppendHeader(table.Row{"Phase", "Items", "Duration"})
	for _, phase := range result.Report.Phases {
		tw.AppendRow(table.Row{
			phase.Name,
			phase.Items,
			phase.Duration.Round(time.Microsecond).String(),
		})
	}
	tw.AppendFooter(table.Row{"pairs", len(result.Pairs), ""})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
