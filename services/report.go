package services

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// RenderListenReport renders the per-day listen buckets as a printable
// text table for the dashboard's report view.
func RenderListenReport(title string, buckets []DayCount, start, end time.Time) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(fmt.Sprintf("%s | listens %s to %s",
		title, start.Format("2006-01-02"), end.Format("2006-01-02")))

	tw.AppendHeader(table.Row{"Day", "Listens"})

	total := 0
	for _, b := range buckets {
		tw.AppendRow(table.Row{b.Day, b.Count})
		total += b.Count
	}
	tw.AppendFooter(table.Row{"Total", total})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft, AlignFooter: text.AlignRight},
	})

	return tw.Render()
}
