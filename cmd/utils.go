package cmd

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"gitlab.com/nunet/gputemp/models"
)

const timestampLayout = "2006-01-02 15:04:05"

func setupReadingsTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)

	table.SetHeader([]string{"ID", "Timestamp", "Temperature", "Age"})
	table.SetAutoFormatHeaders(false)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	return table
}

func readingRow(reading models.TemperatureReading) []string {
	return []string{
		fmt.Sprintf("%d", reading.ID),
		reading.Timestamp.Local().Format(timestampLayout),
		fmt.Sprintf("%d°C", reading.Temperature),
		humanize.Time(reading.Timestamp),
	}
}
