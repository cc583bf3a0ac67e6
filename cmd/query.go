package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gitlab.com/nunet/gputemp/db/repositories"
)

func runQuery(cmd *cobra.Command, repo repositories.TemperatureReadingRepository, limit int) error {
	readings, err := repo.Recent(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("unable to query temperatures: %w", err)
	}

	if len(readings) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No temperature readings found in database")
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Last %d temperature readings:\n", len(readings))

	table := setupReadingsTable(cmd.OutOrStdout())
	for _, reading := range readings {
		table.Append(readingRow(reading))
	}
	table.Render()

	return nil
}
