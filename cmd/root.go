package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"gitlab.com/nunet/gputemp/cmd/backend"
	"gitlab.com/nunet/gputemp/db"
	repositories_gorm "gitlab.com/nunet/gputemp/db/repositories/gorm"
	"gitlab.com/nunet/gputemp/internal/config"
	"gitlab.com/nunet/gputemp/internal/logger"
	"gitlab.com/nunet/gputemp/models"
)

var rootCmd = NewRootCmd(backend.NewBackend())

// NewRootCmd builds the gputemp command. Exactly one mode runs per invocation:
// --query wins over --monitor, and without either a single reading is captured.
func NewRootCmd(b *backend.Backend) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gputemp",
		Short: "GPU Temperature Logger",
		Long: `Capture the GPU temperature reported by nvidia-smi (or NVML) into a local SQLite database,
optionally at a fixed interval, and display the most recent readings.`,
		Version: Version,
		Args:    cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, b)
		},
	}

	config.RegisterFlags(cmd.Flags())
	cmd.Flags().Bool("query", false, "query recent temperature readings instead of logging")
	cmd.Flags().Bool("monitor", false, "monitor temperature at the configured interval for the configured duration")
	cmd.Flags().String("config", "", "path to a gputemp_config.json file")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newAutocompleteCmd())

	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", models.ErrInvalidArgument, err)
	})

	return cmd
}

func Execute() {
	// CheckErr prints formatted error message, if there is any, and exits
	cobra.CheckErr(rootCmd.Execute())
}

func run(cmd *cobra.Command, b *backend.Backend) (err error) {
	configPath, _ := cmd.Flags().GetString("config")
	query, _ := cmd.Flags().GetBool("query")
	monitor, _ := cmd.Flags().GetBool("monitor")

	cfg, err := config.Load(b.FS, cmd.Flags(), configPath)
	if err != nil {
		return err
	}
	logger.SetDebug(cfg.General.Debug)

	if err := cfg.Validate(); err != nil {
		return err
	}

	if query && monitor {
		zlog.Warn("both --query and --monitor given, running query")
	}

	database, err := db.Open(cfg.Store.DBFile, b.FS)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, db.Close(database))
	}()

	repo := repositories_gorm.NewTemperatureReadingRepository(database)

	if query {
		return runQuery(cmd, repo, cfg.Query.Limit)
	}

	reader, err := b.Sensors.NewReader(cfg.Sensor)
	if err != nil {
		return err
	}

	if monitor {
		return runMonitor(cmd, reader, repo, cfg.Monitor, b.Clock)
	}
	return runCapture(cmd, reader, repo, b.GPUs)
}
