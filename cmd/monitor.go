package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"gitlab.com/nunet/gputemp/db/repositories"
	"gitlab.com/nunet/gputemp/internal/config"
	"gitlab.com/nunet/gputemp/internal/monitor"
	"gitlab.com/nunet/gputemp/sensor"
)

// runMonitor captures readings until the configured duration elapsed or the process is interrupted.
// An interrupt is a normal way to stop and is not reported as an error.
func runMonitor(
	cmd *cobra.Command,
	reader sensor.Reader,
	repo repositories.TemperatureReadingRepository,
	cfg config.Monitor,
	clock monitor.Clock,
) error {
	var opts []monitor.Option
	if clock != nil {
		opts = append(opts, monitor.WithClock(clock))
	}

	loop, err := monitor.NewLoop(cfg.IntervalDuration(), cfg.TotalDuration(), reader, repo, opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := loop.Run(ctx)
	if errors.Is(err, context.Canceled) {
		zlog.Info("Temperature monitoring stopped by user")
		err = nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Stored %d of %d readings (%d failed)\n", summary.Stored, summary.Attempts, summary.Failed)
	return err
}
