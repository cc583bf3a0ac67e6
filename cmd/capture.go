package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gitlab.com/nunet/gputemp/db/repositories"
	"gitlab.com/nunet/gputemp/models"
	"gitlab.com/nunet/gputemp/sensor"
)

// runCapture takes one reading and stores it. Any failure aborts the invocation.
func runCapture(
	cmd *cobra.Command,
	reader sensor.Reader,
	repo repositories.TemperatureReadingRepository,
	gpus func() ([]string, error),
) error {
	timestamp := time.Now()

	temp, err := reader.Read(cmd.Context())
	if err != nil {
		logSensorHint(err, gpus)
		return fmt.Errorf("unable to get GPU temperature: %w", err)
	}

	reading, err := repo.Append(cmd.Context(), temp, timestamp)
	if err != nil {
		return err
	}

	zlog.Sugar().Infof("GPU Temperature: %d°C", reading.Temperature)
	fmt.Fprintf(cmd.OutOrStdout(), "%s GPU temperature: %d°C\n", reading.Timestamp.Local().Format(timestampLayout), reading.Temperature)
	return nil
}

// logSensorHint tells apart a machine without an NVIDIA card from one missing the driver tools.
func logSensorHint(err error, gpus func() ([]string, error)) {
	if gpus == nil || !errors.Is(err, models.ErrSensorUnavailable) {
		return
	}

	cards, err := gpus()
	switch {
	case err != nil:
		zlog.Debug("unable to detect graphics cards", zap.Error(err))
	case len(cards) == 0:
		zlog.Warn("no NVIDIA graphics card detected on this machine")
	default:
		zlog.Warn("NVIDIA graphics card found but the sensor is not usable, check the driver installation",
			zap.Strings("cards", cards))
	}
}
