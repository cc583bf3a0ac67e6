package sensor

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"gitlab.com/nunet/gputemp/models"
)

// nvidiaSMIArgs requests the temperature of every GPU, one bare number per line.
var nvidiaSMIArgs = []string{"--query-gpu=temperature.gpu", "--format=csv,noheader,nounits"}

// NvidiaSMI reads the temperature of the first GPU reported by nvidia-smi.
type NvidiaSMI struct {
	command  string
	timeout  time.Duration
	executer Executer
}

// NewNvidiaSMI returns a reader running command with the given per-query timeout.
// A zero timeout means the query is bounded only by the caller's context.
func NewNvidiaSMI(command string, timeout time.Duration, executer Executer) *NvidiaSMI {
	if executer == nil {
		executer = &CmdExecutor{}
	}
	return &NvidiaSMI{
		command:  command,
		timeout:  timeout,
		executer: executer,
	}
}

func (n *NvidiaSMI) Read(ctx context.Context) (int, error) {
	if n.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}

	output, err := n.executer.Execute(ctx, n.command, nvidiaSMIArgs...).Output()
	if err != nil {
		return 0, n.classify(ctx, output, err)
	}

	temp, err := parseTemperature(output)
	if err != nil {
		return 0, err
	}

	zlog.Sugar().Debugf("%s reported %d°C", n.command, temp)
	return temp, nil
}

// classify maps a failed run onto the sensor errors. nvidia-smi prints its own
// failures ("NVIDIA-SMI has failed because...") on stdout, so stdout is reported
// when stderr is empty.
func (n *NvidiaSMI) classify(ctx context.Context, stdout []byte, err error) error {
	var exitErr *exec.ExitError
	switch {
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s: %v", models.ErrSensorUnavailable, n.command, err)
	case ctx.Err() != nil:
		return fmt.Errorf("%w: %s did not answer: %v", models.ErrSensorQueryFailed, n.command, ctx.Err())
	case errors.As(err, &exitErr):
		detail := strings.TrimSpace(string(exitErr.Stderr))
		if detail == "" {
			detail = strings.TrimSpace(string(stdout))
		}
		if detail == "" {
			return fmt.Errorf("%w: %s exited with status %d", models.ErrSensorQueryFailed, n.command, exitErr.ExitCode())
		}
		return fmt.Errorf("%w: %s exited with status %d: %s", models.ErrSensorQueryFailed, n.command, exitErr.ExitCode(), detail)
	default:
		return fmt.Errorf("%w: %s: %v", models.ErrSensorQueryFailed, n.command, err)
	}
}

// parseTemperature returns the first non-empty line of output as an integer.
// Further lines belong to additional GPUs and are ignored.
func parseTemperature(output []byte) (int, error) {
	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		temp, err := strconv.Atoi(line)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not an integer", models.ErrParse, line)
		}
		return temp, nil
	}

	return 0, fmt.Errorf("%w: empty output", models.ErrParse)
}
