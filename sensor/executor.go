package sensor

import (
	"context"
	"os/exec"
)

// Executer abstracts running commands
type Executer interface {
	Execute(ctx context.Context, name string, arg ...string) Commander
}

type Commander interface {
	Output() ([]byte, error)
}

type CmdExecutor struct{}

func (c *CmdExecutor) Execute(ctx context.Context, name string, arg ...string) Commander {
	return &ExecCommand{cmd: exec.CommandContext(ctx, name, arg...)}
}

type ExecCommand struct {
	cmd *exec.Cmd
}

func (e *ExecCommand) Output() ([]byte, error) {
	return e.cmd.Output()
}
