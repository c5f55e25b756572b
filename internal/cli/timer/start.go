package timer

import (
	"fmt"

	"github.com/julianstephens/tempo/internal/cli"
)

type StartCmd struct {
	ID string `arg:"" help:"Task ID."`
}

func (c *StartCmd) Run(ctx *cli.Context) error {
	task, err := ctx.Store.Task(c.ID)
	if err != nil {
		return fmt.Errorf("unknown task: %s", c.ID)
	}

	running, err := ctx.Store.TimerRunning(c.ID)
	if err != nil {
		return err
	}
	if running {
		fmt.Printf("Timer already running for %q\n", task.Title)
		return nil
	}

	if err := ctx.Store.StartTimer(c.ID); err != nil {
		return fmt.Errorf("failed to start timer: %w", err)
	}

	fmt.Printf("Started timer for %q\n", task.Title)
	return nil
}
