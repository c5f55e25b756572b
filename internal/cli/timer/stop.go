package timer

import (
	"fmt"

	"github.com/julianstephens/tempo/internal/cli"
	"github.com/julianstephens/tempo/internal/utils"
)

type StopCmd struct {
	ID string `arg:"" optional:"" help:"Task ID. Omit to stop the only running timer."`
}

func (c *StopCmd) Run(ctx *cli.Context) error {
	id := c.ID
	if id == "" {
		running, err := ctx.Store.RunningTasks()
		if err != nil {
			return err
		}
		switch len(running) {
		case 0:
			fmt.Println("No timer running")
			return nil
		case 1:
			id = running[0].ID
		default:
			return fmt.Errorf("multiple timers running, specify a task ID")
		}
	}

	task, err := ctx.Store.Task(id)
	if err != nil {
		return fmt.Errorf("unknown task: %s", id)
	}

	running, err := ctx.Store.TimerRunning(id)
	if err != nil {
		return err
	}
	if !running {
		fmt.Printf("No timer running for %q\n", task.Title)
		return nil
	}

	if err := ctx.Store.StopTimer(id); err != nil {
		return fmt.Errorf("failed to stop timer: %w", err)
	}

	total, err := ctx.Store.TaskTime(id)
	if err != nil {
		return err
	}
	fmt.Printf("Stopped timer for %q (total tracked: %s)\n", task.Title, utils.FormatDuration(total))
	return nil
}
