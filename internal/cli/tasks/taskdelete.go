package tasks

import (
	"fmt"

	"github.com/julianstephens/tempo/internal/cli"
)

type TaskDeleteCmd struct {
	ID string `arg:"" help:"Task ID."`
}

func (c *TaskDeleteCmd) Run(ctx *cli.Context) error {
	task, err := ctx.Store.Task(c.ID)
	if err != nil {
		return fmt.Errorf("unknown task: %s", c.ID)
	}

	if err := ctx.Store.DeleteTask(c.ID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	fmt.Printf("Deleted task %q\n", task.Title)
	return nil
}
