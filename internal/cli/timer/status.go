package timer

import (
	"fmt"
	"time"

	"github.com/julianstephens/tempo/internal/cli"
	"github.com/julianstephens/tempo/internal/utils"
)

type StatusCmd struct {
	Watch    bool          `short:"w" help:"Refresh the display until interrupted."`
	Interval time.Duration `help:"Refresh interval for --watch." default:"1s"`
}

func (c *StatusCmd) Run(ctx *cli.Context) error {
	if !c.Watch {
		return c.print(ctx)
	}

	// Elapsed time is derived, not pushed: watching is plain re-polling.
	for {
		if err := c.print(ctx); err != nil {
			return err
		}
		time.Sleep(c.Interval)
	}
}

func (c *StatusCmd) print(ctx *cli.Context) error {
	running, err := ctx.Store.RunningTasks()
	if err != nil {
		return fmt.Errorf("failed to get running timers: %w", err)
	}
	if len(running) == 0 {
		fmt.Println("No timer running")
		return nil
	}

	for _, task := range running {
		total, err := ctx.Store.TaskTime(task.ID)
		if err != nil {
			return err
		}

		open := task.OpenSession()
		elapsed := time.Since(time.UnixMilli(open.StartedAt))
		fmt.Printf("%s %s  session %s, total %s\n",
			cli.SuccessStyle.Render("▶"), task.Title,
			utils.FormatDuration(elapsed), utils.FormatDuration(total))
	}
	return nil
}
