package tasks

import (
	"fmt"
	"time"

	"github.com/julianstephens/tempo/internal/cli"
	"github.com/julianstephens/tempo/internal/utils"
)

type TaskShowCmd struct {
	ID string `arg:"" help:"Task ID."`
}

func (c *TaskShowCmd) Run(ctx *cli.Context) error {
	task, err := ctx.Store.Task(c.ID)
	if err != nil {
		return fmt.Errorf("unknown task: %s", c.ID)
	}

	fmt.Println(cli.TitleStyle.Render(task.Title))
	fmt.Printf("ID:       %s\n", task.ID)
	fmt.Printf("Status:   %s\n", task.Status)
	fmt.Printf("Priority: %s\n", task.Priority)
	if task.Date != "" {
		fmt.Printf("Date:     %s\n", task.Date)
	}
	if task.StartTime != "" || task.EndTime != "" {
		fmt.Printf("Window:   %s - %s\n", task.StartTime, task.EndTime)
	}
	if task.ProjectID != "" {
		name := task.ProjectID
		if project, err := ctx.Store.Project(task.ProjectID); err == nil {
			name = project.Name
		}
		fmt.Printf("Project:  %s\n", name)
	}
	if len(task.Tags) > 0 {
		fmt.Printf("Tags:     %s\n", cli.FormatTags(task.Tags))
	}
	if task.EstimatedMin > 0 {
		fmt.Printf("Estimate: %s\n", utils.FormatDuration(time.Duration(task.EstimatedMin)*time.Minute))
	}

	total, err := ctx.Store.TaskTime(task.ID)
	if err != nil {
		return fmt.Errorf("failed to compute tracked time: %w", err)
	}
	fmt.Printf("Tracked:  %s\n", utils.FormatDuration(total))

	if len(task.Sessions) > 0 {
		fmt.Println("Sessions:")
		for _, sess := range task.Sessions {
			start := time.UnixMilli(sess.StartedAt).Local().Format("2006-01-02 15:04")
			if sess.Open() {
				fmt.Printf("  %s - %s\n", start, cli.WarningStyle.Render("running"))
				continue
			}
			d := time.Duration(*sess.DurationMs) * time.Millisecond
			fmt.Printf("  %s - %s (%s)\n", start, sess.EndClock, utils.FormatDuration(d))
		}
	}

	return nil
}
