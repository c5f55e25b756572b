package tasks

import (
	"fmt"
	"time"

	"github.com/julianstephens/tempo/internal/cli"
	"github.com/julianstephens/tempo/internal/models"
	"github.com/julianstephens/tempo/internal/utils"
)

type TaskListCmd struct {
	Date    string `short:"d" help:"Only tasks scheduled on this date (YYYY-MM-DD)."`
	Project string `short:"P" help:"Only tasks of this project."`
	Tag     string `short:"t" help:"Only tasks carrying this tag."`
	All     bool   `short:"a" help:"Include completed and cancelled tasks."`
	ShowIDs bool   `help:"Show full task IDs." name:"show-ids"`
}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
	var (
		tasks []models.Task
		err   error
	)
	switch {
	case c.Date != "":
		tasks, err = ctx.Store.TasksOn(c.Date)
	case c.Project != "":
		tasks, err = ctx.Store.TasksForProject(c.Project)
	case c.Tag != "":
		tasks, err = ctx.Store.TasksWithTag(c.Tag)
	default:
		tasks, err = ctx.Store.Tasks()
	}
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}

	if !c.All {
		var open []models.Task
		for _, t := range tasks {
			if t.Status != models.TaskCompleted && t.Status != models.TaskCancelled {
				open = append(open, t)
			}
		}
		tasks = open
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	fmt.Println(cli.TitleStyle.Render("Tasks:"))
	for _, task := range tasks {
		id := cli.ShortID(task.ID)
		if c.ShowIDs {
			id = task.ID
		}

		tracked := ""
		if d := taskDuration(ctx, task.ID); d > 0 {
			tracked = " " + utils.FormatDuration(d)
			if task.OpenSession() != nil {
				tracked += " " + cli.WarningStyle.Render("(running)")
			}
		}

		fmt.Printf("  [%s] %s (%s, %s)%s\n", id, task.Title, task.Status, task.Priority, tracked)

		details := ""
		if task.Date != "" {
			details = task.Date
			if task.StartTime != "" {
				details += " " + task.StartTime
			}
		}
		if tags := cli.FormatTags(task.Tags); tags != "" {
			if details != "" {
				details += "  "
			}
			details += tags
		}
		if details != "" {
			fmt.Printf("      %s\n", cli.MutedStyle.Render(details))
		}
	}

	return nil
}

func taskDuration(ctx *cli.Context, taskID string) time.Duration {
	d, err := ctx.Store.TaskTime(taskID)
	if err != nil {
		return 0
	}
	return d
}
