package tasks

import (
	"fmt"

	"github.com/julianstephens/tempo/internal/cli"
	"github.com/julianstephens/tempo/internal/models"
	"github.com/julianstephens/tempo/internal/store"
	"github.com/julianstephens/tempo/internal/validation"
)

type TaskAddCmd struct {
	Title     string `arg:"" help:"Task title."`
	Date      string `short:"d" help:"Scheduled date (YYYY-MM-DD)."`
	Start     string `short:"s" help:"Planned start time (HH:MM)."`
	End       string `short:"e" help:"Planned end time (HH:MM)."`
	Priority  string `short:"p" help:"Priority (low|medium|high)." default:"medium"`
	Status    string `help:"Status (planned|in-progress|completed|cancelled)." default:"planned"`
	Tags      string `short:"t" help:"Comma-separated tags."`
	Project   string `short:"P" help:"Project ID to attach the task to."`
	Estimated int    `help:"Estimated effort in minutes."`
}

func (c *TaskAddCmd) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("title cannot be empty")
	}
	if err := validation.ValidateDate(c.Date); err != nil {
		return err
	}
	if err := validation.ValidateTime(c.Start); err != nil {
		return err
	}
	if err := validation.ValidateTime(c.End); err != nil {
		return err
	}
	if !validStatus(c.Status) {
		return fmt.Errorf("invalid status %q (expected planned|in-progress|completed|cancelled)", c.Status)
	}
	if !validPriority(c.Priority) {
		return fmt.Errorf("invalid priority %q (expected low|medium|high)", c.Priority)
	}
	if c.Estimated < 0 {
		return fmt.Errorf("estimated minutes cannot be negative")
	}
	return nil
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	if c.Project != "" {
		if _, err := ctx.Store.Project(c.Project); err != nil {
			return fmt.Errorf("unknown project: %s", c.Project)
		}
	}

	task, err := ctx.Store.AddTask(store.TaskInput{
		Title:        c.Title,
		Date:         c.Date,
		StartTime:    c.Start,
		EndTime:      c.End,
		Status:       models.TaskStatus(c.Status),
		Priority:     models.TaskPriority(c.Priority),
		Tags:         cli.ParseTags(c.Tags),
		ProjectID:    c.Project,
		EstimatedMin: c.Estimated,
	})
	if err != nil {
		return fmt.Errorf("failed to add task: %w", err)
	}

	fmt.Printf("Added task %q (ID: %s)\n", task.Title, task.ID)
	return nil
}

func validStatus(s string) bool {
	switch models.TaskStatus(s) {
	case models.TaskPlanned, models.TaskInProgress, models.TaskCompleted, models.TaskCancelled:
		return true
	}
	return false
}

func validPriority(p string) bool {
	switch models.TaskPriority(p) {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
		return true
	}
	return false
}
