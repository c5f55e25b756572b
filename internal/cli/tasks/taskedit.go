package tasks

import (
	"fmt"

	"github.com/julianstephens/tempo/internal/cli"
	"github.com/julianstephens/tempo/internal/models"
	"github.com/julianstephens/tempo/internal/store"
	"github.com/julianstephens/tempo/internal/validation"
)

type TaskEditCmd struct {
	ID        string  `arg:"" help:"Task ID."`
	Title     *string `help:"New title."`
	Date      *string `short:"d" help:"New date (YYYY-MM-DD)."`
	Start     *string `short:"s" help:"New start time (HH:MM)."`
	End       *string `short:"e" help:"New end time (HH:MM)."`
	Status    *string `help:"New status (planned|in-progress|completed|cancelled)."`
	Priority  *string `short:"p" help:"New priority (low|medium|high)."`
	Tags      *string `short:"t" help:"Replacement comma-separated tags (empty clears)."`
	Project   *string `short:"P" help:"New project ID (empty clears the reference)."`
	Estimated *int    `help:"New estimated effort in minutes."`
}

func (c *TaskEditCmd) Validate() error {
	if c.Title != nil && *c.Title == "" {
		return fmt.Errorf("title cannot be empty")
	}
	if c.Date != nil {
		if err := validation.ValidateDate(*c.Date); err != nil {
			return err
		}
	}
	if c.Start != nil {
		if err := validation.ValidateTime(*c.Start); err != nil {
			return err
		}
	}
	if c.End != nil {
		if err := validation.ValidateTime(*c.End); err != nil {
			return err
		}
	}
	if c.Status != nil && !validStatus(*c.Status) {
		return fmt.Errorf("invalid status %q (expected planned|in-progress|completed|cancelled)", *c.Status)
	}
	if c.Priority != nil && !validPriority(*c.Priority) {
		return fmt.Errorf("invalid priority %q (expected low|medium|high)", *c.Priority)
	}
	if c.Estimated != nil && *c.Estimated < 0 {
		return fmt.Errorf("estimated minutes cannot be negative")
	}
	return nil
}

func (c *TaskEditCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.Store.Task(c.ID); err != nil {
		return fmt.Errorf("unknown task: %s", c.ID)
	}
	if c.Project != nil && *c.Project != "" {
		if _, err := ctx.Store.Project(*c.Project); err != nil {
			return fmt.Errorf("unknown project: %s", *c.Project)
		}
	}

	patch := store.TaskPatch{
		Title:        c.Title,
		Date:         c.Date,
		StartTime:    c.Start,
		EndTime:      c.End,
		ProjectID:    c.Project,
		EstimatedMin: c.Estimated,
	}
	if c.Status != nil {
		status := models.TaskStatus(*c.Status)
		patch.Status = &status
	}
	if c.Priority != nil {
		priority := models.TaskPriority(*c.Priority)
		patch.Priority = &priority
	}
	if c.Tags != nil {
		tags := cli.ParseTags(*c.Tags)
		if tags == nil {
			tags = []string{}
		}
		patch.Tags = &tags
	}

	if err := ctx.Store.UpdateTask(c.ID, patch); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	fmt.Printf("Updated task %s\n", c.ID)
	return nil
}
