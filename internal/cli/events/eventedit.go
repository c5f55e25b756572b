package events

import (
	"fmt"

	"github.com/julianstephens/tempo/internal/cli"
	"github.com/julianstephens/tempo/internal/models"
	"github.com/julianstephens/tempo/internal/store"
	"github.com/julianstephens/tempo/internal/validation"
)

type EventEditCmd struct {
	ID          string  `arg:"" help:"Event ID."`
	Title       *string `help:"New title."`
	Date        *string `short:"d" help:"New date (YYYY-MM-DD)."`
	Start       *string `short:"s" help:"New start time (HH:MM)."`
	End         *string `short:"e" help:"New end time (HH:MM)."`
	Type        *string `short:"T" help:"New event type."`
	Description *string `help:"New description."`
}

func (c *EventEditCmd) Validate() error {
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
	if c.Type != nil && !validEventType(*c.Type) {
		return fmt.Errorf("invalid event type %q", *c.Type)
	}
	return nil
}

func (c *EventEditCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.Store.Event(c.ID); err != nil {
		return fmt.Errorf("unknown event: %s", c.ID)
	}

	patch := store.EventPatch{
		Title:       c.Title,
		Date:        c.Date,
		StartTime:   c.Start,
		EndTime:     c.End,
		Description: c.Description,
	}
	if c.Type != nil {
		eventType := models.EventType(*c.Type)
		patch.Type = &eventType
	}

	if err := ctx.Store.UpdateEvent(c.ID, patch); err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}

	fmt.Printf("Updated event %s\n", c.ID)
	return nil
}
