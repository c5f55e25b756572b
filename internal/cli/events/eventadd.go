package events

import (
	"fmt"

	"github.com/julianstephens/tempo/internal/cli"
	"github.com/julianstephens/tempo/internal/models"
	"github.com/julianstephens/tempo/internal/store"
	"github.com/julianstephens/tempo/internal/validation"
)

type EventAddCmd struct {
	Title       string `arg:"" help:"Event title."`
	Date        string `arg:"" help:"Event date (YYYY-MM-DD)."`
	Start       string `short:"s" help:"Start time (HH:MM)." required:""`
	End         string `short:"e" help:"End time (HH:MM)."`
	Type        string `short:"T" help:"Event type (reminder|meeting|call|task|workout|work|development|other)." default:"reminder"`
	Description string `short:"d" help:"Description."`
}

func (c *EventAddCmd) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("title cannot be empty")
	}
	if c.Date == "" {
		return fmt.Errorf("date cannot be empty")
	}
	if err := validation.ValidateDate(c.Date); err != nil {
		return err
	}
	if c.Start == "" {
		return fmt.Errorf("start time cannot be empty")
	}
	if err := validation.ValidateTime(c.Start); err != nil {
		return err
	}
	if err := validation.ValidateTime(c.End); err != nil {
		return err
	}
	if !validEventType(c.Type) {
		return fmt.Errorf("invalid event type %q", c.Type)
	}
	return nil
}

func (c *EventAddCmd) Run(ctx *cli.Context) error {
	event, err := ctx.Store.AddEvent(store.EventInput{
		Title:       c.Title,
		Date:        c.Date,
		StartTime:   c.Start,
		EndTime:     c.End,
		Description: c.Description,
		Type:        models.EventType(c.Type),
	})
	if err != nil {
		return fmt.Errorf("failed to add event: %w", err)
	}

	fmt.Printf("Added event %q on %s (ID: %s)\n", event.Title, event.Date, event.ID)
	return nil
}

func validEventType(t string) bool {
	for _, known := range models.EventTypes {
		if models.EventType(t) == known {
			return true
		}
	}
	return false
}
