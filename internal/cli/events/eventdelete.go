package events

import (
	"fmt"

	"github.com/julianstephens/tempo/internal/cli"
)

type EventDeleteCmd struct {
	ID string `arg:"" help:"Event ID."`
}

func (c *EventDeleteCmd) Run(ctx *cli.Context) error {
	event, err := ctx.Store.Event(c.ID)
	if err != nil {
		return fmt.Errorf("unknown event: %s", c.ID)
	}

	if err := ctx.Store.DeleteEvent(c.ID); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	fmt.Printf("Deleted event %q\n", event.Title)
	return nil
}
