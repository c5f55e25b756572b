package events

import (
	"fmt"

	"github.com/julianstephens/tempo/internal/cli"
	"github.com/julianstephens/tempo/internal/models"
)

type EventListCmd struct {
	Date    string `short:"d" help:"Only events on this date (YYYY-MM-DD)."`
	ShowIDs bool   `help:"Show full event IDs." name:"show-ids"`
}

func (c *EventListCmd) Run(ctx *cli.Context) error {
	var (
		events []models.CalendarEvent
		err    error
	)
	if c.Date != "" {
		events, err = ctx.Store.EventsOn(c.Date)
	} else {
		events, err = ctx.Store.Events()
	}
	if err != nil {
		return fmt.Errorf("failed to get events: %w", err)
	}
	if len(events) == 0 {
		fmt.Println("No events found")
		return nil
	}

	fmt.Println(cli.TitleStyle.Render("Events:"))
	for _, event := range events {
		id := cli.ShortID(event.ID)
		if c.ShowIDs {
			id = event.ID
		}

		window := event.StartTime
		if event.EndTime != "" {
			window += "-" + event.EndTime
		}
		fmt.Printf("  [%s] %s %s %s (%s)\n", id, event.Date, window, event.Title, event.Type)
		if event.Description != "" {
			fmt.Printf("      %s\n", cli.MutedStyle.Render(event.Description))
		}
	}

	return nil
}
