package notes

import (
	"fmt"

	"github.com/julianstephens/tempo/internal/cli"
	"github.com/julianstephens/tempo/internal/models"
)

type NoteListCmd struct {
	Tag     string `short:"t" help:"Only notes carrying this tag."`
	ShowIDs bool   `help:"Show full note IDs." name:"show-ids"`
}

func (c *NoteListCmd) Run(ctx *cli.Context) error {
	var (
		notes []models.Note
		err   error
	)
	if c.Tag != "" {
		notes, err = ctx.Store.NotesWithTag(c.Tag)
	} else {
		notes, err = ctx.Store.Notes()
	}
	if err != nil {
		return fmt.Errorf("failed to get notes: %w", err)
	}
	if len(notes) == 0 {
		fmt.Println("No notes found")
		return nil
	}

	fmt.Println(cli.TitleStyle.Render("Notes:"))
	for _, note := range notes {
		id := cli.ShortID(note.ID)
		if c.ShowIDs {
			id = note.ID
		}

		line := fmt.Sprintf("  [%s] %s", id, note.Title)
		if tags := cli.FormatTags(note.Tags); tags != "" {
			line += "  " + cli.MutedStyle.Render(tags)
		}
		fmt.Println(line)
	}

	return nil
}
