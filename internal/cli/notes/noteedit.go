package notes

import (
	"fmt"

	"github.com/julianstephens/tempo/internal/cli"
	"github.com/julianstephens/tempo/internal/store"
)

type NoteEditCmd struct {
	ID      string  `arg:"" help:"Note ID."`
	Title   *string `help:"New title."`
	Content *string `short:"c" help:"New body."`
	Tags    *string `short:"t" help:"Replacement comma-separated tags (empty clears)."`
}

func (c *NoteEditCmd) Validate() error {
	if c.Title != nil && *c.Title == "" {
		return fmt.Errorf("title cannot be empty")
	}
	return nil
}

func (c *NoteEditCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.Store.Note(c.ID); err != nil {
		return fmt.Errorf("unknown note: %s", c.ID)
	}

	patch := store.NotePatch{
		Title:   c.Title,
		Content: c.Content,
	}
	if c.Tags != nil {
		tags := cli.ParseTags(*c.Tags)
		if tags == nil {
			tags = []string{}
		}
		patch.Tags = &tags
	}

	if err := ctx.Store.UpdateNote(c.ID, patch); err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}

	fmt.Printf("Updated note %s\n", c.ID)
	return nil
}
