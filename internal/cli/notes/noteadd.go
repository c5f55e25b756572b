package notes

import (
	"fmt"

	"github.com/julianstephens/tempo/internal/cli"
	"github.com/julianstephens/tempo/internal/store"
)

type NoteAddCmd struct {
	Title   string `arg:"" help:"Note title."`
	Content string `short:"c" help:"Note body."`
	Tags    string `short:"t" help:"Comma-separated tags."`
}

func (c *NoteAddCmd) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("title cannot be empty")
	}
	return nil
}

func (c *NoteAddCmd) Run(ctx *cli.Context) error {
	note, err := ctx.Store.AddNote(store.NoteInput{
		Title:   c.Title,
		Content: c.Content,
		Tags:    cli.ParseTags(c.Tags),
	})
	if err != nil {
		return fmt.Errorf("failed to add note: %w", err)
	}

	fmt.Printf("Added note %q (ID: %s)\n", note.Title, note.ID)
	return nil
}
