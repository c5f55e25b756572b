package notes

import (
	"fmt"

	"github.com/julianstephens/tempo/internal/cli"
)

type NoteDeleteCmd struct {
	ID string `arg:"" help:"Note ID."`
}

func (c *NoteDeleteCmd) Run(ctx *cli.Context) error {
	note, err := ctx.Store.Note(c.ID)
	if err != nil {
		return fmt.Errorf("unknown note: %s", c.ID)
	}

	if err := ctx.Store.DeleteNote(c.ID); err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	fmt.Printf("Deleted note %q\n", note.Title)
	return nil
}
