package notes

import (
	"fmt"

	"github.com/julianstephens/tempo/internal/cli"
)

type NoteShowCmd struct {
	ID string `arg:"" help:"Note ID."`
}

func (c *NoteShowCmd) Run(ctx *cli.Context) error {
	note, err := ctx.Store.Note(c.ID)
	if err != nil {
		return fmt.Errorf("unknown note: %s", c.ID)
	}

	fmt.Println(cli.TitleStyle.Render(note.Title))
	if tags := cli.FormatTags(note.Tags); tags != "" {
		fmt.Println(cli.MutedStyle.Render(tags))
	}
	if note.Content != "" {
		fmt.Println()
		fmt.Println(note.Content)
	}
	return nil
}
