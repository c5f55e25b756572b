package projects

import (
	"fmt"

	"github.com/julianstephens/tempo/internal/cli"
	"github.com/julianstephens/tempo/internal/store"
)

type ProjectEditCmd struct {
	ID          string  `arg:"" help:"Project ID."`
	Name        *string `help:"New name."`
	Description *string `short:"d" help:"New description."`
	Category    *string `short:"c" help:"New category."`
	Color       *string `help:"New display color."`
	Notes       *string `help:"New notes."`
}

func (c *ProjectEditCmd) Validate() error {
	if c.Name != nil && *c.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	return nil
}

func (c *ProjectEditCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.Store.Project(c.ID); err != nil {
		return fmt.Errorf("unknown project: %s", c.ID)
	}

	err := ctx.Store.UpdateProject(c.ID, store.ProjectPatch{
		Name:        c.Name,
		Description: c.Description,
		Category:    c.Category,
		Color:       c.Color,
		Notes:       c.Notes,
	})
	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	fmt.Printf("Updated project %s\n", c.ID)
	return nil
}
