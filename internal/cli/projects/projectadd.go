package projects

import (
	"fmt"

	"github.com/julianstephens/tempo/internal/cli"
	"github.com/julianstephens/tempo/internal/store"
)

type ProjectAddCmd struct {
	Name        string `arg:"" help:"Project name."`
	Description string `short:"d" help:"Short description."`
	Category    string `short:"c" help:"Free-form category label."`
	Color       string `help:"Display color (hex or terminal color name)."`
	Notes       string `help:"Free-form notes."`
}

func (c *ProjectAddCmd) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	return nil
}

func (c *ProjectAddCmd) Run(ctx *cli.Context) error {
	project, err := ctx.Store.AddProject(store.ProjectInput{
		Name:        c.Name,
		Description: c.Description,
		Category:    c.Category,
		Color:       c.Color,
		Notes:       c.Notes,
	})
	if err != nil {
		return fmt.Errorf("failed to add project: %w", err)
	}

	fmt.Printf("Added project %q (ID: %s)\n", project.Name, project.ID)
	return nil
}
