package projects

import (
	"fmt"

	"github.com/julianstephens/tempo/internal/cli"
	"github.com/julianstephens/tempo/internal/utils"
)

type ProjectListCmd struct {
	Category string `short:"c" help:"Only projects in this category."`
	ShowIDs  bool   `help:"Show full project IDs." name:"show-ids"`
}

func (c *ProjectListCmd) Run(ctx *cli.Context) error {
	projects, err := ctx.Store.Projects()
	if err != nil {
		return fmt.Errorf("failed to get projects: %w", err)
	}
	if len(projects) == 0 {
		fmt.Println("No projects found")
		return nil
	}

	fmt.Println(cli.TitleStyle.Render("Projects:"))
	for _, project := range projects {
		if c.Category != "" && project.Category != c.Category {
			continue
		}

		id := cli.ShortID(project.ID)
		if c.ShowIDs {
			id = project.ID
		}

		total, err := ctx.Store.ProjectTime(project.ID)
		if err != nil {
			return err
		}

		line := fmt.Sprintf("  [%s] %s", id, project.Name)
		if project.Category != "" {
			line += fmt.Sprintf(" (%s)", project.Category)
		}
		if total > 0 {
			line += " " + utils.FormatDuration(total)
		}
		fmt.Println(line)

		if project.Description != "" {
			fmt.Printf("      %s\n", cli.MutedStyle.Render(project.Description))
		}
	}

	return nil
}
