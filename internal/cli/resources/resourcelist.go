package resources

import (
	"fmt"

	"github.com/julianstephens/tempo/internal/cli"
	"github.com/julianstephens/tempo/internal/models"
)

type ResourceListCmd struct {
	Project string `short:"P" help:"Only resources of this project."`
	ShowIDs bool   `help:"Show full resource IDs." name:"show-ids"`
}

func (c *ResourceListCmd) Run(ctx *cli.Context) error {
	var (
		resources []models.ProjectResource
		err       error
	)
	if c.Project != "" {
		resources, err = ctx.Store.ResourcesForProject(c.Project)
	} else {
		resources, err = ctx.Store.Resources()
	}
	if err != nil {
		return fmt.Errorf("failed to get resources: %w", err)
	}
	if len(resources) == 0 {
		fmt.Println("No resources found")
		return nil
	}

	fmt.Println(cli.TitleStyle.Render("Resources:"))
	for _, r := range resources {
		id := cli.ShortID(r.ID)
		if c.ShowIDs {
			id = r.ID
		}

		line := fmt.Sprintf("  [%s] %s (%s)", id, r.Title, r.Type)
		if r.URL != "" {
			line += " " + cli.MutedStyle.Render(r.URL)
		}
		if r.InKeyring {
			line += " " + cli.MutedStyle.Render("[keyring]")
		}
		fmt.Println(line)
	}

	return nil
}
