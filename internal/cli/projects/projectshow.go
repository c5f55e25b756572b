package projects

import (
	"fmt"

	"github.com/julianstephens/tempo/internal/cli"
	"github.com/julianstephens/tempo/internal/utils"
)

type ProjectShowCmd struct {
	ID string `arg:"" help:"Project ID."`
}

func (c *ProjectShowCmd) Run(ctx *cli.Context) error {
	project, err := ctx.Store.Project(c.ID)
	if err != nil {
		return fmt.Errorf("unknown project: %s", c.ID)
	}

	fmt.Println(cli.TitleStyle.Render(project.Name))
	fmt.Printf("ID:       %s\n", project.ID)
	if project.Category != "" {
		fmt.Printf("Category: %s\n", project.Category)
	}
	if project.Description != "" {
		fmt.Printf("About:    %s\n", project.Description)
	}
	if project.Notes != "" {
		fmt.Printf("Notes:    %s\n", project.Notes)
	}

	total, err := ctx.Store.ProjectTime(project.ID)
	if err != nil {
		return err
	}
	fmt.Printf("Tracked:  %s\n", utils.FormatDuration(total))

	tasks, err := ctx.Store.TasksForProject(project.ID)
	if err != nil {
		return err
	}
	if len(tasks) > 0 {
		fmt.Printf("Tasks (%d):\n", len(tasks))
		for _, task := range tasks {
			fmt.Printf("  [%s] %s (%s)\n", cli.ShortID(task.ID), task.Title, task.Status)
		}
	}

	summary, err := ctx.Store.ProjectFinance(project.ID)
	if err != nil {
		return err
	}
	if len(summary.Received) > 0 || len(summary.Spent) > 0 {
		fmt.Println("Finance:")
		for currency, amount := range summary.Received {
			fmt.Printf("  received %.2f %s\n", amount, currency)
		}
		for currency, amount := range summary.Spent {
			fmt.Printf("  spent    %.2f %s\n", amount, currency)
		}
	}

	resources, err := ctx.Store.ResourcesForProject(project.ID)
	if err != nil {
		return err
	}
	if len(resources) > 0 {
		fmt.Printf("Resources (%d):\n", len(resources))
		for _, r := range resources {
			fmt.Printf("  [%s] %s (%s)\n", cli.ShortID(r.ID), r.Title, r.Type)
		}
	}

	return nil
}
