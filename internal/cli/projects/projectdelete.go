package projects

import (
	"fmt"

	"github.com/julianstephens/tempo/internal/cli"
)

type ProjectDeleteCmd struct {
	ID    string `arg:"" help:"Project ID."`
	Force bool   `short:"f" help:"Skip the confirmation prompt."`
}

func (c *ProjectDeleteCmd) Run(ctx *cli.Context) error {
	project, err := ctx.Store.Project(c.ID)
	if err != nil {
		return fmt.Errorf("unknown project: %s", c.ID)
	}

	if !c.Force {
		fmt.Printf("Delete project %q? Its payments, expenses, and resources will be removed; tasks are kept. [y/N] ", project.Name)
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted")
			return nil
		}
	}

	if err := ctx.Store.DeleteProject(c.ID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	fmt.Printf("Deleted project %q\n", project.Name)
	return nil
}
