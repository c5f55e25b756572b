package system

import (
	"fmt"
	"os"

	"github.com/julianstephens/tempo/internal/cli"
	"github.com/julianstephens/tempo/internal/transfer"
)

type ImportCmd struct {
	File  string `arg:"" help:"Export file to import."`
	Force bool   `short:"f" help:"Skip the confirmation prompt."`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("failed to read import file: %w", err)
	}

	current, err := ctx.Store.Provider().Snapshot()
	if err != nil {
		return fmt.Errorf("failed to read current state: %w", err)
	}

	next, err := transfer.Import(data, current)
	if err != nil {
		return err
	}

	if !c.Force {
		fmt.Print("Importing replaces the current data (a backup is taken first). Continue? [y/N] ")
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()

	if err := ctx.Store.Provider().Replace(next); err != nil {
		return fmt.Errorf("failed to apply import: %w", err)
	}

	fmt.Printf("Imported %d tasks, %d projects, %d events, %d notes\n",
		len(next.Tasks), len(next.Projects), len(next.Events), len(next.Notes))
	return nil
}
