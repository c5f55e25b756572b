package system

import (
	"fmt"
	"time"

	"github.com/julianstephens/tempo/internal/cli"
	"github.com/julianstephens/tempo/internal/transfer"
)

type ExportCmd struct {
	Output string `short:"o" help:"Output file. Defaults to tempo-export-YYYY-MM-DD.json in the current directory."`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	path := c.Output
	if path == "" {
		path = transfer.ExportFileName(time.Now())
	}

	state, err := ctx.Store.Provider().Snapshot()
	if err != nil {
		return fmt.Errorf("failed to read state: %w", err)
	}

	if err := transfer.Export(state, path); err != nil {
		return err
	}

	fmt.Printf("Exported %d tasks, %d projects, %d events, %d notes to %s\n",
		len(state.Tasks), len(state.Projects), len(state.Events), len(state.Notes), path)
	return nil
}
