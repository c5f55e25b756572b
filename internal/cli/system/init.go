package system

import (
	"fmt"

	"github.com/julianstephens/tempo/internal/cli"
)

type InitCmd struct{}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Provider().Init(); err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	fmt.Printf("Initialized tempo storage at %s\n", ctx.Store.Provider().GetDataPath())
	return nil
}
