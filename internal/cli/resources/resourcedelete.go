package resources

import (
	"fmt"

	"github.com/julianstephens/tempo/internal/cli"
	"github.com/julianstephens/tempo/internal/keyring"
	"github.com/julianstephens/tempo/internal/logger"
)

type ResourceDeleteCmd struct {
	ID string `arg:"" help:"Resource ID."`
}

func (c *ResourceDeleteCmd) Run(ctx *cli.Context) error {
	resource, err := ctx.Store.Resource(c.ID)
	if err != nil {
		return fmt.Errorf("unknown resource: %s", c.ID)
	}

	if err := ctx.Store.DeleteResource(c.ID); err != nil {
		return fmt.Errorf("failed to delete resource: %w", err)
	}

	if resource.InKeyring {
		if err := keyring.DeleteResourceSecret(resource.ID); err != nil && err != keyring.ErrNotFound {
			logger.Warn("Failed to remove secret from keyring", "resource", resource.ID, "error", err)
		}
	}

	fmt.Printf("Deleted resource %q\n", resource.Title)
	return nil
}
