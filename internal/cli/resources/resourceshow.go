package resources

import (
	"fmt"

	"github.com/julianstephens/tempo/internal/cli"
	"github.com/julianstephens/tempo/internal/keyring"
	"github.com/julianstephens/tempo/internal/models"
)

type ResourceShowCmd struct {
	ID         string `arg:"" help:"Resource ID."`
	ShowSecret bool   `help:"Print the stored password." name:"show-secret"`
}

func (c *ResourceShowCmd) Run(ctx *cli.Context) error {
	resource, err := ctx.Store.Resource(c.ID)
	if err != nil {
		return fmt.Errorf("unknown resource: %s", c.ID)
	}

	fmt.Println(cli.TitleStyle.Render(resource.Title))
	fmt.Printf("ID:      %s\n", resource.ID)
	fmt.Printf("Type:    %s\n", resource.Type)
	if resource.URL != "" {
		fmt.Printf("URL:     %s\n", resource.URL)
	}
	if resource.Username != "" {
		fmt.Printf("User:    %s\n", resource.Username)
	}
	if resource.Description != "" {
		fmt.Printf("About:   %s\n", resource.Description)
	}
	if resource.Content != "" {
		fmt.Println()
		fmt.Println(resource.Content)
	}

	if resource.Type == models.ResourceCredentials {
		if !c.ShowSecret {
			fmt.Println("Secret:  (hidden, use --show-secret)")
			return nil
		}

		secret := resource.Password
		if resource.InKeyring {
			secret, err = keyring.GetResourceSecret(resource.ID)
			if err != nil {
				return fmt.Errorf("failed to read secret from keyring: %w", err)
			}
		}
		fmt.Printf("Secret:  %s\n", secret)
	}

	return nil
}
