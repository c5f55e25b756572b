package resources

import (
	"fmt"

	"github.com/julianstephens/tempo/internal/cli"
	"github.com/julianstephens/tempo/internal/keyring"
	"github.com/julianstephens/tempo/internal/models"
	"github.com/julianstephens/tempo/internal/store"
	"github.com/julianstephens/tempo/internal/validation"
)

type ResourceAddCmd struct {
	Project     string `arg:"" help:"Project ID."`
	Title       string `arg:"" help:"Resource title."`
	Type        string `short:"T" help:"Resource type (link|credentials|note|file)." default:"link"`
	URL         string `short:"u" help:"URL for link and file resources."`
	Username    string `help:"Username for credentials resources."`
	Password    string `help:"Password for credentials resources."`
	Keyring     bool   `help:"Store the password in the OS keyring instead of the data file."`
	Content     string `short:"c" help:"Body for note resources."`
	Description string `short:"d" help:"Description."`
}

func (c *ResourceAddCmd) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("title cannot be empty")
	}
	if !validResourceType(c.Type) {
		return fmt.Errorf("invalid resource type %q (expected link|credentials|note|file)", c.Type)
	}
	if err := validation.ValidateURL(c.URL); err != nil {
		return err
	}
	if c.Keyring && c.Password == "" {
		return fmt.Errorf("--keyring requires --password")
	}
	return nil
}

func (c *ResourceAddCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.Store.Project(c.Project); err != nil {
		return fmt.Errorf("unknown project: %s", c.Project)
	}

	if c.Keyring && !keyring.IsAvailable() {
		return fmt.Errorf("OS keyring is not available on this system")
	}

	input := store.ResourceInput{
		ProjectID:   c.Project,
		Type:        models.ResourceType(c.Type),
		Title:       c.Title,
		URL:         c.URL,
		Username:    c.Username,
		Password:    c.Password,
		InKeyring:   c.Keyring,
		Content:     c.Content,
		Description: c.Description,
	}
	if c.Keyring {
		// The secret goes to the keyring after the resource gets its id
		input.Password = ""
	}

	resource, err := ctx.Store.AddResource(input)
	if err != nil {
		return fmt.Errorf("failed to add resource: %w", err)
	}

	if c.Keyring {
		if err := keyring.SetResourceSecret(resource.ID, c.Password); err != nil {
			// Roll back so no resource claims a secret that was never stored
			if delErr := ctx.Store.DeleteResource(resource.ID); delErr != nil {
				return fmt.Errorf("failed to store secret (%v) and failed to roll back resource: %w", err, delErr)
			}
			return fmt.Errorf("failed to store secret in keyring: %w", err)
		}
	}

	fmt.Printf("Added resource %q (ID: %s)\n", resource.Title, resource.ID)
	return nil
}

func validResourceType(t string) bool {
	for _, known := range models.ResourceTypes {
		if models.ResourceType(t) == known {
			return true
		}
	}
	return false
}
