package system

import (
	"fmt"

	"github.com/julianstephens/tempo/internal/cli"
	"github.com/julianstephens/tempo/internal/storage"
)

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.Provider().(*storage.SQLiteStore)
	if !ok {
		// The JSON backend migrates its blob transparently on load
		fmt.Println("Nothing to do: the json backend migrates automatically on load")
		return nil
	}

	applied, err := sqliteStore.Migrate(func(msg string) {
		fmt.Println(msg)
	})
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if applied == 0 {
		fmt.Println("Schema is up to date")
	} else {
		fmt.Printf("Applied %d migration(s)\n", applied)
	}
	return nil
}
