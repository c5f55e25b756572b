package backups

import (
	"fmt"
	"path/filepath"

	"github.com/julianstephens/tempo/internal/backup"
	"github.com/julianstephens/tempo/internal/cli"
)

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.Provider().GetDataPath())
	path, err := mgr.Create()
	if err != nil {
		return fmt.Errorf("failed to create backup: %w", err)
	}

	fmt.Printf("Created backup: %s\n", filepath.Base(path))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.Provider().GetDataPath())
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		fmt.Println("No backups found")
		return nil
	}

	fmt.Printf("Backups in %s:\n", mgr.BackupDir())
	for _, b := range backups {
		fmt.Printf("  %s  %s  %d bytes\n",
			filepath.Base(b.Path), b.Timestamp.Format("2006-01-02 15:04"), b.Size)
	}
	return nil
}

type BackupRestoreCmd struct {
	File  string `arg:"" help:"Backup filename (as shown by 'tempo backup list') or full path."`
	Force bool   `short:"f" help:"Skip the confirmation prompt."`
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.Provider().GetDataPath())

	path := c.File
	if filepath.Dir(path) == "." {
		path = filepath.Join(mgr.BackupDir(), path)
	}

	if !c.Force {
		fmt.Printf("Restore %s over the current data file? [y/N] ", filepath.Base(path))
		var answer string
		fmt.Scanln(&answer)
		if answer != "y" && answer != "Y" {
			fmt.Println("Aborted")
			return nil
		}
	}

	if err := mgr.Restore(path); err != nil {
		return fmt.Errorf("failed to restore backup: %w", err)
	}

	fmt.Println("Restore complete")
	return nil
}
