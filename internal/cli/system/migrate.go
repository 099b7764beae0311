package system

import (
	"fmt"

	"github.com/Akkumon/HealBit/internal/cli"
	"github.com/Akkumon/HealBit/internal/migration"
	"github.com/Akkumon/HealBit/internal/storage/sqlite"
)

type MigrateCmd struct {
	Status bool `help:"Show current and target schema versions without migrating."`
}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	store, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return fmt.Errorf("migrate requires the sqlite storage backend")
	}

	if err := store.Load(); err != nil {
		return err
	}

	if c.Status {
		subFS, err := store.MigrationFS()
		if err != nil {
			return err
		}
		runner := migration.NewRunner(store.GetDB(), subFS)
		current, err := runner.CurrentVersion()
		if err != nil {
			return err
		}
		latest, err := runner.LatestVersion()
		if err != nil {
			return err
		}
		fmt.Printf("Schema version: %d (latest available: %d)\n", current, latest)
		return nil
	}

	subFS, err := store.MigrationFS()
	if err != nil {
		return err
	}
	applied, err := migration.NewRunner(store.GetDB(), subFS).Apply(func(msg string) {
		fmt.Println(msg)
	})
	if err != nil {
		return err
	}
	fmt.Printf("Applied %d migration(s)\n", applied)

	return nil
}
