package system

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/Akkumon/HealBit/internal/cli"
	"github.com/Akkumon/HealBit/internal/export"
)

type PurgeCmd struct {
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *PurgeCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		var confirmed bool
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Delete all healbit data?").
				Description("Every reflection, recording, setting, and your profile will be permanently removed from this device. This cannot be undone.").
				Value(&confirmed),
		))
		if err := form.Run(); err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Purge cancelled")
			return nil
		}
	}

	svc := export.NewService(ctx.Store)
	if err := svc.Purge(); err != nil {
		// State may be indeterminate; purging again is safe.
		return fmt.Errorf("purge incomplete, please retry: %w", err)
	}

	fmt.Println("All data permanently removed from this device")
	return nil
}
