package entries

import (
	"fmt"

	"github.com/Akkumon/HealBit/internal/cli"
)

type DeleteCmd struct {
	ID string `arg:"" help:"Entry ID to delete."`
}

func (c *DeleteCmd) Run(ctx *cli.Context) error {
	// Entry and blob go together; deleting an id that is already gone from
	// either store is a no-op, not an error.
	if err := ctx.Store.DeleteEntry(c.ID); err != nil {
		return err
	}

	ctx.RefreshProfileCounters()

	fmt.Printf("Removed reflection %s\n", c.ID)
	return nil
}
