package entries

import (
	"fmt"

	"github.com/Akkumon/HealBit/internal/cli"
)

type TranscriptCmd struct {
	ID   string `arg:"" help:"Entry ID."`
	Text string `arg:"" help:"Replacement transcript text."`
}

func (c *TranscriptCmd) Run(ctx *cli.Context) error {
	// A manual edit overrides whatever the transcriber produced, so the
	// stored confidence becomes 1.0.
	if err := ctx.Store.UpdateTranscript(c.ID, c.Text); err != nil {
		return err
	}

	fmt.Printf("Updated transcript for %s\n", c.ID)
	return nil
}
