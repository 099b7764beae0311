package exports

import (
	"fmt"
	"time"

	"github.com/Akkumon/HealBit/internal/cli"
	"github.com/Akkumon/HealBit/internal/export"
)

type ExportCmd struct {
	Mode string `short:"m" help:"Export mode (full|entries-only|metadata-only)." default:"full"`
	Dir  string `short:"o" help:"Directory to write the export file into." default:"."`
}

func (c *ExportCmd) Validate() error {
	_, err := export.ParseMode(c.Mode)
	return err
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	mode, _ := export.ParseMode(c.Mode)

	svc := export.NewService(ctx.Store)
	doc, err := svc.Export(mode, time.Now().UTC())
	if err != nil {
		return err
	}

	path, err := svc.WriteFile(doc, c.Dir)
	if err != nil {
		return err
	}

	fmt.Printf("Exported %d entries (%s) to %s\n", doc.Metadata.TotalEntries, mode, path)
	return nil
}

type ImportCmd struct {
	File string `arg:"" help:"Path to a healbit export file." type:"existingfile"`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	doc, err := export.ReadFile(c.File)
	if err != nil {
		return err
	}

	svc := export.NewService(ctx.Store)
	imported, err := svc.Import(doc)
	if err != nil {
		return err
	}

	ctx.RefreshProfileCounters()

	fmt.Printf("Imported %d entries from %s\n", imported, c.File)
	return nil
}
