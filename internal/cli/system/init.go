package system

import (
	"fmt"
	"os"
	"time"

	"github.com/Akkumon/HealBit/internal/cli"
	"github.com/Akkumon/HealBit/internal/constants"
	"github.com/Akkumon/HealBit/internal/models"
)

type InitCmd struct {
	Force bool   `help:"Force reset by deleting existing database before initialization."`
	Name  string `help:"Display name to record in the profile."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		if _, err := os.Stat(dbPath); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized healbit storage at: %s\n", ctx.Store.GetConfigPath())

	profile, err := ctx.Store.GetProfile()
	if err != nil {
		return err
	}
	if profile == nil {
		profile = &models.UserProfile{
			Name:     c.Name,
			JoinDate: time.Now().UTC(),
		}
		if err := ctx.Store.SaveProfile(*profile); err != nil {
			return fmt.Errorf("failed to save initial profile: %w", err)
		}
	}

	if c.Name != "" {
		if err := ctx.Store.SetSetting(constants.SettingUserName, c.Name); err != nil {
			return err
		}
	}
	if err := ctx.Store.SetSetting(constants.SettingOnboardingComplete, "true"); err != nil {
		return err
	}

	return nil
}
