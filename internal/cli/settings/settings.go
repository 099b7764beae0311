package settings

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Akkumon/HealBit/internal/cli"
	"github.com/Akkumon/HealBit/internal/constants"
)

// settingKeys maps the short names users type to the namespaced storage keys.
var settingKeys = map[string]string{
	"last-mood":           constants.SettingLastMood,
	"user-name":           constants.SettingUserName,
	"onboarding-complete": constants.SettingOnboardingComplete,
	"session-mood":        constants.SettingSessionMood,
	"session-emotions":    constants.SettingSessionEmotions,
	"current-prompt":      constants.SettingCurrentPrompt,
}

type SettingsCmd struct {
	Get  GetCmd  `cmd:"" help:"Show a setting value."`
	Set  SetCmd  `cmd:"" help:"Set a setting value."`
	List ListCmd `cmd:"" help:"List all settings." default:"1"`
}

type GetCmd struct {
	Key string `arg:"" help:"Setting name."`
}

func (c *GetCmd) Run(ctx *cli.Context) error {
	key, ok := settingKeys[c.Key]
	if !ok {
		return fmt.Errorf("unknown setting: %q (expected one of %s)", c.Key, knownKeys())
	}

	value, err := ctx.Store.GetSetting(key)
	if err != nil {
		return err
	}
	if value == "" {
		fmt.Printf("%s is not set\n", c.Key)
		return nil
	}

	fmt.Println(value)
	return nil
}

type SetCmd struct {
	Key   string `arg:"" help:"Setting name."`
	Value string `arg:"" help:"New value."`
}

func (c *SetCmd) Run(ctx *cli.Context) error {
	key, ok := settingKeys[c.Key]
	if !ok {
		return fmt.Errorf("unknown setting: %q (expected one of %s)", c.Key, knownKeys())
	}

	if err := ctx.Store.SetSetting(key, c.Value); err != nil {
		return err
	}

	fmt.Printf("Set %s\n", c.Key)
	return nil
}

type ListCmd struct{}

func (c *ListCmd) Run(ctx *cli.Context) error {
	stored, err := ctx.Store.ListSettings()
	if err != nil {
		return err
	}

	names := make([]string, 0, len(settingKeys))
	for name := range settingKeys {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("Settings:")
	for _, name := range names {
		value := stored[settingKeys[name]]
		if value == "" {
			value = "(not set)"
		}
		fmt.Printf("  %-20s %s\n", name, value)
	}

	return nil
}

func knownKeys() string {
	names := make([]string, 0, len(settingKeys))
	for name := range settingKeys {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
