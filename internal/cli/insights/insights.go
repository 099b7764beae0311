package insights

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/Akkumon/HealBit/internal/analytics"
	"github.com/Akkumon/HealBit/internal/cli"
	"github.com/Akkumon/HealBit/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))
)

type StreakCmd struct{}

func (c *StreakCmd) Run(ctx *cli.Context) error {
	entries, err := ctx.Store.GetAllEntries()
	if err != nil {
		return err
	}

	streak := analytics.DailyStreak(entries, time.Now())
	switch streak {
	case 0:
		fmt.Println("No active streak. Today is a good day to start one.")
	case 1:
		fmt.Println("1 day streak")
	default:
		fmt.Printf("%d day streak\n", streak)
	}

	return nil
}

type MoodsCmd struct{}

func (c *MoodsCmd) Run(ctx *cli.Context) error {
	entries, err := ctx.Store.GetAllEntries()
	if err != nil {
		return err
	}

	frequency := analytics.MoodFrequency(entries)
	if len(frequency) == 0 {
		fmt.Println("No reflections yet")
		return nil
	}

	max := 0
	for _, count := range frequency {
		if count > max {
			max = count
		}
	}

	fmt.Println(titleStyle.Render("Mood frequency"))
	for _, mood := range models.AllMoods {
		count := frequency[mood]
		if count == 0 {
			continue
		}
		bar := barStyle.Render(strings.Repeat("█", count*20/max))
		fmt.Printf("  %-8s %s %d\n", mood, bar, count)
	}

	return nil
}

type SentimentCmd struct{}

func (c *SentimentCmd) Run(ctx *cli.Context) error {
	entries, err := ctx.Store.GetAllEntries()
	if err != nil {
		return err
	}

	data := analytics.SentimentTrend(entries, time.Now(), nil)

	fmt.Println(titleStyle.Render("Weekly sentiment"))
	fmt.Printf("  Score:   %d/5 (weekly average %.1f)\n", data.Score, data.WeeklyAverage)
	fmt.Printf("  Trend:   %s\n", data.Trend)
	fmt.Printf("  %s\n", dimStyle.Render(data.Message))

	return nil
}

type AvatarCmd struct{}

func (c *AvatarCmd) Run(ctx *cli.Context) error {
	entries, err := ctx.Store.GetAllEntries()
	if err != nil {
		return err
	}

	evolution := analytics.ComputeEvolution(entries, time.Now())

	fmt.Println(titleStyle.Render("Avatar evolution"))
	printDimension("Complexity", evolution.Complexity)
	printDimension("Emotional state", evolution.EmotionalState)
	printDimension("Openness", evolution.Openness)
	printDimension("Glow", evolution.GlowIntensity)

	return nil
}

func printDimension(name string, value float64) {
	filled := int(value * 20)
	bar := barStyle.Render(strings.Repeat("█", filled)) + dimStyle.Render(strings.Repeat("░", 20-filled))
	fmt.Printf("  %-16s %s %.2f\n", name, bar, value)
}
