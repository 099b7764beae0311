package entries

import (
	"fmt"

	"github.com/Akkumon/HealBit/internal/models"
)

type TagsCmd struct {
	Mood string `arg:"" optional:"" help:"Show the tags suggested for this mood instead of the full taxonomy."`
}

func (c *TagsCmd) Validate() error {
	if c.Mood != "" {
		if _, err := models.ParseMood(c.Mood); err != nil {
			return err
		}
	}
	return nil
}

func (c *TagsCmd) Run() error {
	if c.Mood != "" {
		mood, _ := models.ParseMood(c.Mood)
		fmt.Printf("Suggested tags for %s:\n", mood)
		for _, tag := range models.SuggestedTags(mood) {
			fmt.Printf("  %-14s %s\n", tag.ID, tag.Label)
		}
		return nil
	}

	for _, category := range []models.TagCategory{models.TagPositive, models.TagProcessing, models.TagDifficult} {
		fmt.Printf("%s:\n", category)
		for _, tag := range models.TagsByCategory(category) {
			fmt.Printf("  %-14s %s\n", tag.ID, tag.Label)
		}
	}

	return nil
}
