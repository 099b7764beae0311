package models

// TagCategory groups emotion tags by the kind of emotional work they name.
type TagCategory string

const (
	TagPositive   TagCategory = "positive"
	TagProcessing TagCategory = "processing"
	TagDifficult  TagCategory = "difficult"
)

// EmotionTag is one entry in the fixed tag taxonomy.
type EmotionTag struct {
	ID       string      `json:"id"`
	Label    string      `json:"label"`
	Category TagCategory `json:"category"`
}

var emotionTags = []EmotionTag{
	{ID: "grateful", Label: "Grateful", Category: TagPositive},
	{ID: "hopeful", Label: "Hopeful", Category: TagPositive},
	{ID: "peaceful", Label: "Peaceful", Category: TagPositive},
	{ID: "content", Label: "Content", Category: TagPositive},

	{ID: "reflective", Label: "Reflective", Category: TagProcessing},
	{ID: "uncertain", Label: "Uncertain", Category: TagProcessing},
	{ID: "contemplative", Label: "Contemplative", Category: TagProcessing},

	{ID: "heartbroken", Label: "Heartbroken", Category: TagDifficult},
	{ID: "lonely", Label: "Lonely", Category: TagDifficult},
	{ID: "overwhelmed", Label: "Overwhelmed", Category: TagDifficult},
	{ID: "frustrated", Label: "Frustrated", Category: TagDifficult},
}

var suggestedTagsByMood = map[Mood][]string{
	MoodJoy:     {"grateful", "hopeful", "content"},
	MoodCalm:    {"peaceful", "content", "reflective"},
	MoodHope:    {"hopeful", "grateful", "contemplative"},
	MoodSadness: {"heartbroken", "lonely", "reflective"},
	MoodAnger:   {"frustrated", "overwhelmed", "contemplative"},
	MoodNeutral: {"reflective", "uncertain", "contemplative"},
}

// AllTags returns the full tag taxonomy.
func AllTags() []EmotionTag {
	tags := make([]EmotionTag, len(emotionTags))
	copy(tags, emotionTags)
	return tags
}

// TagsByCategory returns the taxonomy entries in the given category.
func TagsByCategory(category TagCategory) []EmotionTag {
	var tags []EmotionTag
	for _, t := range emotionTags {
		if t.Category == category {
			tags = append(tags, t)
		}
	}
	return tags
}

// SuggestedTags returns the tags offered first for the given mood.
func SuggestedTags(mood Mood) []EmotionTag {
	ids, ok := suggestedTagsByMood[mood]
	if !ok {
		ids = suggestedTagsByMood[MoodNeutral]
	}
	var tags []EmotionTag
	for _, id := range ids {
		for _, t := range emotionTags {
			if t.ID == id {
				tags = append(tags, t)
			}
		}
	}
	return tags
}

// IsKnownTag reports whether id belongs to the tag taxonomy.
func IsKnownTag(id string) bool {
	for _, t := range emotionTags {
		if t.ID == id {
			return true
		}
	}
	return false
}
