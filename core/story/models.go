package story

import (
	"time"

	"github.com/kidsmentor/portal/core"
)

// Prompt is a story starter idea presented to the class.
// Prompts are immutable once created; identity is the ID field.
type Prompt struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Prompt   string `json:"prompt"`
	Category string `json:"category"`
	AgeGroup string `json:"ageGroup"`
}

// Generated is a story saved from the authoring flow, either hand-written or
// AI-generated. PromptID optionally links back to the originating Prompt;
// stories saved before the link existed carry an empty PromptID and can only
// be matched to a prompt by field equality.
type Generated struct {
	ID        string    `json:"id"`
	PromptID  string    `json:"promptId,omitempty"`
	Title     string    `json:"title"`
	Prompt    string    `json:"prompt"`
	Category  string    `json:"category"`
	AgeGroup  string    `json:"ageGroup"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

var (
	Categories = []string{
		"Fantasy", "Adventure", "Friendship", "Animals", "Space", "Nature", "Fairytale", "Mystery",
	}

	AgeGroups = []string{"3-4", "4-5", "5-6", "6-7", "7-8"}
)

// DefaultPrompts returns the fixed seed set loaded at startup.
func DefaultPrompts() []Prompt {
	return []Prompt{
		{
			ID:       "1",
			Title:    "The Magic Garden",
			Prompt:   "Once upon a time, there was a magical garden where the plants could talk...",
			Category: "Fantasy",
			AgeGroup: "3-5",
		},
		{
			ID:       "2",
			Title:    "Space Adventure",
			Prompt:   "The spaceship landed on a planet where everything was made of candy...",
			Category: "Adventure",
			AgeGroup: "4-6",
		},
		{
			ID:       "3",
			Title:    "The Friendly Monster",
			Prompt:   "Under the bed lived a monster who just wanted to make friends...",
			Category: "Friendship",
			AgeGroup: "3-4",
		},
	}
}

// NewPrompt contains information needed to author a new Prompt.
type NewPrompt struct {
	Title    string `json:"title" validate:"required"`
	Prompt   string `json:"prompt" validate:"required"`
	Category string `json:"category" validate:"required"`
	AgeGroup string `json:"ageGroup" validate:"required"`
}

func (np *NewPrompt) Validate() error {
	np.Title = core.CleanString(np.Title)
	np.Prompt = core.CleanString(np.Prompt)
	np.Category = core.CleanString(np.Category)
	np.AgeGroup = core.CleanString(np.AgeGroup)
	return core.Validate.Struct(np)
}

// NewStory contains information needed to save a story for a prompt.
type NewStory struct {
	PromptID string `json:"promptId"`
	Title    string `json:"title" validate:"required"`
	Prompt   string `json:"prompt" validate:"required"`
	Category string `json:"category"`
	AgeGroup string `json:"ageGroup"`
	Content  string `json:"content" validate:"required"`
}

func (ns *NewStory) Validate() error {
	ns.Title = core.CleanString(ns.Title)
	ns.Content = core.CleanString(ns.Content)
	return core.Validate.Struct(ns)
}
