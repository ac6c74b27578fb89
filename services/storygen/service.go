// Package storygen is the adapter for the external story generation API.
// Generation never fails from the caller's point of view: any API failure
// degrades to a deterministic category-keyed template story, so the class
// always gets a story.
package storygen

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/kidsmentor/portal/core"
	"github.com/kidsmentor/portal/core/story"
)

type (
	generateRequest struct {
		Theme          string   `json:"theme"`
		AgeGroup       string   `json:"age_group"`
		Category       string   `json:"category"`
		CharacterIdeas []string `json:"character_ideas"`
		StartingPhrase string   `json:"starting_phrase"`
	}

	generateResponse struct {
		StoryStarters []string `json:"storyStarters"`
	}
)

type Service struct {
	baseURL string
	client  *http.Client
	log     core.Logger
	rnd     *rand.Rand
}

func NewService(baseURL string, client *http.Client, log core.Logger) *Service {
	return &Service{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		log:     log,
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Generate produces story text for the prompt, weaving in the free-text
// details. The returned string is never empty and Generate never errors.
func (svc *Service) Generate(ctx context.Context, prompt story.Prompt, details string) string {
	starters, err := svc.fetchStarters(ctx, prompt, details)
	if err != nil {
		svc.log.Warn("storygen: falling back to template story", err)
		return buildStory(fallbackStarter(prompt), prompt, details)
	}
	starter := starters[svc.rnd.Intn(len(starters))]
	return buildStory(starter, prompt, details)
}

func (svc *Service) fetchStarters(ctx context.Context, prompt story.Prompt, details string) ([]string, error) {
	body, err := json.Marshal(generateRequest{
		Theme:          prompt.Prompt,
		AgeGroup:       prompt.AgeGroup,
		Category:       prompt.Category,
		CharacterIdeas: []string{},
		StartingPhrase: details,
	})
	if err != nil {
		return nil, errors.Wrap(err, "storygen: marshaling request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, svc.baseURL+"/api/story/generate", bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "storygen: building request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := svc.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "storygen: calling generation API")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Errorf("storygen: API error: %d", resp.StatusCode)
	}

	var data generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, errors.Wrap(err, "storygen: parsing response")
	}
	if len(data.StoryStarters) == 0 {
		return nil, errors.New("storygen: no story starters returned from the API")
	}
	return data.StoryStarters, nil
}

// buildStory wraps a starter with the caller's details, an age-banded
// continuation paragraph, and a closing line.
func buildStory(starter string, prompt story.Prompt, details string) string {
	var ageContent string
	switch {
	case strings.Contains(prompt.AgeGroup, "3") || strings.Contains(prompt.AgeGroup, "4"):
		ageContent = "\n\nThe colors were bright and beautiful, like a rainbow after the rain. There were many smiles and laughter throughout the day. Everyone learned that being kind and brave makes the world a better place."
	case strings.Contains(prompt.AgeGroup, "5") || strings.Contains(prompt.AgeGroup, "6"):
		ageContent = "\n\nAs the adventure continued, everyone discovered they each had special talents to contribute. They worked together to solve problems, showing that teamwork and friendship can overcome any obstacle. The day ended with a celebration and promises of more adventures to come."
	default:
		ageContent = "\n\nThe journey taught valuable lessons about courage, friendship, and believing in yourself. Through challenges and triumphs, the characters grew stronger and wiser, understanding that every ending is just the beginning of a new story."
	}

	detailsSection := "\n\n"
	if details != "" {
		detailsSection = "\n\n" + details + "\n\n"
	}

	return starter + detailsSection + ageContent + "\n\nThe End."
}

// fallbackStarter keys a template starter off the prompt category,
// interpolating the lower-cased prompt text.
func fallbackStarter(prompt story.Prompt) string {
	text := strings.ToLower(prompt.Prompt)
	switch prompt.Category {
	case "Fantasy":
		return "Once upon a time in a magical land, " + text + " The adventure was just beginning..."
	case "Adventure":
		return "The explorer looked out at the vast unknown, " + text + " What amazing discoveries awaited?"
	case "Friendship":
		return "Two friends sat together, sharing stories, " + text + " Their friendship was special in so many ways."
	case "Animals":
		return "In the heart of the forest, the animals gathered, " + text + " Each one had something important to share."
	case "Space":
		return "Among the stars and planets, " + text + " The space journey had just begun."
	case "Nature":
		return "Under the tallest tree in the forest, " + text + " Nature had many secrets to reveal."
	}
	return "Once upon a time, " + text + " It was the beginning of a wonderful story..."
}
