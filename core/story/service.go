package story

import (
	"time"

	"github.com/google/uuid"
)

// Storage keys owned by the story domain.
const (
	// SavedStoriesKey holds the saved stories list.
	SavedStoriesKey = "kidsmentor_saved_stories"

	// DefaultPromptsKey holds an admin-curated prompt set; when present it
	// replaces the built-in defaults at startup.
	DefaultPromptsKey = "kidsmentor_default_prompts"
)

// Storage is the best-effort persistence bridge the library writes through.
// Loads report only success; failures have already been logged and degraded.
type Storage interface {
	Load(key string, dst interface{}) bool
	Save(key string, v interface{})
}

// Library manages the saved stories collection. Saved stories are persisted
// independently of the composed state tree, under their own storage key.
type Library struct {
	store Storage
}

func NewLibrary(store Storage) *Library {
	return &Library{store: store}
}

// All returns every saved story, oldest first. Storage failures degrade to
// an empty list.
func (lib *Library) All() []Generated {
	var stories []Generated
	if !lib.store.Load(SavedStoriesKey, &stories) {
		return []Generated{}
	}
	return stories
}

// Save appends a story to the library, assigning a fresh id and creation
// timestamp when none were supplied, and returns the stored story. The write
// is best-effort: the story is returned even if persistence failed.
func (lib *Library) Save(story Generated) Generated {
	if story.ID == "" {
		story.ID = uuid.NewString()
	}
	if story.CreatedAt.IsZero() {
		story.CreatedAt = time.Now().UTC()
	}
	stories := append(lib.All(), story)
	lib.store.Save(SavedStoriesKey, stories)
	return story
}

// Delete removes a saved story by id. Unknown ids are a no-op.
func (lib *Library) Delete(id string) {
	stories := lib.All()
	kept := make([]Generated, 0, len(stories))
	for _, st := range stories {
		if st.ID != id {
			kept = append(kept, st)
		}
	}
	lib.store.Save(SavedStoriesKey, kept)
}

// Prompts rebuilds story prompts from the saved stories, skipping story ids
// already present in `existing`. A rebuilt prompt gets a freshly generated
// id, so a prompt reconstructed this way has no stable identity across runs;
// stories with a PromptID keep that link instead.
func (lib *Library) Prompts(existing []Prompt) []Prompt {
	seen := make(map[string]bool, len(existing))
	for _, p := range existing {
		seen[p.ID] = true
	}

	var prompts []Prompt
	for _, st := range lib.All() {
		if seen[st.ID] {
			continue
		}
		prompts = append(prompts, Prompt{
			ID:       uuid.NewString(),
			Title:    st.Title,
			Prompt:   st.Prompt,
			Category: st.Category,
			AgeGroup: st.AgeGroup,
		})
	}
	return prompts
}
