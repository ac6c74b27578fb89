package main

import (
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kidsmentor/portal/core/store"
	"github.com/kidsmentor/portal/core/story"
	logsvc "github.com/kidsmentor/portal/services/logger"
	"github.com/kidsmentor/portal/storage/kv"
	"github.com/kidsmentor/portal/storage/kv/memkv"
)

func newSeedFixture(t *testing.T) (*store.Store, *story.Library, *kv.Bridge) {
	t.Helper()
	logger := logsvc.NewConsoleLogger(log.New(io.Discard, "", 0))
	bridge := kv.NewBridge(memkv.Open(), logger)
	return store.New(bridge, logger), story.NewLibrary(bridge), bridge
}

func TestSeedPrompts_BuiltInDefaults(t *testing.T) {
	st, library, bridge := newSeedFixture(t)

	seedPrompts(st, library, bridge)

	assert.Equal(t, story.DefaultPrompts(), st.StoryState().Prompts)
}

func TestSeedPrompts_PrefersCuratedSet(t *testing.T) {
	st, library, bridge := newSeedFixture(t)
	curated := []story.Prompt{
		{ID: "c1", Title: "The Rainy Day", Prompt: "Rain drummed on the roof...", Category: "Nature", AgeGroup: "4-5"},
		{ID: "c2", Title: "Lost Mitten", Prompt: "A mitten lay alone in the snow...", Category: "Friendship", AgeGroup: "3-4"},
	}
	bridge.Save(story.DefaultPromptsKey, curated)

	seedPrompts(st, library, bridge)

	assert.Equal(t, curated, st.StoryState().Prompts)
}

func TestSeedPrompts_SavedStoriesRebuiltOnTop(t *testing.T) {
	st, library, bridge := newSeedFixture(t)
	library.Save(story.Generated{
		Title:    "The Moon Picnic",
		Prompt:   "The class packed sandwiches for the moon...",
		Category: "Space",
		AgeGroup: "5-6",
		Content:  "It was the best picnic ever.",
	})

	seedPrompts(st, library, bridge)

	prompts := st.StoryState().Prompts
	require.Len(t, prompts, len(story.DefaultPrompts())+1)
	assert.Equal(t, "The Moon Picnic", prompts[len(prompts)-1].Title)
}

func TestSeedPrompts_EmptyCuratedSetIgnored(t *testing.T) {
	st, library, bridge := newSeedFixture(t)
	bridge.Save(story.DefaultPromptsKey, []story.Prompt{})

	seedPrompts(st, library, bridge)

	assert.Equal(t, story.DefaultPrompts(), st.StoryState().Prompts)
}
