package storygen

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kidsmentor/portal/core/story"
	logsvc "github.com/kidsmentor/portal/services/logger"
)

func newTestService(t *testing.T, handler http.Handler) *Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc := NewService(srv.URL, srv.Client(), logsvc.NewConsoleLogger(log.New(io.Discard, "", 0)))
	svc.rnd = rand.New(rand.NewSource(1))
	return svc
}

func magicGarden() story.Prompt {
	return story.Prompt{
		ID:       "1",
		Title:    "The Magic Garden",
		Prompt:   "Once upon a time, there was a magical garden where the plants could talk...",
		Category: "Fantasy",
		AgeGroup: "3-5",
	}
}

func TestService_Generate_UsesAPIStarter(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/story/generate", func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Fantasy", req.Category)
		assert.Equal(t, "3-5", req.AgeGroup)
		_ = json.NewEncoder(w).Encode(generateResponse{
			StoryStarters: []string{"The garden gate creaked open."},
		})
	})
	svc := newTestService(t, mux)

	text := svc.Generate(context.Background(), magicGarden(), "dragons")

	assert.True(t, strings.HasPrefix(text, "The garden gate creaked open."))
	assert.Contains(t, text, "\n\ndragons\n\n")
	assert.True(t, strings.HasSuffix(text, "The End."))
}

func TestService_Generate_FallsBackOnFailure(t *testing.T) {
	svc := newTestService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))

	text := svc.Generate(context.Background(), magicGarden(), "dragons")

	want := "Once upon a time in a magical land, once upon a time, there was a magical garden where the plants could talk..."
	assert.True(t, strings.HasPrefix(text, want))
	assert.Contains(t, text, "dragons")
	assert.True(t, strings.HasSuffix(text, "The End."))
}

func TestService_Generate_EmptyStarterListFallsBack(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/story/generate", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(generateResponse{})
	})
	svc := newTestService(t, mux)

	text := svc.Generate(context.Background(), magicGarden(), "")
	assert.True(t, strings.HasPrefix(text, "Once upon a time in a magical land, "))
}

func TestFallbackStarter_Categories(t *testing.T) {
	tests := []struct {
		category string
		prefix   string
	}{
		{"Fantasy", "Once upon a time in a magical land, "},
		{"Adventure", "The explorer looked out at the vast unknown, "},
		{"Friendship", "Two friends sat together, sharing stories, "},
		{"Animals", "In the heart of the forest, the animals gathered, "},
		{"Space", "Among the stars and planets, "},
		{"Nature", "Under the tallest tree in the forest, "},
		{"Mystery", "Once upon a time, "},
	}
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			starter := fallbackStarter(story.Prompt{Category: tt.category, Prompt: "A Thing Happened."})
			assert.True(t, strings.HasPrefix(starter, tt.prefix))
			assert.Contains(t, starter, "a thing happened.")
		})
	}
}

func TestBuildStory_AgeBands(t *testing.T) {
	tests := []struct {
		name     string
		ageGroup string
		fragment string
	}{
		{"youngest band", "3-4", "like a rainbow after the rain"},
		{"middle band", "5-6", "teamwork and friendship can overcome any obstacle"},
		{"oldest band", "7-8", "every ending is just the beginning of a new story"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := buildStory("A start.", story.Prompt{AgeGroup: tt.ageGroup}, "")
			assert.Contains(t, text, tt.fragment)
			assert.True(t, strings.HasSuffix(text, "\n\nThe End."))
		})
	}
}

func TestBuildStory_NoDetails(t *testing.T) {
	text := buildStory("A start.", story.Prompt{AgeGroup: "5-6"}, "")
	assert.True(t, strings.HasPrefix(text, "A start.\n\n"))
}

func TestService_Generate_UnreachableHost(t *testing.T) {
	svc := NewService("http://127.0.0.1:1", &http.Client{}, logsvc.NewConsoleLogger(log.New(io.Discard, "", 0)))

	text := svc.Generate(context.Background(), magicGarden(), "dragons")
	assert.Contains(t, text, "dragons")
	assert.True(t, strings.HasSuffix(text, "The End."))
}
