package main

import (
	"log"
	"net/http"
	"os"

	"github.com/kidsmentor/portal/apps"
	echoapi "github.com/kidsmentor/portal/apps/api/echo"
	"github.com/kidsmentor/portal/core"
	"github.com/kidsmentor/portal/core/store"
	"github.com/kidsmentor/portal/core/story"
	"github.com/kidsmentor/portal/services/chat"
	"github.com/kidsmentor/portal/services/lesson"
	logsvc "github.com/kidsmentor/portal/services/logger"
	"github.com/kidsmentor/portal/services/realtime"
	"github.com/kidsmentor/portal/services/storygen"
	"github.com/kidsmentor/portal/storage/kv"
)

func main() {
	std := log.New(os.Stdout, "PORTAL : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// set up logger
	var logger core.Logger
	if core.Conf.GetBool("debug") || core.Conf.GetString("rollbarToken") == "" {
		logger = logsvc.NewConsoleLogger(std)
	} else {
		logger = logsvc.NewRollbarLogger(std)
	}

	// set up storage
	backend, err := apps.OpenKV()
	if err != nil {
		logger.Fatal("opening storage", err)
	}
	defer backend.Close()
	bridge := kv.NewBridge(backend, logger)

	// set up state + services
	st := store.New(bridge, logger)
	library := story.NewLibrary(bridge)
	seedPrompts(st, library, bridge)

	baseURL := core.Conf.GetString("apiBaseURL")
	client := &http.Client{Timeout: core.Conf.GetDuration("httpTimeout")}
	lessonSvc := lesson.NewService(baseURL, client, bridge, logger)
	storySvc := storygen.NewService(baseURL, client, logger)
	chatSvc := chat.NewService(baseURL, client)

	// start portal server
	app := echoapi.NewServer(&echoapi.Options{
		Address:   core.Conf.GetString("address"),
		Store:     st,
		Library:   library,
		LessonSvc: lessonSvc,
		StorySvc:  storySvc,
		ChatSvc:   chatSvc,
		GradeFeed: realtime.NewSimulatedGradeFeed(core.Conf.GetDuration("gradeFeedInterval"), nil),
		NewScanner: func() realtime.FaceScanner {
			return realtime.NewSimulatedFaceScanner(core.Conf.GetDuration("faceScanInterval"), nil)
		},
		Logger: logger,
	})
	app.Start()
}

// seedPrompts loads the default prompt set plus prompts rebuilt from saved
// stories into the story slice. An admin-curated set stored under
// story.DefaultPromptsKey replaces the built-in defaults.
func seedPrompts(st *store.Store, library *story.Library, bridge *kv.Bridge) {
	prompts := story.DefaultPrompts()
	var curated []story.Prompt
	if bridge.Load(story.DefaultPromptsKey, &curated) && len(curated) > 0 {
		prompts = curated
	}
	prompts = append(prompts, library.Prompts(prompts)...)
	_ = st.Dispatch(story.SetPrompts{Prompts: prompts})
}
