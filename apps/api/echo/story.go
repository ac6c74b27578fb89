package echoapi

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/kidsmentor/portal/core"
	"github.com/kidsmentor/portal/core/store"
	"github.com/kidsmentor/portal/core/story"
	"github.com/kidsmentor/portal/services/storygen"
)

type storyAPI struct {
	store   *store.Store
	library *story.Library
	gen     *storygen.Service
}

func registerStoryAPI(g *echo.Group, st *store.Store, lib *story.Library, gen *storygen.Service) {
	api := storyAPI{store: st, library: lib, gen: gen}

	pg := g.Group("/prompts")
	pg.GET("", api.promptList)
	pg.POST("", api.promptCreate)
	pg.DELETE("/:id", api.promptDelete)
	pg.POST("/:id/select", api.promptSelect)

	g.PUT("/story/draft", api.draftUpdate)
	g.POST("/story/generate", api.generate)

	sg := g.Group("/stories")
	sg.GET("", api.storyList)
	sg.POST("", api.storySave)
	sg.DELETE("/:id", api.storyDelete)
}

func (api *storyAPI) promptList(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.store.StoryState().Prompts)
}

func (api *storyAPI) promptCreate(ctx echo.Context) error {
	data := new(story.NewPrompt)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	prompt := story.Prompt{
		ID:       uuid.NewString(),
		Title:    data.Title,
		Prompt:   data.Prompt,
		Category: data.Category,
		AgeGroup: data.AgeGroup,
	}
	if err := api.store.Dispatch(story.AddPrompt{Prompt: prompt}); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, prompt)
}

func (api *storyAPI) promptDelete(ctx echo.Context) error {
	if err := api.store.Dispatch(story.RemovePrompt{ID: ctx.Param("id")}); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *storyAPI) promptSelect(ctx echo.Context) error {
	id := ctx.Param("id")
	for _, p := range api.store.StoryState().Prompts {
		if p.ID == id {
			prompt := p
			if err := api.store.Dispatch(story.SetSelectedPrompt{Prompt: &prompt}); err != nil {
				return err
			}
			return ctx.JSON(http.StatusOK, api.store.StoryState())
		}
	}
	return errHTTPNotFound
}

func (api *storyAPI) draftUpdate(ctx echo.Context) error {
	data := new(struct {
		Text string `json:"text"`
	})
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := api.store.Dispatch(story.SetUserStory{Text: data.Text}); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *storyAPI) generate(ctx echo.Context) error {
	data := new(struct {
		AdditionalDetails string `json:"additionalDetails"`
	})
	if err := ctx.Bind(data); err != nil {
		return err
	}

	selected := api.store.StoryState().SelectedPrompt
	if selected == nil {
		return core.NewValidationError(nil, core.FieldError{Field: "prompt", Error: "select a prompt first"})
	}

	if err := api.store.Dispatch(story.SetGenerating{Generating: true}); err != nil {
		return err
	}
	content := api.gen.Generate(ctx.Request().Context(), *selected, data.AdditionalDetails)
	if err := api.store.Dispatch(story.SetAIGeneratedStory{Text: content}); err != nil {
		return err
	}
	if err := api.store.Dispatch(story.SetGenerating{Generating: false}); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, echo.Map{"content": content})
}

func (api *storyAPI) storyList(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.library.All())
}

func (api *storyAPI) storySave(ctx echo.Context) error {
	data := new(story.NewStory)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	saved := api.library.Save(story.Generated{
		PromptID: data.PromptID,
		Title:    data.Title,
		Prompt:   data.Prompt,
		Category: data.Category,
		AgeGroup: data.AgeGroup,
		Content:  data.Content,
	})
	if err := api.store.Dispatch(story.SaveStory{Story: saved}); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, saved)
}

func (api *storyAPI) storyDelete(ctx echo.Context) error {
	id := ctx.Param("id")
	api.library.Delete(id)
	if err := api.store.Dispatch(story.RemoveSavedStory{ID: id}); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}
