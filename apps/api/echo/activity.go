package echoapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kidsmentor/portal/core"
	"github.com/kidsmentor/portal/core/activity"
	"github.com/kidsmentor/portal/core/store"
)

type activityAPI struct {
	store *store.Store
}

func registerActivityAPI(g *echo.Group, st *store.Store) {
	api := activityAPI{store: st}

	ag := g.Group("/activity")
	ag.GET("/entries", api.entryList)
	ag.POST("/entries", api.entryCreate)
	ag.PUT("/entries/:id", api.entryUpdate)
	ag.DELETE("/entries/:id", api.entryDelete)
	ag.GET("/children", api.childList)
	ag.POST("/children", api.childAdd)
}

func (api *activityAPI) entryList(ctx echo.Context) error {
	entries := api.store.ActivityState().Entries
	if date := core.CleanString(ctx.QueryParam("date")); date != "" {
		entries = activity.FilterByDate(entries, date)
	}
	return ctx.JSON(http.StatusOK, activity.SortByCreatedAtDesc(entries))
}

func (api *activityAPI) entryCreate(ctx echo.Context) error {
	data := new(activity.NewEntry)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	entry := data.Entry(activity.NewEntryID(), time.Now().UTC())
	if err := api.store.Dispatch(activity.AddEntry{Entry: entry}); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, entry)
}

func (api *activityAPI) entryUpdate(ctx echo.Context) error {
	id := ctx.Param("id")
	var existing activity.Entry
	var found bool
	for _, e := range api.store.ActivityState().Entries {
		if e.ID == id {
			existing, found = e, true
			break
		}
	}
	if !found {
		return errHTTPNotFound
	}

	data := new(activity.NewEntry)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	entry := data.Entry(id, existing.CreatedAt)
	if err := api.store.Dispatch(activity.UpdateEntry{Entry: entry}); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, entry)
}

func (api *activityAPI) entryDelete(ctx echo.Context) error {
	if err := api.store.Dispatch(activity.DeleteEntry{ID: ctx.Param("id")}); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *activityAPI) childList(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.store.ActivityState().Children)
}

func (api *activityAPI) childAdd(ctx echo.Context) error {
	data := new(struct {
		Name string `json:"name" validate:"required"`
	})
	if err := ctx.Bind(data); err != nil {
		return err
	}
	data.Name = core.CleanString(data.Name)
	if err := core.Validate.Struct(data); err != nil {
		return err
	}

	for _, name := range api.store.ActivityState().Children {
		if name == data.Name {
			return core.NewValidationError(nil, core.FieldError{Field: "name", Error: "this child is already on the roster"})
		}
	}

	if err := api.store.Dispatch(activity.AddChild{Name: data.Name}); err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, api.store.ActivityState().Children)
}
