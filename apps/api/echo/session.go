package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kidsmentor/portal/core"
	"github.com/kidsmentor/portal/core/store"
	"github.com/kidsmentor/portal/core/user"
)

type sessionAPI struct {
	store *store.Store
}

func registerSessionAPI(g *echo.Group, st *store.Store) {
	api := sessionAPI{store: st}

	sg := g.Group("/session")
	sg.POST("/login", api.login)
	sg.DELETE("", api.logout)
	sg.PATCH("/user", api.update)
	sg.GET("", api.current)
}

func (api *sessionAPI) login(ctx echo.Context) error {
	data := new(user.Login)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return err
	}

	if err := api.store.Dispatch(user.SetUser{User: data.User()}); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.store.UserState())
}

func (api *sessionAPI) logout(ctx echo.Context) error {
	if err := api.store.Dispatch(user.ClearUser{}); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *sessionAPI) update(ctx echo.Context) error {
	if !api.store.UserState().IsLoggedIn {
		return core.NewValidationError(nil, core.FieldError{Field: "session", Error: "not logged in"})
	}

	data := new(user.Patch)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := api.store.Dispatch(user.UpdateUserDetails{Patch: *data}); err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, api.store.UserState())
}

func (api *sessionAPI) current(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.store.UserState())
}
