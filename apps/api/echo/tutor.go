package echoapi

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/kidsmentor/portal/core"
	"github.com/kidsmentor/portal/services/chat"
	"github.com/kidsmentor/portal/services/lesson"
)

type tutorAPI struct {
	lessonSvc *lesson.Service
	chatSvc   *chat.Service
}

func registerTutorAPI(g *echo.Group, lessonSvc *lesson.Service, chatSvc *chat.Service) {
	api := tutorAPI{lessonSvc: lessonSvc, chatSvc: chatSvc}

	tg := g.Group("/tutor")
	tg.GET("/subjects", api.subjectList)
	tg.GET("/subjects/:id/topics", api.topicList)
	tg.POST("/lesson", api.lessonGenerate)
	tg.GET("/profile", api.profileRetrieve)
	tg.PUT("/profile", api.profileUpdate)
	tg.GET("/badges", api.badgeList)
	tg.POST("/badges/:id/award", api.badgeAward)
	tg.POST("/chat", api.chatSend)
}

func (api *tutorAPI) subjectList(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.lessonSvc.Subjects(ctx.Request().Context()))
}

func (api *tutorAPI) topicList(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errHTTPNotFound
	}
	topics, err := api.lessonSvc.Topics(ctx.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return ctx.JSON(http.StatusOK, topics)
}

func (api *tutorAPI) lessonGenerate(ctx echo.Context) error {
	data := new(struct {
		Subject string `json:"subject" validate:"required"`
		Topic   string `json:"topic" validate:"required"`
	})
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := core.Validate.Struct(data); err != nil {
		return err
	}

	lsn, err := api.lessonSvc.Generate(ctx.Request().Context(), data.Subject, data.Topic)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return ctx.JSON(http.StatusOK, lsn)
}

func (api *tutorAPI) profileRetrieve(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.lessonSvc.Profile())
}

func (api *tutorAPI) profileUpdate(ctx echo.Context) error {
	data := new(lesson.ProfilePatch)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	profile, err := api.lessonSvc.UpdateProfile(*data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, profile)
}

func (api *tutorAPI) badgeList(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.lessonSvc.Badges())
}

func (api *tutorAPI) badgeAward(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.lessonSvc.Award(ctx.Param("id")))
}

func (api *tutorAPI) chatSend(ctx echo.Context) error {
	data := new(struct {
		Query          string `json:"query" validate:"required"`
		ConversationID string `json:"conversationId"`
	})
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := core.Validate.Struct(data); err != nil {
		return err
	}
	if data.ConversationID == "" {
		data.ConversationID = uuid.NewString()
	}

	profile := api.lessonSvc.Profile()
	response, err := api.chatSvc.Send(ctx.Request().Context(), data.Query, data.ConversationID, &profile)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return ctx.JSON(http.StatusOK, echo.Map{
		"response":       response,
		"conversationId": data.ConversationID,
	})
}
