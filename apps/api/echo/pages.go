package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kidsmentor/portal/core/activity"
)

// The portal pages mirror the dashboard shell's client-side routes; each
// returns the data its page renders from.

func (s *server) dashboard(ctx echo.Context) error {
	activitySt := s.opts.Store.ActivityState()
	return ctx.JSON(http.StatusOK, echo.Map{
		"session":      s.opts.Store.UserState(),
		"gradebook":    s.gradebook.snapshot(),
		"presentCount": s.attendance.presentCount(),
		"childCount":   len(activitySt.Children),
		"entryCount":   len(activitySt.Entries),
	})
}

func (s *server) aiTutor(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{
		"subjects": s.opts.LessonSvc.Subjects(ctx.Request().Context()),
		"profile":  s.opts.LessonSvc.Profile(),
		"badges":   s.opts.LessonSvc.Badges(),
	})
}

func (s *server) storyStarter(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{
		"story":        s.opts.Store.StoryState(),
		"savedStories": s.opts.Library.All(),
	})
}

func (s *server) activityLogger(ctx echo.Context) error {
	st := s.opts.Store.ActivityState()
	return ctx.JSON(http.StatusOK, echo.Map{
		"entries":  activity.SortByCreatedAtDesc(st.Entries),
		"children": st.Children,
	})
}

// redirectDashboard sends any unmatched path to /dashboard.
func redirectDashboard(ctx echo.Context) error {
	return ctx.Redirect(http.StatusFound, "/dashboard")
}
