package echoapi

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/kidsmentor/portal/core"
	"github.com/kidsmentor/portal/core/store"
	"github.com/kidsmentor/portal/core/story"
	"github.com/kidsmentor/portal/services/chat"
	"github.com/kidsmentor/portal/services/lesson"
	"github.com/kidsmentor/portal/services/realtime"
	"github.com/kidsmentor/portal/services/storygen"
)

type (
	Options struct {
		Address        string
		DisableReqLogs bool

		Store      *store.Store
		Library    *story.Library
		LessonSvc  *lesson.Service
		StorySvc   *storygen.Service
		ChatSvc    *chat.Service
		GradeFeed  realtime.GradeFeed
		NewScanner func() realtime.FaceScanner
		Logger     core.Logger
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts       *Options
		app        *echo.Echo
		gradebook  *gradebook
		attendance *attendanceAPI
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	debug := core.Conf.GetBool("debug")

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(debug || core.Conf.GetBool("testMode")) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger, func() { _ = s.Stop(context.Background()) })
	s.app.Debug = debug

	s.gradebook = newGradebook(s.opts.GradeFeed)

	// portal pages
	s.app.GET("/", redirectDashboard)
	s.app.GET("/dashboard", s.dashboard)
	s.app.GET("/ai-tutor", s.aiTutor)
	s.app.GET("/story-starter", s.storyStarter)
	s.app.GET("/activity-logger", s.activityLogger)
	s.app.RouteNotFound("/*", redirectDashboard)

	v1 := s.app.Group("/v1")
	registerSessionAPI(v1, s.opts.Store)
	registerStoryAPI(v1, s.opts.Store, s.opts.Library, s.opts.StorySvc)
	registerActivityAPI(v1, s.opts.Store)
	registerTutorAPI(v1, s.opts.LessonSvc, s.opts.ChatSvc)
	s.attendance = registerAttendanceAPI(v1, s.opts.NewScanner)
}

func (s *server) Start() {
	s.app.Logger.Fatal(s.app.Start(s.opts.Address))
}

func (s *server) Stop(ctx context.Context) error {
	s.gradebook.stop()
	s.attendance.shutdown()
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}
