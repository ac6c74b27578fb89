package echoapi

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kidsmentor/portal/services/realtime"
)

// AttendanceRecord is one student marked present by the scanner.
type AttendanceRecord struct {
	StudentID   int       `json:"studentId"`
	StudentName string    `json:"studentName"`
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
}

// scanSession consumes one scanner's events, deduplicating recognized
// students into attendance records.
type scanSession struct {
	mu      sync.RWMutex
	scanner realtime.FaceScanner
	records []AttendanceRecord
	seen    map[int]bool
	done    chan struct{}
}

func newScanSession(scanner realtime.FaceScanner) *scanSession {
	s := &scanSession{
		scanner: scanner,
		seen:    make(map[int]bool),
		done:    make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *scanSession) run() {
	defer close(s.done)
	for ev := range s.scanner.Events() {
		if !ev.Recognized {
			continue
		}
		s.mu.Lock()
		if !s.seen[ev.StudentID] {
			s.seen[ev.StudentID] = true
			s.records = append(s.records, AttendanceRecord{
				StudentID:   ev.StudentID,
				StudentName: ev.StudentName,
				Status:      "PRESENT",
				Timestamp:   ev.Timestamp,
			})
		}
		s.mu.Unlock()
	}
}

func (s *scanSession) snapshot() []AttendanceRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]AttendanceRecord(nil), s.records...)
}

func (s *scanSession) stop() {
	s.scanner.Stop()
	<-s.done
}

type attendanceAPI struct {
	mu         sync.Mutex
	newScanner func() realtime.FaceScanner
	session    *scanSession
}

func registerAttendanceAPI(g *echo.Group, newScanner func() realtime.FaceScanner) *attendanceAPI {
	api := &attendanceAPI{newScanner: newScanner}

	ag := g.Group("/attendance")
	ag.POST("/scan/start", api.scanStart)
	ag.GET("/scan", api.scanStatus)
	ag.POST("/scan/stop", api.scanStop)

	return api
}

func (api *attendanceAPI) scanStart(ctx echo.Context) error {
	api.mu.Lock()
	defer api.mu.Unlock()

	if api.session != nil {
		return echo.NewHTTPError(http.StatusConflict, "a scan is already running")
	}
	api.session = newScanSession(api.newScanner())
	return ctx.JSON(http.StatusAccepted, echo.Map{"scanning": true})
}

func (api *attendanceAPI) scanStatus(ctx echo.Context) error {
	api.mu.Lock()
	session := api.session
	api.mu.Unlock()

	if session == nil {
		return ctx.JSON(http.StatusOK, echo.Map{"scanning": false, "records": []AttendanceRecord{}})
	}
	return ctx.JSON(http.StatusOK, echo.Map{"scanning": true, "records": session.snapshot()})
}

func (api *attendanceAPI) scanStop(ctx echo.Context) error {
	api.mu.Lock()
	session := api.session
	api.session = nil
	api.mu.Unlock()

	if session == nil {
		return ctx.JSON(http.StatusOK, echo.Map{"scanning": false, "records": []AttendanceRecord{}})
	}
	session.stop()
	return ctx.JSON(http.StatusOK, echo.Map{"scanning": false, "records": session.snapshot()})
}

// presentCount reports how many students the running session has marked
// present, 0 when no scan is running.
func (api *attendanceAPI) presentCount() int {
	api.mu.Lock()
	defer api.mu.Unlock()
	if api.session == nil {
		return 0
	}
	return len(api.session.snapshot())
}

// shutdown stops any in-flight scan session.
func (api *attendanceAPI) shutdown() {
	api.mu.Lock()
	defer api.mu.Unlock()
	if api.session != nil {
		api.session.stop()
		api.session = nil
	}
}
