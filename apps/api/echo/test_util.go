package echoapi

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/kidsmentor/portal/core"
	"github.com/kidsmentor/portal/core/store"
	"github.com/kidsmentor/portal/core/story"
	"github.com/kidsmentor/portal/services/chat"
	"github.com/kidsmentor/portal/services/lesson"
	logsvc "github.com/kidsmentor/portal/services/logger"
	"github.com/kidsmentor/portal/services/realtime"
	"github.com/kidsmentor/portal/services/storygen"
	"github.com/kidsmentor/portal/storage/kv"
	"github.com/kidsmentor/portal/storage/kv/memkv"
)

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
}

type testServer struct {
	app    Server
	store  *store.Store
	bridge *kv.Bridge
}

// testServerOptions overrides parts of the default test wiring.
type testServerOptions struct {
	upstream   http.Handler // external AI services stub; nil serves 404s
	gradeFeed  realtime.GradeFeed
	newScanner func() realtime.FaceScanner
}

func testLogger() core.Logger {
	return logsvc.NewConsoleLogger(log.New(io.Discard, "", 0))
}

// newTestServer wires a full server against in-memory storage and scripted
// event sources. Prompts are seeded as at startup.
func newTestServer(t *testing.T, opts testServerOptions) *testServer {
	t.Helper()

	if opts.upstream == nil {
		opts.upstream = http.NotFoundHandler()
	}
	if opts.gradeFeed == nil {
		opts.gradeFeed = realtime.NewScriptedGradeFeed()
	}
	if opts.newScanner == nil {
		opts.newScanner = func() realtime.FaceScanner { return realtime.NewScriptedFaceScanner() }
	}

	upstream := httptest.NewServer(opts.upstream)
	t.Cleanup(upstream.Close)

	logger := testLogger()
	bridge := kv.NewBridge(memkv.Open(), logger)
	st := store.New(bridge, logger)
	if err := st.Dispatch(story.SetPrompts{Prompts: story.DefaultPrompts()}); err != nil {
		t.Fatalf("seeding prompts: %v", err)
	}

	core.Conf.Set("testMode", true)
	client := upstream.Client()
	app := NewServer(&Options{
		DisableReqLogs: true,
		Store:          st,
		Library:        story.NewLibrary(bridge),
		LessonSvc:      lesson.NewService(upstream.URL, client, bridge, logger),
		StorySvc:       storygen.NewService(upstream.URL, client, logger),
		ChatSvc:        chat.NewService(upstream.URL, client),
		GradeFeed:      opts.gradeFeed,
		NewScanner:     opts.newScanner,
		Logger:         logger,
	})
	return &testServer{app: app, store: st, bridge: bridge}
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func marshallObj(t *testing.T, obj interface{}) []byte {
	t.Helper()
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshallObj(): %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
