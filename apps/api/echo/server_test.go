package echoapi

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kidsmentor/portal/services/realtime"
)

func TestServer_Redirects(t *testing.T) {
	srv := newTestServer(t, testServerOptions{})

	for _, path := range []string{"/", "/no-such-page", "/deeply/nested/unknown"} {
		req, rec := newRequest(http.MethodGet, path)
		srv.app.ServeHTTP(rec, req)
		assert.Equalf(t, http.StatusFound, rec.Code, "path %s", path)
		assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
	}
}

func TestServer_DashboardFoldsGradeFeed(t *testing.T) {
	srv := newTestServer(t, testServerOptions{
		gradeFeed: realtime.NewScriptedGradeFeed(
			realtime.GradeEvent{StudentID: 2, StudentName: "Noah Smith", Assignment: "Math Quiz 1", Score: 77, MaxScore: 100},
			realtime.GradeEvent{StudentID: 2, StudentName: "Noah Smith", Assignment: "Math Quiz 1", Score: 85, MaxScore: 100},
		),
	})

	type dashboard struct {
		Gradebook []struct {
			StudentID  int    `json:"studentId"`
			Assignment string `json:"assignmentName"`
			Score      int    `json:"score"`
			MaxScore   int    `json:"maxScore"`
		} `json:"gradebook"`
		ChildCount int `json:"childCount"`
		EntryCount int `json:"entryCount"`
	}

	fetch := func() dashboard {
		req, rec := newRequest(http.MethodGet, "/dashboard")
		srv.app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		var data dashboard
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &data))
		return data
	}

	// the scripted feed drains asynchronously; the later event wins
	assert.Eventually(t, func() bool {
		req, rec := newRequest(http.MethodGet, "/dashboard")
		srv.app.ServeHTTP(rec, req)
		var data dashboard
		if err := json.Unmarshal(rec.Body.Bytes(), &data); err != nil {
			return false
		}
		for _, cell := range data.Gradebook {
			if cell.StudentID == 2 && cell.Assignment == "Math Quiz 1" {
				return cell.Score == 85
			}
		}
		return false
	}, time.Second, 10*time.Millisecond)

	data := fetch()
	// full roster x assignment table, scored or not
	assert.Len(t, data.Gradebook, len(realtime.Roster())*len(realtime.Assignments()))
	assert.Zero(t, data.ChildCount)
	assert.Zero(t, data.EntryCount)
}

func TestServer_Pages(t *testing.T) {
	srv := newTestServer(t, testServerOptions{})

	t.Run("ai-tutor", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/ai-tutor")
		srv.app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var data struct {
			Subjects []json.RawMessage `json:"subjects"`
			Badges   []json.RawMessage `json:"badges"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &data))
		assert.Len(t, data.Subjects, 5)
		assert.Len(t, data.Badges, 3)
	})

	t.Run("story-starter", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/story-starter")
		srv.app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var data struct {
			Story struct {
				Prompts []json.RawMessage `json:"prompts"`
			} `json:"story"`
			SavedStories []json.RawMessage `json:"savedStories"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &data))
		assert.Len(t, data.Story.Prompts, 3)
		assert.Empty(t, data.SavedStories)
	})

	t.Run("activity-logger", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/activity-logger")
		srv.app.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("trailing slashes are stripped", func(t *testing.T) {
		req, rec := newRequest(http.MethodGet, "/dashboard/")
		srv.app.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
