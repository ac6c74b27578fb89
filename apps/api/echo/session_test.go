package echoapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kidsmentor/portal/core/user"
)

func TestSessionAPI(t *testing.T) {
	srv := newTestServer(t, testServerOptions{})

	loggedOut := marshallObj(t, user.State{})
	ameliaState := marshallObj(t, user.State{
		User: &user.User{
			Username:        "amelia_j",
			FullName:        "Amelia Jones",
			Grade:           "Kindergarten",
			ProfileInitials: "AJ",
		},
		IsLoggedIn: true,
	})

	tests := []httpTest{
		{
			name:     "current session starts logged out",
			method:   http.MethodGet,
			path:     "/v1/session",
			wantCode: http.StatusOK,
			wantData: loggedOut,
		},
		{
			name:     "patching while logged out is rejected",
			method:   http.MethodPatch,
			path:     "/v1/session/user",
			body:     []byte(`{"grade": "1st Grade"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"session": "not logged in"}`),
		},
		{
			name:     "login requires a username",
			method:   http.MethodPost,
			path:     "/v1/session/login",
			body:     []byte(`{"fullName": "Amelia Jones"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"username": "this field is required"}`),
		},
		{
			name:     "login rejects non-word characters",
			method:   http.MethodPost,
			path:     "/v1/session/login",
			body:     []byte(`{"username": "amelia!", "fullName": "Amelia Jones"}`),
			wantCode: http.StatusBadRequest,
			wantData: []byte(`{"username": "only alphanumeric characters and underscores are allowed"}`),
		},
		{
			name:     "login opens the session and derives initials",
			method:   http.MethodPost,
			path:     "/v1/session/login",
			body:     []byte(`{"username": "Amelia_J", "fullName": "Amelia Jones", "grade": "Kindergarten"}`),
			wantCode: http.StatusOK,
			wantData: ameliaState,
		},
		{
			name:     "current session reflects the login",
			method:   http.MethodGet,
			path:     "/v1/session",
			wantCode: http.StatusOK,
			wantData: ameliaState,
		},
		{
			name:     "logout clears the session",
			method:   http.MethodDelete,
			path:     "/v1/session",
			wantCode: http.StatusNoContent,
		},
		{
			name:     "current session is logged out again",
			method:   http.MethodGet,
			path:     "/v1/session",
			wantCode: http.StatusOK,
			wantData: loggedOut,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(tt.method, tt.path, tt.body)
			srv.app.ServeHTTP(rec, req)
			checkCodeAndData(t, tt, rec)
		})
	}
}

func TestSessionAPI_Patch(t *testing.T) {
	srv := newTestServer(t, testServerOptions{})

	req, rec := newRequest(http.MethodPost, "/v1/session/login", []byte(`{"username": "amelia_j", "fullName": "Amelia Jones"}`))
	srv.app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req, rec = newRequest(http.MethodPatch, "/v1/session/user", []byte(`{"grade": "1st Grade"}`))
	srv.app.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	st := srv.store.UserState()
	require.NotNil(t, st.User)
	assert.Equal(t, "1st Grade", st.User.Grade)
	assert.Equal(t, "Amelia Jones", st.User.FullName) // untouched
}
