package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kidsmentor/portal/services/lesson"
)

func TestService_Send(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/tutoring/chat", func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Why is the sky blue?", req.Query)
		assert.Equal(t, "conv-1", req.ConversationID)
		require.NotNil(t, req.StudentProfile)
		assert.Equal(t, "visual", req.StudentProfile.LearningStyle)

		_ = json.NewEncoder(w).Encode(chatResponse{
			Response:       "Because sunlight scatters!",
			ConversationID: req.ConversationID,
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	profile := lesson.DefaultProfile()
	svc := NewService(srv.URL, srv.Client())

	text, err := svc.Send(context.Background(), "Why is the sky blue?", "conv-1", &profile)
	require.NoError(t, err)
	assert.Equal(t, "Because sunlight scatters!", text)
}

func TestService_Send_APIError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{
			name:    "with detail",
			status:  http.StatusNotFound,
			body:    `{"detail": "conversation not found"}`,
			wantErr: "API Error (404): conversation not found",
		},
		{
			name:    "without detail",
			status:  http.StatusInternalServerError,
			body:    `{}`,
			wantErr: "API Error (500): Unknown error",
		},
		{
			name:    "non-JSON body",
			status:  http.StatusBadGateway,
			body:    "upstream timeout",
			wantErr: "API Error (502): Unknown error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			svc := NewService(srv.URL, srv.Client())
			_, err := svc.Send(context.Background(), "hi", "conv-1", nil)
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestService_Send_ConnectFailure(t *testing.T) {
	svc := NewService("http://127.0.0.1:1", &http.Client{})

	_, err := svc.Send(context.Background(), "hi", "conv-1", nil)
	require.Error(t, err)
	assert.Equal(t, "Failed to connect to AI Tutor service", err.Error())
}
