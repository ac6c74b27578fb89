// Package chat is the adapter for the external AI tutoring chat API.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/kidsmentor/portal/services/lesson"
)

type (
	chatRequest struct {
		Query          string                 `json:"query"`
		ConversationID string                 `json:"conversationId"`
		StudentProfile *lesson.StudentProfile `json:"studentProfile,omitempty"`
	}

	chatResponse struct {
		Response       string `json:"response"`
		ConversationID string `json:"conversationId"`
	}

	errorResponse struct {
		Detail string `json:"detail"`
	}
)

type Service struct {
	baseURL string
	client  *http.Client
}

func NewService(baseURL string, client *http.Client) *Service {
	return &Service{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

// Send posts a query in the given conversation and returns the tutor's
// response text. Failures collapse into a single human-readable error
// carrying the HTTP status and the server's detail message.
func (svc *Service) Send(ctx context.Context, query, conversationID string, profile *lesson.StudentProfile) (string, error) {
	body, err := json.Marshal(chatRequest{
		Query:          query,
		ConversationID: conversationID,
		StudentProfile: profile,
	})
	if err != nil {
		return "", errors.Wrap(err, "chat: marshaling request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, svc.baseURL+"/api/tutoring/chat", bytes.NewReader(body))
	if err != nil {
		return "", errors.Wrap(err, "chat: building request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := svc.client.Do(req)
	if err != nil {
		return "", errors.New("Failed to connect to AI Tutor service")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := "Unknown error"
		var errResp errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Detail != "" {
			detail = errResp.Detail
		}
		return "", errors.Errorf("API Error (%d): %s", resp.StatusCode, detail)
	}

	var data chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", errors.Wrap(err, "chat: parsing response")
	}
	return data.Response, nil
}
