package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mailtriage/internal/llm"
	"mailtriage/internal/models"
	"mailtriage/internal/prompts"
	"mailtriage/internal/triage"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGateway returns queued replies in order
type stubGateway struct {
	replies []string
	calls   int
}

func (g *stubGateway) Invoke(_ context.Context, _ []llm.Message, _ int) string {
	g.calls++
	if g.calls <= len(g.replies) {
		return g.replies[g.calls-1]
	}
	return ""
}

// stubResolver serves the built-in defaults
type stubResolver struct{}

func (stubResolver) Resolve(_ context.Context, kind string) string {
	return prompts.Default(kind)
}

type stubOutcomeStore struct {
	inserts int
	err     error
}

func (s *stubOutcomeStore) InsertProcessedEmail(context.Context, *models.ProcessedEmail) error {
	s.inserts++
	return s.err
}

func postJSON(t *testing.T, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestProcessHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		gatewayReplies []string
		storeErr       error
		expectedStatus int
		checkResponse  func(t *testing.T, resp models.ProcessResponse)
	}{
		{
			name:           "full result with structured actions",
			body:           `{"email": {"id": "msg-1", "sender": "a@example.com", "subject": "Hi", "body": "Please review the report."}}`,
			gatewayReplies: []string{" To-Do ", `[{"task": "review report", "deadline": "", "assignee": "user"}]`},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp models.ProcessResponse) {
				assert.Equal(t, "To-Do", resp.Category)
				require.Len(t, resp.ActionsJSON, 1)
				assert.Equal(t, "review report", resp.ActionsJSON[0].Task)
			},
		},
		{
			name:           "empty action array",
			body:           `{"email": {"body": "Just saying hi."}}`,
			gatewayReplies: []string{"Social", "[]"},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp models.ProcessResponse) {
				assert.Equal(t, "[]", resp.ActionsRaw)
				assert.NotNil(t, resp.ActionsJSON)
				assert.Len(t, resp.ActionsJSON, 0)
			},
		},
		{
			name:           "unparseable actions degrade to raw text",
			body:           `{"email": {"body": "Hello."}}`,
			gatewayReplies: []string{"Social", "no actions here"},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp models.ProcessResponse) {
				assert.Equal(t, "no actions here", resp.ActionsRaw)
				assert.Nil(t, resp.ActionsJSON)
			},
		},
		{
			name:           "storage failure does not affect the response",
			body:           `{"email": {"body": "Hello."}}`,
			gatewayReplies: []string{"Social", "[]"},
			storeErr:       errors.New("disk full"),
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, resp models.ProcessResponse) {
				assert.Equal(t, "Social", resp.Category)
			},
		},
		{
			name:           "missing email body rejected",
			body:           `{"email": {"id": "msg-1"}}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing email rejected",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := &stubGateway{replies: tt.gatewayReplies}
			processor := triage.NewProcessor(gateway, stubResolver{}, &stubOutcomeStore{err: tt.storeErr}, zerolog.Nop())

			c, rec := postJSON(t, "/api/process", tt.body)
			require.NoError(t, ProcessHandler(processor, time.Minute)(c))

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusBadRequest {
				var errResp models.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
				assert.Equal(t, "email.body is required", errResp.Error)
				assert.Zero(t, gateway.calls, "validation failures must not reach the gateway")
				return
			}

			var resp models.ProcessResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			tt.checkResponse(t, resp)
		})
	}
}

func TestProcessHandler_ActionsJSONNullVsEmpty(t *testing.T) {
	// The wire distinction matters: [] for an empty task list, null when
	// interpretation failed.
	gateway := &stubGateway{replies: []string{"Social", "[]"}}
	processor := triage.NewProcessor(gateway, stubResolver{}, &stubOutcomeStore{}, zerolog.Nop())

	c, rec := postJSON(t, "/api/process", `{"email": {"body": "hi"}}`)
	require.NoError(t, ProcessHandler(processor, time.Minute)(c))
	assert.Contains(t, rec.Body.String(), `"actions_json":[]`)

	gateway = &stubGateway{replies: []string{"Social", "not json"}}
	processor = triage.NewProcessor(gateway, stubResolver{}, &stubOutcomeStore{}, zerolog.Nop())

	c, rec = postJSON(t, "/api/process", `{"email": {"body": "hi"}}`)
	require.NoError(t, ProcessHandler(processor, time.Minute)(c))
	assert.Contains(t, rec.Body.String(), `"actions_json":null`)
}
