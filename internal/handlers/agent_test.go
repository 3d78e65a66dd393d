package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"mailtriage/internal/models"
	"mailtriage/internal/triage"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		gatewayReply   string
		expectedStatus int
		expectedReply  string
	}{
		{
			name:           "returns gateway reply",
			body:           `{"email": {"body": "Can we meet at 10?"}, "promptTemplate": "Reply briefly.", "userInstruction": "Confirm meeting time"}`,
			gatewayReply:   "Confirmed, see you at 10.",
			expectedStatus: http.StatusOK,
			expectedReply:  "Confirmed, see you at 10.",
		},
		{
			name:           "defaults applied when template and instruction omitted",
			body:           `{"email": {"body": "Hello there"}}`,
			gatewayReply:   "Hi!",
			expectedStatus: http.StatusOK,
			expectedReply:  "Hi!",
		},
		{
			name:           "missing email body rejected",
			body:           `{"userInstruction": "Reply"}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gateway := &stubGateway{replies: []string{tt.gatewayReply}}
			agent := triage.NewAgent(gateway, zerolog.Nop())

			c, rec := postJSON(t, "/api/agent", tt.body)
			require.NoError(t, AgentHandler(agent, time.Minute)(c))

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus != http.StatusOK {
				var errResp models.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
				assert.Equal(t, "email.body is required", errResp.Error)
				assert.Zero(t, gateway.calls)
				return
			}

			var resp models.AgentResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedReply, resp.Reply)
			assert.Equal(t, 1, gateway.calls)
		})
	}
}
