package models

import "encoding/json"

// ProcessRequest is the request body for the process endpoint
type ProcessRequest struct {
	Email *InboundEmail `json:"email"`
}

// AgentRequest is the request body for the agent endpoint. PromptTemplate,
// when set, replaces template resolution entirely for this call.
type AgentRequest struct {
	Email           *InboundEmail `json:"email"`
	PromptTemplate  string        `json:"promptTemplate"`
	UserInstruction string        `json:"userInstruction"`
}

// CreatePromptRequest is the request body for creating a prompt template
type CreatePromptRequest struct {
	Name    string `json:"name"`
	Kind    string `json:"type"`
	Content string `json:"content"`
}

// CreateDraftRequest is the request body for saving a draft
type CreateDraftRequest struct {
	Subject string          `json:"subject"`
	Body    string          `json:"body"`
	Meta    json.RawMessage `json:"meta"`
}
