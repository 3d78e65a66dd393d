package models

import (
	"encoding/json"
	"time"
)

// PromptTemplate represents a stored prompt template. The Kind tag ties a
// template to a task (categorize, extract_actions, draft_reply); templates with
// an empty kind are untyped and never picked up by resolution.
type PromptTemplate struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Kind      string    `db:"type" json:"type"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// InboundEmail is an email as supplied by a caller (or the mock inbox).
// Timestamp is carried as opaque text, exactly as the source provides it.
type InboundEmail struct {
	ID        string `json:"id"`
	Sender    string `json:"sender"`
	Subject   string `json:"subject"`
	Timestamp string `json:"timestamp"`
	Body      string `json:"body"`
}

// ActionItem is a single actionable task extracted from an email. Deadline and
// Assignee are free text and may be empty; deadlines are not validated dates.
type ActionItem struct {
	Task     string `json:"task"`
	Deadline string `json:"deadline"`
	Assignee string `json:"assignee"`
}

// ProcessedEmail is the persisted outcome of one processing run. ActionsJSON
// holds either the serialized structured action list or, when structured
// interpretation failed, the model's raw reply.
type ProcessedEmail struct {
	ID          int64     `db:"id" json:"id"`
	ExternalID  string    `db:"external_id" json:"external_id"`
	Sender      string    `db:"sender" json:"sender"`
	Subject     string    `db:"subject" json:"subject"`
	Timestamp   string    `db:"timestamp" json:"timestamp"`
	Body        string    `db:"body" json:"body"`
	Category    string    `db:"category" json:"category"`
	ActionsJSON string    `db:"actions_json" json:"actions_json"`
	DraftJSON   *string   `db:"draft_json" json:"draft_json,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Draft is a saved reply draft. Meta is opaque caller-supplied JSON; MetaJSON
// is its stored form and is decoded into Meta on read.
type Draft struct {
	ID        int64           `db:"id" json:"id"`
	Subject   *string         `db:"subject" json:"subject"`
	Body      string          `db:"body" json:"body"`
	MetaJSON  *string         `db:"meta_json" json:"-"`
	Meta      json.RawMessage `db:"-" json:"meta"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}

// DecodeMeta populates Meta from the stored MetaJSON column. Invalid or
// missing JSON leaves Meta nil, which serializes as null.
func (d *Draft) DecodeMeta() {
	if d.MetaJSON != nil && json.Valid([]byte(*d.MetaJSON)) {
		d.Meta = json.RawMessage(*d.MetaJSON)
	}
}
