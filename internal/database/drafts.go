package database

import (
	"context"
	"fmt"

	"mailtriage/internal/models"
)

// ListDrafts returns all saved drafts, newest first, with meta decoded
func (s *Store) ListDrafts(ctx context.Context) ([]models.Draft, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	var drafts []models.Draft
	query := s.db.Rebind(`SELECT id, subject, body, meta_json, created_at FROM drafts ORDER BY created_at DESC, id DESC`)
	if err := s.db.SelectContext(ctx, &drafts, query); err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	for i := range drafts {
		drafts[i].DecodeMeta()
	}
	return drafts, nil
}

// CreateDraft saves a draft and returns the stored row. metaJSON may be nil
// when the caller supplied no metadata.
func (s *Store) CreateDraft(ctx context.Context, subject *string, body string, metaJSON *string) (*models.Draft, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	id, err := s.insertReturningID(ctx, `INSERT INTO drafts (subject, body, meta_json) VALUES (?, ?, ?)`, subject, body, metaJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to create draft: %w", err)
	}

	var draft models.Draft
	query := s.db.Rebind(`SELECT id, subject, body, meta_json, created_at FROM drafts WHERE id = ?`)
	if err := s.db.GetContext(ctx, &draft, query, id); err != nil {
		return nil, fmt.Errorf("failed to read back draft %d: %w", id, err)
	}
	draft.DecodeMeta()
	return &draft, nil
}
