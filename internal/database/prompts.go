package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"mailtriage/internal/models"
	"mailtriage/internal/prompts"
)

// ListPrompts returns all stored templates, newest first
func (s *Store) ListPrompts(ctx context.Context) ([]models.PromptTemplate, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	var templates []models.PromptTemplate
	query := s.db.Rebind(`SELECT id, name, type, content, created_at FROM prompts ORDER BY created_at DESC, id DESC`)
	if err := s.db.SelectContext(ctx, &templates, query); err != nil {
		return nil, fmt.Errorf("failed to list prompts: %w", err)
	}
	return templates, nil
}

// CreatePrompt inserts a template and returns the stored row, including the
// assigned id and creation timestamp.
func (s *Store) CreatePrompt(ctx context.Context, name, kind, content string) (*models.PromptTemplate, error) {
	if s.db == nil {
		return nil, ErrNoDatabase
	}
	id, err := s.insertReturningID(ctx, `INSERT INTO prompts (name, type, content) VALUES (?, ?, ?)`, name, kind, content)
	if err != nil {
		return nil, fmt.Errorf("failed to create prompt: %w", err)
	}

	var template models.PromptTemplate
	query := s.db.Rebind(`SELECT id, name, type, content, created_at FROM prompts WHERE id = ?`)
	if err := s.db.GetContext(ctx, &template, query, id); err != nil {
		return nil, fmt.Errorf("failed to read back prompt %d: %w", id, err)
	}
	return &template, nil
}

// LatestContent returns the body of the most recently created template of the
// given kind. Returns sql.ErrNoRows when no template of that kind exists; the
// resolver turns that into the built-in default.
func (s *Store) LatestContent(ctx context.Context, kind string) (string, error) {
	if s.db == nil {
		return "", ErrNoDatabase
	}
	var content string
	query := s.db.Rebind(`SELECT content FROM prompts WHERE type = ? ORDER BY created_at DESC, id DESC LIMIT 1`)
	err := s.db.GetContext(ctx, &content, query, kind)
	return content, err
}

// SeedDefaultPrompts inserts one built-in template per task kind, skipping
// kinds that already have at least one template. Safe to run on every startup.
func (s *Store) SeedDefaultPrompts(ctx context.Context) error {
	if s.db == nil {
		return ErrNoDatabase
	}
	for _, seed := range prompts.DefaultSeeds() {
		var id int64
		query := s.db.Rebind(`SELECT id FROM prompts WHERE type = ? LIMIT 1`)
		err := s.db.GetContext(ctx, &id, query, seed.Kind)
		if err == nil {
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("failed to check existing prompts for %q: %w", seed.Kind, err)
		}

		insert := s.db.Rebind(`INSERT INTO prompts (name, type, content) VALUES (?, ?, ?)`)
		if _, err := s.db.ExecContext(ctx, insert, seed.Name, seed.Kind, seed.Content); err != nil {
			return fmt.Errorf("failed to seed prompt for %q: %w", seed.Kind, err)
		}
	}
	return nil
}
