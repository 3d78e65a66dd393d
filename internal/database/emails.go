package database

import (
	"context"
	"fmt"

	"mailtriage/internal/models"
)

// InsertProcessedEmail records one processing outcome. Insert-only: processed
// emails are never updated or deleted here.
func (s *Store) InsertProcessedEmail(ctx context.Context, rec *models.ProcessedEmail) error {
	if s.db == nil {
		return ErrNoDatabase
	}
	query := s.db.Rebind(`INSERT INTO emails (external_id, sender, subject, timestamp, body, category, actions_json)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	_, err := s.db.ExecContext(ctx, query,
		rec.ExternalID, rec.Sender, rec.Subject, rec.Timestamp, rec.Body, rec.Category, rec.ActionsJSON)
	if err != nil {
		return fmt.Errorf("failed to insert processed email: %w", err)
	}
	return nil
}
