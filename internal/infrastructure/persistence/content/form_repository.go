package content

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pagesmith/pagesmith-go/internal/domain/entities/content"
	"github.com/pagesmith/pagesmith-go/internal/infrastructure/security"
)

type FormRepository struct {
	db *sql.DB
}

func NewFormRepository(db *sql.DB) *FormRepository {
	return &FormRepository{db: db}
}

// StoreSubmission persists one public form submission. Field values are
// stored as a JSON blob since forms are free-form.
func (r *FormRepository) StoreSubmission(ctx context.Context, submission *content.FormSubmission) error {
	if submission.ID == "" {
		submission.ID = security.GenerateULID()
	}
	if submission.CreatedAt.IsZero() {
		submission.CreatedAt = time.Now().UTC()
	}

	fields, err := json.Marshal(submission.Fields)
	if err != nil {
		return fmt.Errorf("failed to encode submission fields: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `INSERT INTO form_submissions (id, form_id, fields, created_at) VALUES (?, ?, ?, ?)`,
		submission.ID, submission.FormID, string(fields), submission.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to store form submission: %w", err)
	}
	return nil
}
