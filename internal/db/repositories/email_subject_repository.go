package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// EmailSubjectRepo reads the email_subjects lookup table over sqlx.
type EmailSubjectRepo struct {
	db *sqlx.DB
}

// NewEmailSubjectRepo creates a new sqlx-based subject repository
func NewEmailSubjectRepo(db *sqlx.DB) *EmailSubjectRepo {
	return &EmailSubjectRepo{db: db}
}

// SubjectFor resolves a logical notification name to its display
// subject. Returns ("", nil) when no row exists so callers can apply
// their fallback text.
func (r *EmailSubjectRepo) SubjectFor(ctx context.Context, name string) (string, error) {
	var subject string

	err := r.db.GetContext(ctx, &subject,
		`SELECT subject FROM email_subjects WHERE name = $1`, name)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("failed to fetch mail subject: %w", err)
	}

	return subject, nil
}
