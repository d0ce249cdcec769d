package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trackmycredits/backend/core/contact"
)

type contactRepository struct {
	db *sqlx.DB
}

var _ contact.Repository = (*contactRepository)(nil) // interface compliance check

func NewContactRepository(db *sql.DB) *contactRepository {
	return &contactRepository{db: sqlx.NewDb(db, "postgres")}
}

func (repo contactRepository) CreateMessage(ctx context.Context, msg contact.Message) (contact.Message, error) {
	err := repo.db.QueryRowxContext(ctx, `
		INSERT INTO contact_message (name, batch, branch, email, contact, feedback, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		null.NewString(msg.Name, msg.Name != ""),
		null.NewString(msg.Batch, msg.Batch != ""),
		null.NewString(msg.Branch, msg.Branch != ""),
		null.NewString(msg.Email, msg.Email != ""),
		null.NewString(msg.Contact, msg.Contact != ""),
		msg.Feedback,
		msg.SubmittedAt.UTC(),
	).Scan(&msg.ID)
	if err != nil {
		return contact.Message{}, errors.Wrap(err, "inserting contact message")
	}
	return msg, nil
}
