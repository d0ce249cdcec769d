package inmemdb

import (
	"context"

	"github.com/trackmycredits/backend/core/contact"
)

type contactRepository struct {
	db *contactTable
}

var _ contact.Repository = (*contactRepository)(nil) // interface compliance check

func NewContactRepository(db *DB) *contactRepository {
	return &contactRepository{db: db.contact}
}

func (repo *contactRepository) CreateMessage(_ context.Context, msg contact.Message) (contact.Message, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	repo.db.pkCount++
	msg.ID = repo.db.pkCount
	repo.db.table[msg.ID] = &msg
	return msg, nil
}
