package contact

import (
	"context"
	"time"
)

type (
	Repository interface {
		CreateMessage(ctx context.Context, msg Message) (Message, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Submit stores a feedback message. nm must have been validated.
func (svc *Service) Submit(ctx context.Context, nm NewMessage) (Message, error) {
	msg := Message{
		Name:        nm.Name,
		Batch:       nm.Batch,
		Branch:      nm.Branch,
		Email:       nm.Email,
		Contact:     nm.Contact,
		Feedback:    nm.Feedback,
		SubmittedAt: time.Now().UTC(),
	}
	return svc.repo.CreateMessage(ctx, msg)
}
