package contact

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trackmycredits/backend/core"
)

// Message is a feedback submission. Write-only: the app never reads these back.
type Message struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Batch       string    `json:"batch"`
	Branch      string    `json:"branch"`
	Email       string    `json:"email"`
	Contact     string    `json:"contact"`
	Feedback    string    `json:"feedback"`
	SubmittedAt time.Time `json:"submitted_at"` // UTC
}

type NewMessage struct {
	Name     string `json:"name" form:"name" validate:"omitempty,max=100"`
	Batch    string `json:"batch" form:"batch" validate:"omitempty,max=50"`
	Branch   string `json:"branch" form:"branch" validate:"omitempty,max=50"`
	Email    string `json:"email" form:"email" validate:"omitempty,email"`
	Contact  string `json:"contact" form:"contact" validate:"omitempty,max=20"`
	Feedback string `json:"feedback" form:"feedback" validate:"required"`
}

func (nm *NewMessage) Validate(validate *validator.Validate) error {
	nm.Name = core.CleanString(nm.Name)
	nm.Batch = core.CleanString(nm.Batch)
	nm.Branch = core.CleanString(nm.Branch)
	nm.Email = core.CleanString(nm.Email, true /* lower */)
	nm.Contact = core.CleanString(nm.Contact)
	nm.Feedback = core.CleanString(nm.Feedback)
	return validate.Struct(nm)
}
