package course

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/trackmycredits/backend/core"
)

// Course is a single completed course a user logged against one credit category.
type Course struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"-"`
	Category  string    `json:"category"`
	Name      string    `json:"name"`
	Credits   int       `json:"credits"`
	Grade     string    `json:"grade,omitempty"` // informational only
	CreatedAt time.Time `json:"created_at"`      // UTC
}

// NewCourse contains information needed to record a new Course.
// Credits binds into a typed int so malformed input is rejected at the boundary.
type NewCourse struct {
	Category string `json:"category_code" form:"category_code" validate:"required,categorycode"`
	Name     string `json:"course_name" form:"course_name" validate:"required,max=255"`
	Credits  int    `json:"course_credits" form:"course_credits" validate:"gte=0"`
	Grade    string `json:"course_grade" form:"course_grade" validate:"omitempty,max=10"`
}

func (nc *NewCourse) Validate(validate *validator.Validate) error {
	nc.Category = core.CleanString(nc.Category, true /* lower */)
	nc.Name = core.CleanString(nc.Name)
	nc.Grade = core.CleanString(nc.Grade)
	return validate.Struct(nc)
}
