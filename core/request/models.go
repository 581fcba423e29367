package request

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/dikshant1602/wandwrite/core"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDenied   Status = "denied"
)

// Terminal reports whether the status absorbs further transitions.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusDenied
}

// Request is a student request awaiting a reviewer's decision.
type Request struct {
	ID          string    `json:"id" firestore:"-"`
	StudentName string    `json:"student_name" firestore:"studentName"`
	Description string    `json:"description" firestore:"description"`
	Status      Status    `json:"status" firestore:"status"`
	SubmittedAt time.Time `json:"submitted_at" firestore:"submittedAt"` // UTC
}

// NewRequest contains information needed to submit a request.
type NewRequest struct {
	StudentName string `json:"student_name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

func (nr *NewRequest) Validate(validate *validator.Validate) error {
	nr.StudentName = core.CleanString(nr.StudentName)
	nr.Description = core.CleanString(nr.Description)
	return validate.Struct(nr)
}
