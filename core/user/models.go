package user

import (
	"github.com/go-playground/validator/v10"

	"github.com/dikshant1602/wandwrite/core"
)

// Role is the closed role set derived from the stored profile flags.
// Invalid flag combinations degrade to the weakest role.
type Role string

const (
	RoleStudent             Role = "student"
	RoleClassRepresentative Role = "class_representative"
)

type Action string

const (
	ActionViewSubjects    Action = "subjects:view"
	ActionReviewRequests  Action = "requests:review"
	ActionUploadDocuments Action = "documents:upload"
)

var roleActions = map[Role][]Action{
	RoleStudent:             {ActionViewSubjects},
	RoleClassRepresentative: {ActionViewSubjects, ActionReviewRequests, ActionUploadDocuments},
}

func (r Role) Can(action Action) bool {
	for _, a := range roleActions[r] {
		if a == action {
			return true
		}
	}
	return false
}

// User is the profile document stored in the `users` collection.
// The firestore tags are the wire schema and must not change.
type User struct {
	ID                 string   `json:"id" firestore:"-"`
	Name               string   `json:"name" firestore:"name"`
	IsStudent          bool     `json:"is_student" firestore:"isStudent"`
	IsClassRep         bool     `json:"is_class_rep" firestore:"isCR"`
	SubjectList        []string `json:"subject_list" firestore:"subList"`
	IsApproved         bool     `json:"is_approved" firestore:"isApproved"`
	IsUploading        bool     `json:"is_uploading" firestore:"isUploading"`
	NotificationTokens []string `json:"-" firestore:"fcmTokens"`
}

// Role maps the stored flags onto the closed role set. Class-rep
// status only takes effect once the account has been approved.
func (u User) Role() Role {
	if u.IsClassRep && u.IsApproved {
		return RoleClassRepresentative
	}
	return RoleStudent
}

func (u User) Can(action Action) bool {
	return u.Role().Can(action)
}

// NewUser contains information needed to sign a new account up.
type NewUser struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (nu *NewUser) Validate(validate *validator.Validate) error {
	nu.Name = core.CleanString(nu.Name)
	nu.Email = core.CleanString(nu.Email, true /* lower */)
	return validate.Struct(nu)
}
