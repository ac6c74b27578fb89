package user

import "github.com/kidsmentor/portal/core"

// User is the educator currently signed in to the portal.
type User struct {
	Username        string `json:"username"`
	FullName        string `json:"fullName"`
	Grade           string `json:"grade"`
	ProfileInitials string `json:"profileInitials"`
}

// Login contains information needed to open a session.
type Login struct {
	Username string `json:"username" validate:"required,min=2,alphanum_"`
	FullName string `json:"fullName" validate:"required"`
	Grade    string `json:"grade"`
}

func (l *Login) Validate() error {
	l.Username = core.CleanString(l.Username, true /* lower */)
	l.FullName = core.CleanString(l.FullName)
	l.Grade = core.CleanString(l.Grade)
	return core.Validate.Struct(l)
}

// User builds the session User from the validated login form.
func (l Login) User() User {
	return User{
		Username:        l.Username,
		FullName:        l.FullName,
		Grade:           l.Grade,
		ProfileInitials: core.Initials(l.FullName),
	}
}

// Patch defines what information may be provided to modify the session User.
// Nil fields are left untouched.
type Patch struct {
	Username        *string `json:"username"`
	FullName        *string `json:"fullName"`
	Grade           *string `json:"grade"`
	ProfileInitials *string `json:"profileInitials"`
}
