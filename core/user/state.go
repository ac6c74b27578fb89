package user

import "github.com/kidsmentor/portal/core"

// State is the session slice. Invariant: IsLoggedIn is true iff User is non-nil.
type State struct {
	User       *User `json:"user"`
	IsLoggedIn bool  `json:"isLoggedIn"`
}

func InitialState() State {
	return State{User: nil, IsLoggedIn: false}
}

// Action is a session slice action. The slice's reducer owns the closed set
// of concrete action types below.
type Action interface {
	userAction()
}

type (
	// SetUser opens a session for the given user, deriving profile initials
	// from the full name when absent.
	SetUser struct {
		User User
	}

	// ClearUser closes the session.
	ClearUser struct{}

	// UpdateUserDetails patches the session user; it is a no-op when logged out.
	UpdateUserDetails struct {
		Patch Patch
	}
)

func (SetUser) userAction()           {}
func (ClearUser) userAction()         {}
func (UpdateUserDetails) userAction() {}

// Reduce is the pure session reducer. It never mutates its inputs.
func Reduce(s State, action Action) State {
	switch a := action.(type) {
	case SetUser:
		usr := a.User
		if usr.ProfileInitials == "" && usr.FullName != "" {
			usr.ProfileInitials = core.Initials(usr.FullName)
		}
		return State{User: &usr, IsLoggedIn: true}
	case ClearUser:
		return State{User: nil, IsLoggedIn: false}
	case UpdateUserDetails:
		if s.User == nil {
			return s
		}
		usr := *s.User
		if a.Patch.Username != nil {
			usr.Username = *a.Patch.Username
		}
		if a.Patch.FullName != nil {
			usr.FullName = *a.Patch.FullName
		}
		if a.Patch.Grade != nil {
			usr.Grade = *a.Patch.Grade
		}
		if a.Patch.ProfileInitials != nil {
			usr.ProfileInitials = *a.Patch.ProfileInitials
		}
		return State{User: &usr, IsLoggedIn: true}
	}
	return s
}
