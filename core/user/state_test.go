package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce_SetUser(t *testing.T) {
	tests := []struct {
		name         string
		usr          User
		wantInitials string
	}{
		{"derives initials from full name", User{Username: "amina", FullName: "Amina Kabongo"}, "AK"},
		{"keeps provided initials", User{Username: "amina", FullName: "Amina Kabongo", ProfileInitials: "AB"}, "AB"},
		{"three-part name", User{Username: "jdoe", FullName: "Jane de Doe"}, "JDD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := Reduce(InitialState(), SetUser{User: tt.usr})
			require.NotNil(t, st.User)
			assert.True(t, st.IsLoggedIn)
			assert.Equal(t, tt.wantInitials, st.User.ProfileInitials)
		})
	}
}

func TestReduce_ClearUser(t *testing.T) {
	st := Reduce(InitialState(), SetUser{User: User{Username: "amina", FullName: "Amina Kabongo"}})
	st = Reduce(st, ClearUser{})
	assert.Nil(t, st.User)
	assert.False(t, st.IsLoggedIn)
}

func TestReduce_UpdateUserDetails(t *testing.T) {
	grade := "Pre-K"

	// no-op when logged out
	st := Reduce(InitialState(), UpdateUserDetails{Patch: Patch{Grade: &grade}})
	assert.Nil(t, st.User)
	assert.False(t, st.IsLoggedIn)

	st = Reduce(InitialState(), SetUser{User: User{Username: "amina", FullName: "Amina Kabongo"}})
	st = Reduce(st, UpdateUserDetails{Patch: Patch{Grade: &grade}})
	require.NotNil(t, st.User)
	assert.Equal(t, "Pre-K", st.User.Grade)
	assert.Equal(t, "amina", st.User.Username) // untouched
}

func TestLogin_Validate(t *testing.T) {
	l := &Login{Username: "  Amina ", FullName: " Amina Kabongo "}
	require.NoError(t, l.Validate())
	assert.Equal(t, "amina", l.Username)
	assert.Equal(t, "Amina Kabongo", l.FullName)
	assert.Equal(t, "AK", l.User().ProfileInitials)

	assert.Error(t, (&Login{Username: "amina"}).Validate())
	assert.Error(t, (&Login{FullName: "Amina Kabongo"}).Validate())
}
