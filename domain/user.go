package domain

import "github.com/google/uuid"

// An Account groups Users under one subscription and one shared access state.
type Account struct {
	Model
	AccessState AccessState
	Name        string
}

// A User is a stock implementation of middleware.User
// for apps that do not need their own.
type User struct {
	Model
	AccessState AccessState
	AccountID   uint
	Email       string
	ExternalID  uuid.UUID

	Account *Account
}

// HasAccess asserts whether the User - and the Account it belongs to, if any -
// is granted access to the application.
func (u User) HasAccess() bool {
	if u.Account != nil {
		return u.Account.AccessState == AccessGranted && u.AccessState == AccessGranted
	}

	return u.AccessState == AccessGranted
}

// HomePath routes the User to the appropriate landing page for their access.
func (u User) HomePath() string {
	if !u.HasAccess() {
		return "/login"
	}

	return "/"
}
