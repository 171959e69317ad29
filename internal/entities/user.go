// Package entities contains core business entities.
package entities

// User is an account in the collaboration service. Password is write-only:
// it travels on register and profile updates and is never present on read
// responses.
type User struct {
	ID       int
	Username string
	Name     string
	Email    string
	Password string
}

// UserUpdate carries optional profile changes. Nil fields are left as is.
type UserUpdate struct {
	Name     *string
	Username *string
	Email    *string
	Password *string
}
