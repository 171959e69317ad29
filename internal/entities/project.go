// Package entities contains core business entities.
package entities

// Membership links one user to one project with a role flag. It exists only
// embedded in a Project. More than one membership may carry IsCreator; the
// model does not forbid co-owners.
type Membership struct {
	UserID    int
	Username  string
	IsCreator bool
}

// Project aggregates memberships under a title. Members is exactly the set
// of users with access to the project's tasks.
type Project struct {
	ID          int
	Title       string
	Description string
	Members     []Membership
}

// ProjectUpdate carries optional project changes. Nil fields are left as is.
type ProjectUpdate struct {
	Title       *string
	Description *string
}
