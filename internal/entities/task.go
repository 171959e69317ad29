// Package entities contains core business entities.
package entities

import "time"

// TaskRef is a weak back-reference identifying the project a task belongs
// to. It identifies but does not own the project.
type TaskRef struct {
	ProjectID    int
	ProjectTitle string
}

// TaskAssignee is a user listed on a task. Assignees are distinct from
// project memberships, no overlap is enforced.
type TaskAssignee struct {
	UserID   int
	Username string
}

// Task is a unit of work with a deadline inside a project.
type Task struct {
	ID          int
	Title       string
	Description string
	Deadline    time.Time
	Completed   bool
	Project     TaskRef
	Members     []TaskAssignee
}

// TaskUpdate carries optional task changes. Nil fields are left as is, so a
// completion toggle sends only Completed.
type TaskUpdate struct {
	Title       *string
	Description *string
	Deadline    *time.Time
	Completed   *bool
}
