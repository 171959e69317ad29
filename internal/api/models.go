// Package api defines the wire representations of the CodeCollab HTTP API.
package api

import "time"

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer credential.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// User is a read representation of an account. Passwords never appear here.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// UserUpdate is a partial profile update. Unset fields are omitted.
type UserUpdate struct {
	Name     *string `json:"name,omitempty"`
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

// Member is one membership row embedded in a project.
type Member struct {
	UserID    int    `json:"user_id"`
	Username  string `json:"username"`
	IsCreator bool   `json:"is_creator"`
}

// Project is a read representation of a project with its members.
type Project struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Members     []Member `json:"members"`
}

// ProjectCreate is the body of POST /projects.
type ProjectCreate struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ProjectUpdate is a partial project update.
type ProjectUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ProjectInvite is the body of POST /projects/invite.
type ProjectInvite struct {
	ProjectID int  `json:"project_id"`
	UserID    int  `json:"user_id"`
	IsCreator bool `json:"is_creator"`
}

// TaskProject is the weak back-reference embedded in a task.
type TaskProject struct {
	ProjectID    int    `json:"project_id"`
	ProjectTitle string `json:"project_title"`
}

// TaskMember is one assignee row embedded in a task.
type TaskMember struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
}

// Task is a read representation of a task. Deadline round-trips through
// RFC 3339 without losing the instant.
type Task struct {
	ID          int          `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Deadline    time.Time    `json:"deadline"`
	Completed   bool         `json:"completed"`
	Project     TaskProject  `json:"project"`
	Members     []TaskMember `json:"members"`
}

// TaskCreate is the body of POST /tasks.
type TaskCreate struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Deadline    time.Time `json:"deadline"`
}

// TaskUpdate is a partial task update. A completion toggle sends only
// Completed.
type TaskUpdate struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Completed   *bool      `json:"completed,omitempty"`
}

// TaskInvite is the body of POST /task/{id}.
type TaskInvite struct {
	UserID    int `json:"user_id"`
	ProjectID int `json:"project_id"`
	TaskID    int `json:"task_id"`
}

// Message is the acknowledgement body returned by update and delete
// endpoints. Callers reload instead of consuming it.
type Message struct {
	Message string `json:"message"`
}
