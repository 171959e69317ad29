// Package repository contains repository interfaces for the remote domain.
package repository

import (
	"context"
	"time"

	"github.com/korhvimtv/code-collab/internal/entities"
)

// AccountInterface exposes operations on the authenticated account.
type AccountInterface interface {
	Register(ctx context.Context, user entities.User) (*entities.User, error)
	Login(ctx context.Context, username, password string) error
	Logout()
	Me(ctx context.Context) (*entities.User, error)
	MyProjects(ctx context.Context) ([]entities.Project, error)
}

// UserInterface exposes user lookups and profile mutations.
type UserInterface interface {
	ListUsers(ctx context.Context) ([]entities.User, error)
	GetUser(ctx context.Context, id int) (*entities.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
	UserProjectsByUsername(ctx context.Context, username string) ([]entities.Project, error)
	SearchUsers(ctx context.Context, fragment string) ([]entities.User, error)
	CreateUser(ctx context.Context, user entities.User) (*entities.User, error)
	UpdateUser(ctx context.Context, id int, update entities.UserUpdate) error
	DeleteUser(ctx context.Context, id int) error
}

// ProjectInterface exposes project operations.
type ProjectInterface interface {
	CreateProject(ctx context.Context, title, description string) (*entities.Project, error)
	ListProjects(ctx context.Context) ([]entities.Project, error)
	SearchProjects(ctx context.Context, fragment string) ([]entities.Project, error)
	GetProject(ctx context.Context, id int) (*entities.Project, error)
	UpdateProject(ctx context.Context, id int, update entities.ProjectUpdate) error
	DeleteProject(ctx context.Context, id int) error
	InviteToProject(ctx context.Context, projectID, userID int, isCreator bool) error
	ProjectTasks(ctx context.Context, projectID int) ([]entities.Task, error)
}

// TaskInterface exposes task operations. Task endpoints live under the
// singular /task/{id} path, asymmetric with /projects/{id}; the form is kept
// as is for server compatibility.
type TaskInterface interface {
	CreateTask(ctx context.Context, projectID, assigneeID int, title, description string, deadline time.Time) (*entities.Task, error)
	GetTask(ctx context.Context, id int) (*entities.Task, error)
	UpdateTask(ctx context.Context, id int, update entities.TaskUpdate) error
	DeleteTask(ctx context.Context, id int) error
	InviteToTask(ctx context.Context, taskID, projectID, userID int) error
}
