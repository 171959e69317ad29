// Package mapper converts between wire DTOs and domain models.
package mapper

import (
	"github.com/korhvimtv/code-collab/internal/api"
	"github.com/korhvimtv/code-collab/internal/entities"
)

// FromAPIUser builds an entities.User from its wire form.
func FromAPIUser(src api.User) entities.User {
	return entities.User{
		ID:       src.ID,
		Username: src.Username,
		Name:     src.Name,
		Email:    src.Email,
	}
}

// FromAPIUserList maps a slice of wire users to domain users.
func FromAPIUserList(list []api.User) []entities.User {
	res := make([]entities.User, 0, len(list))
	for _, u := range list {
		res = append(res, FromAPIUser(u))
	}
	return res
}

// FromAPIProject builds an entities.Project with its memberships.
func FromAPIProject(src api.Project) entities.Project {
	members := make([]entities.Membership, 0, len(src.Members))
	for _, m := range src.Members {
		members = append(members, entities.Membership{
			UserID:    m.UserID,
			Username:  m.Username,
			IsCreator: m.IsCreator,
		})
	}

	return entities.Project{
		ID:          src.ID,
		Title:       src.Title,
		Description: src.Description,
		Members:     members,
	}
}

// FromAPIProjectList maps a slice of wire projects to domain projects.
func FromAPIProjectList(list []api.Project) []entities.Project {
	res := make([]entities.Project, 0, len(list))
	for _, p := range list {
		res = append(res, FromAPIProject(p))
	}
	return res
}

// FromAPITask builds an entities.Task with its assignees and back-reference.
func FromAPITask(src api.Task) entities.Task {
	members := make([]entities.TaskAssignee, 0, len(src.Members))
	for _, m := range src.Members {
		members = append(members, entities.TaskAssignee{
			UserID:   m.UserID,
			Username: m.Username,
		})
	}

	return entities.Task{
		ID:          src.ID,
		Title:       src.Title,
		Description: src.Description,
		Deadline:    src.Deadline,
		Completed:   src.Completed,
		Project: entities.TaskRef{
			ProjectID:    src.Project.ProjectID,
			ProjectTitle: src.Project.ProjectTitle,
		},
		Members: members,
	}
}

// FromAPITaskList maps a slice of wire tasks to domain tasks.
func FromAPITaskList(list []api.Task) []entities.Task {
	res := make([]entities.Task, 0, len(list))
	for _, t := range list {
		res = append(res, FromAPITask(t))
	}
	return res
}

// ToAPIUserUpdate maps a partial profile change to its wire form.
func ToAPIUserUpdate(src entities.UserUpdate) api.UserUpdate {
	return api.UserUpdate{
		Name:     src.Name,
		Username: src.Username,
		Email:    src.Email,
		Password: src.Password,
	}
}

// ToAPIProjectUpdate maps a partial project change to its wire form.
func ToAPIProjectUpdate(src entities.ProjectUpdate) api.ProjectUpdate {
	return api.ProjectUpdate{
		Title:       src.Title,
		Description: src.Description,
	}
}

// ToAPITaskUpdate maps a partial task change to its wire form.
func ToAPITaskUpdate(src entities.TaskUpdate) api.TaskUpdate {
	return api.TaskUpdate{
		Title:       src.Title,
		Description: src.Description,
		Deadline:    src.Deadline,
		Completed:   src.Completed,
	}
}
