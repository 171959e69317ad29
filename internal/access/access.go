// Package access derives UI capabilities from loaded project data. The
// functions are pure read-time projections: the server enforces the same
// rules, so nothing here is a security boundary. All functions are total
// and treat an absent project or user as no access.
package access

import "github.com/korhvimtv/code-collab/internal/entities"

// IsMember reports whether user holds any membership in project.
func IsMember(project *entities.Project, user *entities.User) bool {
	if project == nil || user == nil {
		return false
	}
	for _, m := range project.Members {
		if m.UserID == user.ID {
			return true
		}
	}
	return false
}

// IsCreator reports whether user holds a creator membership in project.
func IsCreator(project *entities.Project, user *entities.User) bool {
	if project == nil || user == nil {
		return false
	}
	for _, m := range project.Members {
		if m.UserID == user.ID && m.IsCreator {
			return true
		}
	}
	return false
}

// CanInvite reports whether user may invite others to project.
func CanInvite(project *entities.Project, user *entities.User) bool {
	return IsCreator(project, user)
}

// CanEditProject reports whether user may change project settings.
func CanEditProject(project *entities.Project, user *entities.User) bool {
	return IsCreator(project, user)
}

// CanDeleteProject reports whether user may delete the project.
func CanDeleteProject(project *entities.Project, user *entities.User) bool {
	return IsCreator(project, user)
}

// CanCreateTask reports whether user may create tasks in project.
func CanCreateTask(project *entities.Project, user *entities.User) bool {
	return IsMember(project, user)
}

// CanViewTasks reports whether user may see the project's task list.
func CanViewTasks(project *entities.Project, user *entities.User) bool {
	return IsMember(project, user)
}

// CanToggleTask reports whether user may flip a task's completed flag.
func CanToggleTask(project *entities.Project, user *entities.User) bool {
	return IsMember(project, user)
}

// CanDeleteTask reports whether user may delete tasks. Delete is granted
// only to creators, not to a task's own assignees.
func CanDeleteTask(project *entities.Project, user *entities.User) bool {
	return IsCreator(project, user)
}

// Gates is the capability set derived for one (project, user) pair.
type Gates struct {
	Member  bool
	Creator bool

	Invite        bool
	EditProject   bool
	DeleteProject bool
	CreateTask    bool
	ViewTasks     bool
	ToggleTask    bool
	DeleteTask    bool
}

// For computes the full gate set in one pass over the membership list.
func For(project *entities.Project, user *entities.User) Gates {
	member := IsMember(project, user)
	creator := IsCreator(project, user)
	return Gates{
		Member:        member,
		Creator:       creator,
		Invite:        creator,
		EditProject:   creator,
		DeleteProject: creator,
		CreateTask:    member,
		ViewTasks:     member,
		ToggleTask:    member,
		DeleteTask:    creator,
	}
}
