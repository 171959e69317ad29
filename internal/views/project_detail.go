package views

import (
	"context"
	"fmt"
	"time"

	"github.com/korhvimtv/code-collab/internal/access"
	"github.com/korhvimtv/code-collab/internal/entities"
	"github.com/korhvimtv/code-collab/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ProjectDetailView drives the project detail screen: the project, its task
// list, the current user and the capability gates derived from them.
type ProjectDetailView struct {
	repo repository.Repository
	log  *zap.SugaredLogger

	ProjectID int
	Phase     Phase
	Err       error

	Project *entities.Project
	Me      *entities.User
	Tasks   []entities.Task
	Gates   access.Gates
}

// NewProjectDetail constructs the view for one project id.
func NewProjectDetail(log *zap.SugaredLogger, repo repository.Repository, projectID int) *ProjectDetailView {
	return &ProjectDetailView{
		repo:      repo,
		log:       log.Named("view.project"),
		ProjectID: projectID,
		Phase:     PhaseIdle,
	}
}

// Load fetches the screen's backing queries concurrently and joins them.
// The project itself is required; the current user degrades to anonymous
// and the task list to empty, since both are denied to outsiders and the
// screen still renders for them.
func (v *ProjectDetailView) Load(ctx context.Context) error {
	reload := v.Project != nil
	if !reload {
		v.Phase = PhaseLoading
	}

	var (
		project *entities.Project
		me      *entities.User
		tasks   []entities.Task
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := v.repo.GetProject(gctx, v.ProjectID)
		if err != nil {
			return err
		}
		project = p
		return nil
	})
	g.Go(func() error {
		if u, err := v.repo.Me(gctx); err == nil {
			me = u
		}
		return nil
	})
	g.Go(func() error {
		if ts, err := v.repo.ProjectTasks(gctx, v.ProjectID); err == nil {
			tasks = ts
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		v.Err = err
		if reload {
			// Stale data stays on screen.
			v.Phase = PhaseReady
		} else {
			v.Phase = PhaseFailed
		}
		return err
	}

	v.Project = project
	v.Me = me
	v.Tasks = tasks
	v.Gates = access.For(project, me)
	v.Phase = PhaseReady
	v.Err = nil
	return nil
}

// mutate runs op from Ready through Mutating and reloads on success. A
// failed op returns to Ready with the error surfaced and data retained.
func (v *ProjectDetailView) mutate(ctx context.Context, op func(context.Context) error) error {
	if v.Phase != PhaseReady {
		return fmt.Errorf("%w: phase is %s", entities.ErrNotReady, v.Phase)
	}

	v.Phase = PhaseMutating
	if err := op(ctx); err != nil {
		v.Phase = PhaseReady
		v.Err = err
		return err
	}
	return v.Load(ctx)
}

// Invite adds a user to the project with a role fixed at invite time.
func (v *ProjectDetailView) Invite(ctx context.Context, userID int, isCreator bool) error {
	return v.mutate(ctx, func(ctx context.Context) error {
		return v.repo.InviteToProject(ctx, v.ProjectID, userID, isCreator)
	})
}

// CreateTask creates a task assigned to one user.
func (v *ProjectDetailView) CreateTask(ctx context.Context, assigneeID int, title, description string, deadline time.Time) error {
	return v.mutate(ctx, func(ctx context.Context) error {
		_, err := v.repo.CreateTask(ctx, v.ProjectID, assigneeID, title, description, deadline)
		return err
	})
}

// ToggleTask flips the completed flag of one loaded task.
func (v *ProjectDetailView) ToggleTask(ctx context.Context, taskID int) error {
	task := v.task(taskID)
	if task == nil {
		return fmt.Errorf("%w: task %d is not on this screen", entities.ErrInvalidArgument, taskID)
	}

	next := !task.Completed
	return v.mutate(ctx, func(ctx context.Context) error {
		return v.repo.UpdateTask(ctx, taskID, entities.TaskUpdate{Completed: &next})
	})
}

// SaveSettings applies a partial project update.
func (v *ProjectDetailView) SaveSettings(ctx context.Context, update entities.ProjectUpdate) error {
	return v.mutate(ctx, func(ctx context.Context) error {
		return v.repo.UpdateProject(ctx, v.ProjectID, update)
	})
}

// DeleteTask removes one task after confirmation. Declining performs no
// request and is not an error.
func (v *ProjectDetailView) DeleteTask(ctx context.Context, taskID int, confirm Confirmer) error {
	if !confirm.Confirm("Delete this task?") {
		return nil
	}
	return v.mutate(ctx, func(ctx context.Context) error {
		return v.repo.DeleteTask(ctx, taskID)
	})
}

// DeleteProject removes the project after confirmation. On success the view
// is terminal and reports true: the caller navigates away instead of
// reloading a gone resource.
func (v *ProjectDetailView) DeleteProject(ctx context.Context, confirm Confirmer) (bool, error) {
	if v.Phase != PhaseReady {
		return false, fmt.Errorf("%w: phase is %s", entities.ErrNotReady, v.Phase)
	}
	if !confirm.Confirm("Delete this project?") {
		return false, nil
	}

	v.Phase = PhaseMutating
	if err := v.repo.DeleteProject(ctx, v.ProjectID); err != nil {
		v.Phase = PhaseReady
		v.Err = err
		return false, err
	}

	v.log.Infow("project deleted", "project_id", v.ProjectID)
	v.Project = nil
	v.Me = nil
	v.Tasks = nil
	v.Gates = access.Gates{}
	v.Err = nil
	v.Phase = PhaseIdle
	return true, nil
}

func (v *ProjectDetailView) task(id int) *entities.Task {
	for i := range v.Tasks {
		if v.Tasks[i].ID == id {
			return &v.Tasks[i]
		}
	}
	return nil
}
