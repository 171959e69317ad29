package views

import (
	"context"
	"fmt"

	"github.com/korhvimtv/code-collab/internal/entities"
	"github.com/korhvimtv/code-collab/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// AccountView drives the signed-in account screen: the profile and the
// user's project list.
type AccountView struct {
	repo repository.Repository
	log  *zap.SugaredLogger

	Phase Phase
	Err   error

	Me       *entities.User
	Projects []entities.Project
}

// NewAccount constructs the account view.
func NewAccount(log *zap.SugaredLogger, repo repository.Repository) *AccountView {
	return &AccountView{
		repo:  repo,
		log:   log.Named("view.account"),
		Phase: PhaseIdle,
	}
}

// Load fetches the profile and project list concurrently. Both are required,
// the join is all-or-nothing.
func (v *AccountView) Load(ctx context.Context) error {
	reload := v.Me != nil
	if !reload {
		v.Phase = PhaseLoading
	}

	var (
		me       *entities.User
		projects []entities.Project
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		u, err := v.repo.Me(gctx)
		if err != nil {
			return err
		}
		me = u
		return nil
	})
	g.Go(func() error {
		ps, err := v.repo.MyProjects(gctx)
		if err != nil {
			return err
		}
		projects = ps
		return nil
	})

	if err := g.Wait(); err != nil {
		v.Err = err
		if reload {
			v.Phase = PhaseReady
		} else {
			v.Phase = PhaseFailed
		}
		return err
	}

	v.Me = me
	v.Projects = projects
	v.Phase = PhaseReady
	v.Err = nil
	return nil
}

func (v *AccountView) mutate(ctx context.Context, op func(context.Context) error) error {
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

// SaveProfile applies a partial profile update.
func (v *AccountView) SaveProfile(ctx context.Context, update entities.UserUpdate) error {
	return v.mutate(ctx, func(ctx context.Context) error {
		return v.repo.UpdateUser(ctx, v.Me.ID, update)
	})
}

// CreateProject creates a project owned by the current user.
func (v *AccountView) CreateProject(ctx context.Context, title, description string) error {
	return v.mutate(ctx, func(ctx context.Context) error {
		_, err := v.repo.CreateProject(ctx, title, description)
		return err
	})
}

// DeleteAccount removes the account after confirmation. On success the
// session is cleared and the view is terminal; there is no reload of a
// deleted self.
func (v *AccountView) DeleteAccount(ctx context.Context, confirm Confirmer) (bool, error) {
	if v.Phase != PhaseReady {
		return false, fmt.Errorf("%w: phase is %s", entities.ErrNotReady, v.Phase)
	}
	if !confirm.Confirm("Delete your account? This action cannot be undone.") {
		return false, nil
	}

	v.Phase = PhaseMutating
	if err := v.repo.DeleteUser(ctx, v.Me.ID); err != nil {
		v.Phase = PhaseReady
		v.Err = err
		return false, err
	}

	v.log.Infow("account deleted", "user_id", v.Me.ID)
	v.repo.Logout()
	v.Me = nil
	v.Projects = nil
	v.Err = nil
	v.Phase = PhaseIdle
	return true, nil
}
