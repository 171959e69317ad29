package views

import (
	"context"

	"github.com/korhvimtv/code-collab/internal/entities"
	"github.com/korhvimtv/code-collab/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// UserDetailView drives the public user profile screen: the user looked up
// by username and the projects they belong to.
type UserDetailView struct {
	repo repository.Repository
	log  *zap.SugaredLogger

	Username string
	Phase    Phase
	Err      error

	User     *entities.User
	Projects []entities.Project
}

// NewUserDetail constructs the view for one username.
func NewUserDetail(log *zap.SugaredLogger, repo repository.Repository, username string) *UserDetailView {
	return &UserDetailView{
		repo:     repo,
		log:      log.Named("view.user"),
		Username: username,
		Phase:    PhaseIdle,
	}
}

// Load fetches the user and their projects concurrently; the join is
// all-or-nothing, an unknown username fails the screen.
func (v *UserDetailView) Load(ctx context.Context) error {
	reload := v.User != nil
	if !reload {
		v.Phase = PhaseLoading
	}

	var (
		user     *entities.User
		projects []entities.Project
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		u, err := v.repo.GetUserByUsername(gctx, v.Username)
		if err != nil {
			return err
		}
		user = u
		return nil
	})
	g.Go(func() error {
		ps, err := v.repo.UserProjectsByUsername(gctx, v.Username)
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

	v.User = user
	v.Projects = projects
	v.Phase = PhaseReady
	v.Err = nil
	return nil
}
