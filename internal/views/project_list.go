package views

import (
	"context"
	"fmt"

	"github.com/korhvimtv/code-collab/internal/access"
	"github.com/korhvimtv/code-collab/internal/entities"
	"github.com/korhvimtv/code-collab/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ProjectListView drives the projects listing screen: the caller's own
// projects, the public catalog and the current user.
type ProjectListView struct {
	repo repository.Repository
	log  *zap.SugaredLogger

	Phase Phase
	Err   error

	Mine []entities.Project
	All  []entities.Project
	Me   *entities.User
}

// NewProjectList constructs the listing view.
func NewProjectList(log *zap.SugaredLogger, repo repository.Repository) *ProjectListView {
	return &ProjectListView{
		repo:  repo,
		log:   log.Named("view.projects"),
		Phase: PhaseIdle,
	}
}

// Load fetches all three queries concurrently. Each one is individually
// tolerated with an empty fallback: an anonymous visitor still sees the
// public catalog.
func (v *ProjectListView) Load(ctx context.Context) error {
	if v.Phase == PhaseIdle || v.Phase == PhaseFailed {
		v.Phase = PhaseLoading
	}

	var (
		mine []entities.Project
		all  []entities.Project
		me   *entities.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if ps, err := v.repo.MyProjects(gctx); err == nil {
			mine = ps
		}
		return nil
	})
	g.Go(func() error {
		if ps, err := v.repo.ListProjects(gctx); err == nil {
			all = ps
		}
		return nil
	})
	g.Go(func() error {
		if u, err := v.repo.Me(gctx); err == nil {
			me = u
		}
		return nil
	})
	_ = g.Wait()

	v.Mine = mine
	v.All = all
	v.Me = me
	v.Phase = PhaseReady
	v.Err = nil
	return nil
}

// CreateProject creates a project and reloads the listing.
func (v *ProjectListView) CreateProject(ctx context.Context, title, description string) error {
	if v.Phase != PhaseReady {
		return fmt.Errorf("%w: phase is %s", entities.ErrNotReady, v.Phase)
	}

	v.Phase = PhaseMutating
	if _, err := v.repo.CreateProject(ctx, title, description); err != nil {
		v.Phase = PhaseReady
		v.Err = err
		return err
	}
	return v.Load(ctx)
}

// MemberOf reports the current user's membership in a listed project.
func (v *ProjectListView) MemberOf(p *entities.Project) bool {
	return access.IsMember(p, v.Me)
}

// CreatorOf reports the current user's creator role in a listed project.
func (v *ProjectListView) CreatorOf(p *entities.Project) bool {
	return access.IsCreator(p, v.Me)
}
