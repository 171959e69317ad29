package views

import (
	"context"
	"strings"

	"github.com/korhvimtv/code-collab/internal/entities"
	"github.com/korhvimtv/code-collab/internal/repository"

	"go.uber.org/zap"
)

// SearchKind selects which entity kind a search targets.
type SearchKind string

const (
	// SearchProjects matches project titles.
	SearchProjects SearchKind = "projects"
	// SearchUsers matches usernames.
	SearchUsers SearchKind = "users"
)

// Target is a kind-tagged navigation destination produced by selecting a
// search result.
type Target struct {
	Kind      SearchKind
	ProjectID int
	Username  string
}

// Result is one row of the open result panel.
type Result struct {
	Target   Target
	Title    string
	Subtitle string
}

// SearchView drives the type-ahead search projection. One submit dispatches
// exactly one search call for the selected kind and replaces the prior
// result list.
type SearchView struct {
	repo repository.Repository
	log  *zap.SugaredLogger

	Kind    SearchKind
	Query   string
	Open    bool
	Loading bool

	// resultsKind is the kind active at submit time, so toggling the
	// selector afterwards does not re-tag existing results.
	resultsKind SearchKind
	projects    []entities.Project
	users       []entities.User
}

// NewSearch constructs the search view defaulting to projects.
func NewSearch(log *zap.SugaredLogger, repo repository.Repository) *SearchView {
	return &SearchView{
		repo: repo,
		log:  log.Named("view.search"),
		Kind: SearchProjects,
	}
}

// SetKind switches the selector. The previous query is not re-run.
func (v *SearchView) SetKind(kind SearchKind) {
	v.Kind = kind
}

// SetQuery updates the free-text query.
func (v *SearchView) SetQuery(query string) {
	v.Query = query
}

// Submit dispatches one search for the current kind. A blank query is
// short-circuited without a request. On failure the panel opens empty and
// the error is returned for display.
func (v *SearchView) Submit(ctx context.Context) error {
	query := strings.TrimSpace(v.Query)
	if query == "" {
		return nil
	}

	v.Loading = true
	defer func() { v.Loading = false }()

	v.projects = nil
	v.users = nil
	v.resultsKind = v.Kind

	var err error
	switch v.Kind {
	case SearchUsers:
		v.users, err = v.repo.SearchUsers(ctx, query)
	default:
		v.projects, err = v.repo.SearchProjects(ctx, query)
	}

	v.Open = true
	if err != nil {
		v.log.Errorw("search failed", "kind", v.Kind, "error", err)
		return err
	}
	return nil
}

// Results returns the rows of the open panel, tagged with the kind that was
// active when the search ran.
func (v *SearchView) Results() []Result {
	switch v.resultsKind {
	case SearchUsers:
		res := make([]Result, 0, len(v.users))
		for _, u := range v.users {
			res = append(res, Result{
				Target:   Target{Kind: SearchUsers, Username: u.Username},
				Title:    u.Name,
				Subtitle: "@" + u.Username,
			})
		}
		return res
	case SearchProjects:
		res := make([]Result, 0, len(v.projects))
		for _, p := range v.projects {
			res = append(res, Result{
				Target:   Target{Kind: SearchProjects, ProjectID: p.ID},
				Title:    p.Title,
				Subtitle: p.Description,
			})
		}
		return res
	default:
		return nil
	}
}

// Select picks one result by index, closes the panel and clears the query.
// The returned target tells the caller where to navigate.
func (v *SearchView) Select(i int) (Target, bool) {
	results := v.Results()
	if i < 0 || i >= len(results) {
		return Target{}, false
	}

	v.Open = false
	v.Query = ""
	return results[i].Target, true
}

// Dismiss closes the panel without navigating.
func (v *SearchView) Dismiss() {
	v.Open = false
}
