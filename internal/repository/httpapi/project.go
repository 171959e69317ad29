package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/korhvimtv/code-collab/internal/api"
	"github.com/korhvimtv/code-collab/internal/entities"
	"github.com/korhvimtv/code-collab/internal/mapper"
)

// CreateProject creates a project. The server makes the caller its first
// creator membership.
func (c *Client) CreateProject(ctx context.Context, title, description string) (*entities.Project, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", entities.ErrInvalidArgument)
	}

	raw, err := c.gw.Send(ctx, http.MethodPost, "/projects", api.ProjectCreate{
		Title:       title,
		Description: description,
	})
	if err != nil {
		return nil, err
	}

	var dto api.Project
	if err := decodeInto(raw, &dto); err != nil {
		return nil, err
	}
	created := mapper.FromAPIProject(dto)
	c.log.Infow("project created", "project_id", created.ID, "title", created.Title)
	return &created, nil
}

// ListProjects returns all projects in server-defined order.
func (c *Client) ListProjects(ctx context.Context) ([]entities.Project, error) {
	var list []api.Project
	if err := c.get(ctx, "/projects", &list); err != nil {
		return nil, err
	}
	return mapper.FromAPIProjectList(list), nil
}

// SearchProjects returns projects whose title contains fragment. The client
// performs no local filtering on top of the server's.
func (c *Client) SearchProjects(ctx context.Context, fragment string) ([]entities.Project, error) {
	if fragment == "" {
		return nil, fmt.Errorf("%w: search fragment is required", entities.ErrInvalidArgument)
	}

	var list []api.Project
	if err := c.get(ctx, "/projects/search?title="+url.QueryEscape(fragment), &list); err != nil {
		return nil, err
	}
	return mapper.FromAPIProjectList(list), nil
}

// GetProject returns one project with its membership list.
func (c *Client) GetProject(ctx context.Context, id int) (*entities.Project, error) {
	var dto api.Project
	if err := c.get(ctx, fmt.Sprintf("/projects/%d", id), &dto); err != nil {
		return nil, err
	}
	p := mapper.FromAPIProject(dto)
	return &p, nil
}

// UpdateProject applies a partial update. Creator only, enforced server-side.
func (c *Client) UpdateProject(ctx context.Context, id int, update entities.ProjectUpdate) error {
	_, err := c.gw.Send(ctx, http.MethodPut, fmt.Sprintf("/projects/%d", id), mapper.ToAPIProjectUpdate(update))
	return err
}

// DeleteProject removes a project. Creator only, enforced server-side.
func (c *Client) DeleteProject(ctx context.Context, id int) error {
	_, err := c.gw.Send(ctx, http.MethodDelete, fmt.Sprintf("/projects/%d", id), nil)
	return err
}

// InviteToProject adds one user to one project with a role fixed at invite
// time; memberships have no later role update.
func (c *Client) InviteToProject(ctx context.Context, projectID, userID int, isCreator bool) error {
	_, err := c.gw.Send(ctx, http.MethodPost, "/projects/invite", api.ProjectInvite{
		ProjectID: projectID,
		UserID:    userID,
		IsCreator: isCreator,
	})
	if err != nil {
		return err
	}
	c.log.Infow("user invited", "project_id", projectID, "user_id", userID, "is_creator", isCreator)
	return nil
}

// ProjectTasks returns the tasks of a project. Members only, enforced
// server-side.
func (c *Client) ProjectTasks(ctx context.Context, projectID int) ([]entities.Task, error) {
	var list []api.Task
	if err := c.get(ctx, fmt.Sprintf("/projects/%d/tasks", projectID), &list); err != nil {
		return nil, err
	}
	return mapper.FromAPITaskList(list), nil
}
