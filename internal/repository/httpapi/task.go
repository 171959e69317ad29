package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/korhvimtv/code-collab/internal/api"
	"github.com/korhvimtv/code-collab/internal/entities"
	"github.com/korhvimtv/code-collab/internal/mapper"
)

// CreateTask creates a task inside a project with one initial assignee.
// The deadline round-trips as an RFC 3339 instant.
func (c *Client) CreateTask(ctx context.Context, projectID, assigneeID int, title, description string, deadline time.Time) (*entities.Task, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", entities.ErrInvalidArgument)
	}
	if deadline.IsZero() {
		return nil, fmt.Errorf("%w: deadline is required", entities.ErrInvalidArgument)
	}

	path := fmt.Sprintf("/tasks?project_id=%d&user_id=%d", projectID, assigneeID)
	raw, err := c.gw.Send(ctx, http.MethodPost, path, api.TaskCreate{
		Title:       title,
		Description: description,
		Deadline:    deadline,
	})
	if err != nil {
		return nil, err
	}

	var dto api.Task
	if err := decodeInto(raw, &dto); err != nil {
		return nil, err
	}
	created := mapper.FromAPITask(dto)
	c.log.Infow("task created", "task_id", created.ID, "project_id", projectID)
	return &created, nil
}

// GetTask returns one task by id.
func (c *Client) GetTask(ctx context.Context, id int) (*entities.Task, error) {
	var dto api.Task
	if err := c.get(ctx, fmt.Sprintf("/task/%d", id), &dto); err != nil {
		return nil, err
	}
	t := mapper.FromAPITask(dto)
	return &t, nil
}

// UpdateTask applies a partial update. Setting Completed to its current
// value is a no-op for the caller but still round-trips through the server.
func (c *Client) UpdateTask(ctx context.Context, id int, update entities.TaskUpdate) error {
	_, err := c.gw.Send(ctx, http.MethodPut, fmt.Sprintf("/task/%d", id), mapper.ToAPITaskUpdate(update))
	return err
}

// DeleteTask removes a task. Creator only, enforced server-side.
func (c *Client) DeleteTask(ctx context.Context, id int) error {
	_, err := c.gw.Send(ctx, http.MethodDelete, fmt.Sprintf("/task/%d", id), nil)
	return err
}

// InviteToTask adds one assignee to a task.
func (c *Client) InviteToTask(ctx context.Context, taskID, projectID, userID int) error {
	_, err := c.gw.Send(ctx, http.MethodPost, fmt.Sprintf("/task/%d", taskID), api.TaskInvite{
		UserID:    userID,
		ProjectID: projectID,
		TaskID:    taskID,
	})
	return err
}
