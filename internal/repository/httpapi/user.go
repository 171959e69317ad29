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

// ListUsers returns all users in server-defined order.
func (c *Client) ListUsers(ctx context.Context) ([]entities.User, error) {
	var list []api.User
	if err := c.get(ctx, "/users", &list); err != nil {
		return nil, err
	}
	return mapper.FromAPIUserList(list), nil
}

// GetUser returns one user by id.
func (c *Client) GetUser(ctx context.Context, id int) (*entities.User, error) {
	var dto api.User
	if err := c.get(ctx, fmt.Sprintf("/users/%d", id), &dto); err != nil {
		return nil, err
	}
	u := mapper.FromAPIUser(dto)
	return &u, nil
}

// GetUserByUsername returns one user by its immutable username key.
func (c *Client) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", entities.ErrInvalidArgument)
	}

	var dto api.User
	if err := c.get(ctx, "/users/by-username/"+url.PathEscape(username), &dto); err != nil {
		return nil, err
	}
	u := mapper.FromAPIUser(dto)
	return &u, nil
}

// UserProjectsByUsername returns the projects a user belongs to.
func (c *Client) UserProjectsByUsername(ctx context.Context, username string) ([]entities.Project, error) {
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", entities.ErrInvalidArgument)
	}

	var list []api.Project
	if err := c.get(ctx, "/users/by-username/"+url.PathEscape(username)+"/projects", &list); err != nil {
		return nil, err
	}
	return mapper.FromAPIProjectList(list), nil
}

// SearchUsers returns users whose username contains fragment. Empty
// fragments are never sent; callers short-circuit them.
func (c *Client) SearchUsers(ctx context.Context, fragment string) ([]entities.User, error) {
	if fragment == "" {
		return nil, fmt.Errorf("%w: search fragment is required", entities.ErrInvalidArgument)
	}

	var list []api.User
	if err := c.get(ctx, "/users/search?username="+url.QueryEscape(fragment), &list); err != nil {
		return nil, err
	}
	return mapper.FromAPIUserList(list), nil
}

// CreateUser creates an account through the users collection.
func (c *Client) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	if user.Username == "" || user.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", entities.ErrInvalidArgument)
	}

	raw, err := c.gw.Send(ctx, http.MethodPost, "/users", api.RegisterRequest{
		Name:     user.Name,
		Username: user.Username,
		Email:    user.Email,
		Password: user.Password,
	})
	if err != nil {
		return nil, err
	}

	var dto api.User
	if err := decodeInto(raw, &dto); err != nil {
		return nil, err
	}
	created := mapper.FromAPIUser(dto)
	return &created, nil
}

// UpdateUser applies a partial profile update. The server accepts changes
// only for the profile owning the current token.
func (c *Client) UpdateUser(ctx context.Context, id int, update entities.UserUpdate) error {
	_, err := c.gw.Send(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), mapper.ToAPIUserUpdate(update))
	return err
}

// DeleteUser removes an account.
func (c *Client) DeleteUser(ctx context.Context, id int) error {
	_, err := c.gw.Send(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", id), nil)
	return err
}
