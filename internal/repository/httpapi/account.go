package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/korhvimtv/code-collab/internal/api"
	"github.com/korhvimtv/code-collab/internal/entities"
	"github.com/korhvimtv/code-collab/internal/mapper"
)

// Register creates an account. The password travels only in the request.
func (c *Client) Register(ctx context.Context, user entities.User) (*entities.User, error) {
	if user.Username == "" || user.Password == "" {
		return nil, fmt.Errorf("%w: username and password are required", entities.ErrInvalidArgument)
	}

	raw, err := c.gw.Send(ctx, http.MethodPost, "/auth/register", api.RegisterRequest{
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
	c.log.Infow("account registered", "username", created.Username, "user_id", created.ID)
	return &created, nil
}

// Login exchanges credentials for a bearer token and stores it in the
// session holder.
func (c *Client) Login(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return fmt.Errorf("%w: username and password are required", entities.ErrInvalidArgument)
	}

	raw, err := c.gw.Send(ctx, http.MethodPost, "/auth/login", api.LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return err
	}

	var dto api.LoginResponse
	if err := decodeInto(raw, &dto); err != nil {
		return err
	}
	c.session.Set(dto.AccessToken)
	c.log.Infow("logged in", "username", username)
	return nil
}

// Logout clears the stored credential. No request is issued; the server
// keeps no session state.
func (c *Client) Logout() {
	c.session.Clear()
}

// Me returns the account owning the current token.
func (c *Client) Me(ctx context.Context) (*entities.User, error) {
	var dto api.User
	if err := c.get(ctx, "/me", &dto); err != nil {
		return nil, err
	}
	me := mapper.FromAPIUser(dto)
	return &me, nil
}

// MyProjects returns projects where the current user is a member.
func (c *Client) MyProjects(ctx context.Context) ([]entities.Project, error) {
	var list []api.Project
	if err := c.get(ctx, "/me/projects", &list); err != nil {
		return nil, err
	}
	return mapper.FromAPIProjectList(list), nil
}
