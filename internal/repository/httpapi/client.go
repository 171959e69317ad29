// Package httpapi implements the repository against the CodeCollab HTTP API.
package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/korhvimtv/code-collab/internal/entities"
	"github.com/korhvimtv/code-collab/internal/gateway"
	"github.com/korhvimtv/code-collab/internal/session"

	"go.uber.org/zap"
)

// Client is a thin typed layer over the gateway. Operations decode the
// response into wire DTOs and map them to domain entities; gateway errors
// propagate unchanged so callers can surface the message verbatim.
type Client struct {
	log     *zap.SugaredLogger
	gw      *gateway.Gateway
	session *session.Session
}

// New creates an HTTP repository instance.
func New(log *zap.SugaredLogger, gw *gateway.Gateway, sess *session.Session) *Client {
	return &Client{
		log:     log.Named("repo.http"),
		gw:      gw,
		session: sess,
	}
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	raw, err := c.gw.Send(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return decodeInto(raw, out)
}

// decodeInto unmarshals a non-empty success body. Empty bodies leave out
// untouched.
func decodeInto(raw json.RawMessage, out any) error {
	if raw == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", entities.ErrDecode, err)
	}
	return nil
}
