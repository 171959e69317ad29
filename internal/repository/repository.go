// Package repository provides factory for repositories.
package repository

import (
	"fmt"

	"github.com/korhvimtv/code-collab/internal/gateway"
	"github.com/korhvimtv/code-collab/internal/repository/httpapi"
	"github.com/korhvimtv/code-collab/internal/session"

	"go.uber.org/zap"
)

// Repository aggregates all remote domain interfaces.
type Repository interface {
	AccountInterface
	UserInterface
	ProjectInterface
	TaskInterface
}

// New constructs a repository backend by name.
func New(name string, log *zap.SugaredLogger, gw *gateway.Gateway, sess *session.Session) (Repository, error) {
	switch name {
	case "http":
		return httpapi.New(log, gw, sess), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
