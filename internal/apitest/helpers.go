package apitest

import (
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/korhvimtv/code-collab/internal/api"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// requestLogger logs requests with method, path, status and duration.
func requestLogger(log *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Debugw("api",
			"method", c.Method(),
			"path", c.OriginalURL(),
			"status", c.Response().StatusCode(),
			"duration_ms", float64(time.Since(start).Microseconds())/1000.0,
		)
		return err
	}
}

// detail writes a FastAPI-style error body.
func detail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{"detail": msg})
}

func message(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusOK).JSON(api.Message{Message: msg})
}

// current resolves the bearer token to a user. Callers hold s.mu.
func (s *Server) current(c *fiber.Ctx) *userRecord {
	auth := c.Get(fiber.HeaderAuthorization)
	token, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok || token == "" {
		return nil
	}
	id, ok := s.tokens[token]
	if !ok {
		return nil
	}
	return s.users[id]
}

func userDTO(u *userRecord) api.User {
	return api.User{
		ID:       u.id,
		Username: u.username,
		Name:     u.name,
		Email:    u.email,
	}
}

// projectDTO builds the wire project with resolved member usernames.
// Callers hold s.mu.
func (s *Server) projectDTO(p *projectRecord) api.Project {
	members := make([]api.Member, 0, len(p.members))
	for _, m := range p.members {
		username := ""
		if u, ok := s.users[m.userID]; ok {
			username = u.username
		}
		members = append(members, api.Member{
			UserID:    m.userID,
			Username:  username,
			IsCreator: m.isCreator,
		})
	}

	return api.Project{
		ID:          p.id,
		Title:       p.title,
		Description: p.description,
		Members:     members,
	}
}

// taskDTO builds the wire task with its project back-reference and
// assignees. Callers hold s.mu.
func (s *Server) taskDTO(t *taskRecord) api.Task {
	ref := api.TaskProject{ProjectID: t.projectID}
	if p, ok := s.projects[t.projectID]; ok {
		ref.ProjectTitle = p.title
	}

	members := make([]api.TaskMember, 0, len(t.assignees))
	for _, id := range t.assignees {
		username := ""
		if u, ok := s.users[id]; ok {
			username = u.username
		}
		members = append(members, api.TaskMember{UserID: id, Username: username})
	}

	return api.Task{
		ID:          t.id,
		Title:       t.title,
		Description: t.description,
		Deadline:    t.deadline,
		Completed:   t.completed,
		Project:     ref,
		Members:     members,
	}
}

func isMember(p *projectRecord, userID int) bool {
	for _, m := range p.members {
		if m.userID == userID {
			return true
		}
	}
	return false
}

func isCreator(p *projectRecord, userID int) bool {
	for _, m := range p.members {
		if m.userID == userID && m.isCreator {
			return true
		}
	}
	return false
}

func sortedIDs[T any](m map[int]T) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
