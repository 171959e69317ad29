package apitest

import (
	"net/http"

	"github.com/korhvimtv/code-collab/internal/api"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func (s *Server) register(c *fiber.Ctx) error {
	var body api.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return detail(c, http.StatusBadRequest, "invalid body")
	}
	if body.Username == "" || body.Password == "" {
		return detail(c, http.StatusBadRequest, "Username and password required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.username == body.Username || u.email == body.Email {
			return detail(c, http.StatusBadRequest, "User with this username or email already exists")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.MinCost)
	if err != nil {
		return detail(c, http.StatusInternalServerError, "hash failure")
	}

	u := &userRecord{
		id:           s.id(),
		name:         body.Name,
		username:     body.Username,
		email:        body.Email,
		passwordHash: hash,
	}
	s.users[u.id] = u
	return c.Status(http.StatusOK).JSON(userDTO(u))
}

func (s *Server) login(c *fiber.Ctx) error {
	var body api.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return detail(c, http.StatusBadRequest, "invalid body")
	}
	if body.Username == "" || body.Password == "" {
		return detail(c, http.StatusBadRequest, "Username and password required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.username != body.Username {
			continue
		}
		if bcrypt.CompareHashAndPassword(u.passwordHash, []byte(body.Password)) != nil {
			break
		}
		token := uuid.NewString()
		s.tokens[token] = u.id
		return c.Status(http.StatusOK).JSON(api.LoginResponse{
			AccessToken: token,
			TokenType:   "bearer",
		})
	}
	return detail(c, http.StatusUnauthorized, "Invalid credentials")
}

func (s *Server) me(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current(c)
	if cur == nil {
		return detail(c, http.StatusUnauthorized, "Not authenticated")
	}
	return c.Status(http.StatusOK).JSON(userDTO(cur))
}

func (s *Server) myProjects(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current(c)
	if cur == nil {
		return detail(c, http.StatusUnauthorized, "Not authenticated")
	}

	list := make([]api.Project, 0)
	for _, id := range sortedIDs(s.projects) {
		if p := s.projects[id]; isMember(p, cur.id) {
			list = append(list, s.projectDTO(p))
		}
	}
	return c.Status(http.StatusOK).JSON(list)
}
