package apitest

import (
	"net/http"
	"strings"

	"github.com/korhvimtv/code-collab/internal/api"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func (s *Server) listUsers(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]api.User, 0, len(s.users))
	for _, id := range sortedIDs(s.users) {
		list = append(list, userDTO(s.users[id]))
	}
	return c.Status(http.StatusOK).JSON(list)
}

func (s *Server) searchUsers(c *fiber.Ctx) error {
	fragment := strings.ToLower(c.Query("username"))

	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]api.User, 0)
	if fragment == "" {
		return c.Status(http.StatusOK).JSON(list)
	}
	for _, id := range sortedIDs(s.users) {
		if u := s.users[id]; strings.Contains(strings.ToLower(u.username), fragment) {
			list = append(list, userDTO(u))
		}
	}
	return c.Status(http.StatusOK).JSON(list)
}

func (s *Server) getUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return detail(c, http.StatusBadRequest, "invalid user id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return detail(c, http.StatusNotFound, "User not found")
	}
	return c.Status(http.StatusOK).JSON(userDTO(u))
}

func (s *Server) userByUsername(c *fiber.Ctx) error {
	username := c.Params("username")

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.username == username {
			return c.Status(http.StatusOK).JSON(userDTO(u))
		}
	}
	return detail(c, http.StatusNotFound, "User not found")
}

func (s *Server) userProjectsByUsername(c *fiber.Ctx) error {
	username := c.Params("username")

	s.mu.Lock()
	defer s.mu.Unlock()

	var user *userRecord
	for _, u := range s.users {
		if u.username == username {
			user = u
			break
		}
	}
	if user == nil {
		return detail(c, http.StatusNotFound, "User not found")
	}

	list := make([]api.Project, 0)
	for _, id := range sortedIDs(s.projects) {
		if p := s.projects[id]; isMember(p, user.id) {
			list = append(list, s.projectDTO(p))
		}
	}
	return c.Status(http.StatusOK).JSON(list)
}

func (s *Server) updateUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return detail(c, http.StatusBadRequest, "invalid user id")
	}

	var body api.UserUpdate
	if err := c.BodyParser(&body); err != nil {
		return detail(c, http.StatusBadRequest, "invalid body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current(c)
	if cur == nil {
		return detail(c, http.StatusUnauthorized, "Not authenticated")
	}
	if cur.id != id {
		return detail(c, http.StatusForbidden, "Can only update your own profile")
	}

	u, ok := s.users[id]
	if !ok {
		return detail(c, http.StatusNotFound, "User not found")
	}

	if body.Name != nil {
		u.name = *body.Name
	}
	if body.Username != nil {
		u.username = *body.Username
	}
	if body.Email != nil {
		u.email = *body.Email
	}
	if body.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*body.Password), bcrypt.MinCost)
		if err != nil {
			return detail(c, http.StatusInternalServerError, "hash failure")
		}
		u.passwordHash = hash
	}
	return message(c, "User updated")
}

func (s *Server) deleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return detail(c, http.StatusBadRequest, "invalid user id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current(c)
	if cur == nil {
		return detail(c, http.StatusUnauthorized, "Not authenticated")
	}
	if cur.id != id {
		return detail(c, http.StatusForbidden, "Can only delete your own profile")
	}
	if _, ok := s.users[id]; !ok {
		return detail(c, http.StatusNotFound, "User not found")
	}

	delete(s.users, id)
	for token, owner := range s.tokens {
		if owner == id {
			delete(s.tokens, token)
		}
	}
	// Dependent rows go with the account, the cascade is a server concern.
	for _, p := range s.projects {
		members := p.members[:0]
		for _, m := range p.members {
			if m.userID != id {
				members = append(members, m)
			}
		}
		p.members = members
	}
	for _, t := range s.tasks {
		assignees := t.assignees[:0]
		for _, a := range t.assignees {
			if a != id {
				assignees = append(assignees, a)
			}
		}
		t.assignees = assignees
	}
	return message(c, "User deleted")
}
