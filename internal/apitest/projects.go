package apitest

import (
	"net/http"
	"strings"

	"github.com/korhvimtv/code-collab/internal/api"

	"github.com/gofiber/fiber/v2"
)

func (s *Server) createProject(c *fiber.Ctx) error {
	var body api.ProjectCreate
	if err := c.BodyParser(&body); err != nil {
		return detail(c, http.StatusBadRequest, "invalid body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current(c)
	if cur == nil {
		return detail(c, http.StatusUnauthorized, "Not authenticated")
	}

	p := &projectRecord{
		id:          s.id(),
		title:       body.Title,
		description: body.Description,
		members:     []membership{{userID: cur.id, isCreator: true}},
	}
	s.projects[p.id] = p
	return c.Status(http.StatusOK).JSON(s.projectDTO(p))
}

func (s *Server) listProjects(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]api.Project, 0, len(s.projects))
	for _, id := range sortedIDs(s.projects) {
		list = append(list, s.projectDTO(s.projects[id]))
	}
	return c.Status(http.StatusOK).JSON(list)
}

func (s *Server) searchProjects(c *fiber.Ctx) error {
	fragment := strings.ToLower(c.Query("title"))

	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]api.Project, 0)
	if fragment == "" {
		return c.Status(http.StatusOK).JSON(list)
	}
	for _, id := range sortedIDs(s.projects) {
		if p := s.projects[id]; strings.Contains(strings.ToLower(p.title), fragment) {
			list = append(list, s.projectDTO(p))
		}
	}
	return c.Status(http.StatusOK).JSON(list)
}

func (s *Server) getProject(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return detail(c, http.StatusBadRequest, "invalid project id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.projects[id]
	if !ok {
		return detail(c, http.StatusNotFound, "Project not found")
	}
	return c.Status(http.StatusOK).JSON(s.projectDTO(p))
}

func (s *Server) updateProject(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return detail(c, http.StatusBadRequest, "invalid project id")
	}

	var body api.ProjectUpdate
	if err := c.BodyParser(&body); err != nil {
		return detail(c, http.StatusBadRequest, "invalid body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current(c)
	if cur == nil {
		return detail(c, http.StatusUnauthorized, "Not authenticated")
	}
	p, ok := s.projects[id]
	if !ok {
		return detail(c, http.StatusNotFound, "Project not found")
	}
	if !isCreator(p, cur.id) {
		return detail(c, http.StatusForbidden, "Only creator can update")
	}

	if body.Title != nil {
		p.title = *body.Title
	}
	if body.Description != nil {
		p.description = *body.Description
	}
	return message(c, "Project updated")
}

func (s *Server) deleteProject(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return detail(c, http.StatusBadRequest, "invalid project id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current(c)
	if cur == nil {
		return detail(c, http.StatusUnauthorized, "Not authenticated")
	}
	p, ok := s.projects[id]
	if !ok {
		return detail(c, http.StatusNotFound, "Project not found")
	}
	if !isCreator(p, cur.id) {
		return detail(c, http.StatusForbidden, "Only creator can delete")
	}

	delete(s.projects, id)
	for taskID, t := range s.tasks {
		if t.projectID == id {
			delete(s.tasks, taskID)
		}
	}
	return message(c, "Project deleted")
}

func (s *Server) inviteToProject(c *fiber.Ctx) error {
	var body api.ProjectInvite
	if err := c.BodyParser(&body); err != nil {
		return detail(c, http.StatusBadRequest, "invalid body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current(c)
	if cur == nil {
		return detail(c, http.StatusUnauthorized, "Not authenticated")
	}
	p, ok := s.projects[body.ProjectID]
	if !ok {
		return detail(c, http.StatusNotFound, "Project not found")
	}
	if !isCreator(p, cur.id) {
		return detail(c, http.StatusForbidden, "Only creator can invite")
	}

	// A duplicate or unknown invitee is acknowledged without effect, the
	// real server answers the same way.
	if _, ok := s.users[body.UserID]; ok && !isMember(p, body.UserID) {
		p.members = append(p.members, membership{userID: body.UserID, isCreator: body.IsCreator})
	}
	return message(c, "User invited")
}

func (s *Server) projectTasks(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return detail(c, http.StatusBadRequest, "invalid project id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current(c)
	if cur == nil {
		return detail(c, http.StatusUnauthorized, "Not authenticated")
	}
	p, ok := s.projects[id]
	if !ok {
		return detail(c, http.StatusNotFound, "Project not found")
	}
	if !isMember(p, cur.id) {
		return detail(c, http.StatusForbidden, "Only members can view tasks")
	}

	list := make([]api.Task, 0)
	for _, taskID := range sortedIDs(s.tasks) {
		if t := s.tasks[taskID]; t.projectID == id {
			list = append(list, s.taskDTO(t))
		}
	}
	return c.Status(http.StatusOK).JSON(list)
}
