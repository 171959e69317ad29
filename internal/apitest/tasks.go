package apitest

import (
	"net/http"

	"github.com/korhvimtv/code-collab/internal/api"

	"github.com/gofiber/fiber/v2"
)

func (s *Server) createTask(c *fiber.Ctx) error {
	projectID := c.QueryInt("project_id")
	assigneeID := c.QueryInt("user_id")

	var body api.TaskCreate
	if err := c.BodyParser(&body); err != nil {
		return detail(c, http.StatusBadRequest, "invalid body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current(c)
	if cur == nil {
		return detail(c, http.StatusUnauthorized, "Not authenticated")
	}
	p, ok := s.projects[projectID]
	if !ok {
		return detail(c, http.StatusNotFound, "Project not found")
	}
	if !isMember(p, cur.id) {
		return detail(c, http.StatusForbidden, "Only members can create tasks")
	}

	t := &taskRecord{
		id:          s.id(),
		title:       body.Title,
		description: body.Description,
		deadline:    body.Deadline,
		projectID:   projectID,
		assignees:   []int{assigneeID},
	}
	s.tasks[t.id] = t
	return c.Status(http.StatusOK).JSON(s.taskDTO(t))
}

func (s *Server) getTask(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return detail(c, http.StatusBadRequest, "invalid task id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tasks[id]
	if !ok {
		return detail(c, http.StatusNotFound, "Task not found")
	}
	return c.Status(http.StatusOK).JSON(s.taskDTO(t))
}

func (s *Server) updateTask(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return detail(c, http.StatusBadRequest, "invalid task id")
	}

	var body api.TaskUpdate
	if err := c.BodyParser(&body); err != nil {
		return detail(c, http.StatusBadRequest, "invalid body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current(c)
	if cur == nil {
		return detail(c, http.StatusUnauthorized, "Not authenticated")
	}
	t, ok := s.tasks[id]
	if !ok {
		return detail(c, http.StatusNotFound, "Task not found")
	}
	p, ok := s.projects[t.projectID]
	if !ok {
		return detail(c, http.StatusBadRequest, "Task not linked to a project")
	}

	assignee := false
	for _, a := range t.assignees {
		if a == cur.id {
			assignee = true
		}
	}
	onlyCompleted := body.Completed != nil &&
		body.Title == nil && body.Description == nil && body.Deadline == nil
	if !(isCreator(p, cur.id) || assignee || (onlyCompleted && isMember(p, cur.id))) {
		return detail(c, http.StatusForbidden, "No permission to update task")
	}

	if body.Title != nil {
		t.title = *body.Title
	}
	if body.Description != nil {
		t.description = *body.Description
	}
	if body.Deadline != nil {
		t.deadline = *body.Deadline
	}
	if body.Completed != nil {
		t.completed = *body.Completed
	}
	return message(c, "Task updated")
}

func (s *Server) inviteToTask(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return detail(c, http.StatusBadRequest, "invalid task id")
	}

	var body api.TaskInvite
	if err := c.BodyParser(&body); err != nil {
		return detail(c, http.StatusBadRequest, "invalid body")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current(c)
	if cur == nil {
		return detail(c, http.StatusUnauthorized, "Not authenticated")
	}
	t, ok := s.tasks[id]
	if !ok {
		return detail(c, http.StatusNotFound, "Task not found")
	}
	p, ok := s.projects[t.projectID]
	if !ok {
		return detail(c, http.StatusBadRequest, "Task not linked to a project")
	}
	if !isCreator(p, cur.id) {
		return detail(c, http.StatusForbidden, "Only creator can invite to task")
	}

	if _, ok := s.users[body.UserID]; ok {
		dup := false
		for _, a := range t.assignees {
			if a == body.UserID {
				dup = true
			}
		}
		if !dup {
			t.assignees = append(t.assignees, body.UserID)
		}
	}
	return message(c, "User invited")
}

func (s *Server) deleteTask(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return detail(c, http.StatusBadRequest, "invalid task id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current(c)
	if cur == nil {
		return detail(c, http.StatusUnauthorized, "Not authenticated")
	}
	t, ok := s.tasks[id]
	if !ok {
		return detail(c, http.StatusNotFound, "Task not found")
	}
	p, ok := s.projects[t.projectID]
	if !ok {
		return detail(c, http.StatusBadRequest, "Task not linked to a project")
	}
	if !isCreator(p, cur.id) {
		return detail(c, http.StatusForbidden, "Only creator can delete task")
	}

	delete(s.tasks, id)
	return message(c, "Task deleted")
}
