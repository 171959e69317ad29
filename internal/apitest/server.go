// Package apitest runs an in-process double of the CodeCollab server for
// integration tests. It mirrors the real route surface, response shapes and
// authorization rules so the client stack can be exercised end to end
// without a network or a real backend.
package apitest

import (
	"net"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type userRecord struct {
	id           int
	name         string
	username     string
	email        string
	passwordHash []byte
}

type membership struct {
	userID    int
	isCreator bool
}

type projectRecord struct {
	id          int
	title       string
	description string
	members     []membership
}

type taskRecord struct {
	id          int
	title       string
	description string
	deadline    time.Time
	completed   bool
	projectID   int
	assignees   []int
}

// Server is the fake API with in-memory state behind one coarse lock.
type Server struct {
	log *zap.SugaredLogger
	app *fiber.App
	url string

	mu       sync.Mutex
	nextID   int
	users    map[int]*userRecord
	projects map[int]*projectRecord
	tasks    map[int]*taskRecord
	tokens   map[string]int
}

// New starts the double on a loopback listener and returns it ready to
// accept requests. Callers must Close it.
func New(log *zap.SugaredLogger) (*Server, error) {
	s := &Server{
		log:      log.Named("apitest"),
		users:    make(map[int]*userRecord),
		projects: make(map[int]*projectRecord),
		tasks:    make(map[int]*taskRecord),
		tokens:   make(map[string]int),
	}

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(requestLogger(s.log))
	s.routes(app)
	s.app = app

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, err
	}
	s.url = "http://" + ln.Addr().String()

	go func() {
		if err := app.Listener(ln); err != nil {
			s.log.Errorw("test server stopped", "error", err)
		}
	}()
	return s, nil
}

// URL returns the base URL the double listens on.
func (s *Server) URL() string {
	return s.url
}

// Close shuts the double down.
func (s *Server) Close() {
	_ = s.app.Shutdown()
}

func (s *Server) routes(app *fiber.App) {
	app.Post("/auth/register", s.register)
	app.Post("/auth/login", s.login)
	app.Get("/me", s.me)
	app.Get("/me/projects", s.myProjects)

	// Search routes go before the parameterized ones so the literal
	// segment is not captured as an id.
	app.Get("/users/search", s.searchUsers)
	app.Get("/users/by-username/:username/projects", s.userProjectsByUsername)
	app.Get("/users/by-username/:username", s.userByUsername)
	app.Get("/users", s.listUsers)
	app.Post("/users", s.register)
	app.Get("/users/:id", s.getUser)
	app.Put("/users/:id", s.updateUser)
	app.Delete("/users/:id", s.deleteUser)

	app.Get("/projects/search", s.searchProjects)
	app.Post("/projects/invite", s.inviteToProject)
	app.Get("/projects", s.listProjects)
	app.Post("/projects", s.createProject)
	app.Get("/projects/:id/tasks", s.projectTasks)
	app.Get("/projects/:id", s.getProject)
	app.Put("/projects/:id", s.updateProject)
	app.Delete("/projects/:id", s.deleteProject)

	// Task reads and writes use the singular path, matching the real
	// server's asymmetric convention.
	app.Post("/tasks", s.createTask)
	app.Get("/task/:id", s.getTask)
	app.Put("/task/:id", s.updateTask)
	app.Post("/task/:id", s.inviteToTask)
	app.Delete("/task/:id", s.deleteTask)
}

func (s *Server) id() int {
	s.nextID++
	return s.nextID
}
