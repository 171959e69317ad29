package views

import (
	"context"
	"testing"
	"time"

	"github.com/korhvimtv/code-collab/internal/entities"
	"github.com/korhvimtv/code-collab/internal/repository"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type repoMock struct{ mock.Mock }

var _ repository.Repository = (*repoMock)(nil)

func (m *repoMock) Register(ctx context.Context, user entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) Login(ctx context.Context, username, password string) error {
	return m.Called(ctx, username, password).Error(0)
}

func (m *repoMock) Logout() { m.Called() }

func (m *repoMock) Me(ctx context.Context) (*entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) MyProjects(ctx context.Context) ([]entities.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Project), args.Error(1)
}

func (m *repoMock) ListUsers(ctx context.Context) ([]entities.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.User), args.Error(1)
}

func (m *repoMock) GetUser(ctx context.Context, id int) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) UserProjectsByUsername(ctx context.Context, username string) ([]entities.Project, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Project), args.Error(1)
}

func (m *repoMock) SearchUsers(ctx context.Context, fragment string) ([]entities.User, error) {
	args := m.Called(ctx, fragment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.User), args.Error(1)
}

func (m *repoMock) CreateUser(ctx context.Context, user entities.User) (*entities.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *repoMock) UpdateUser(ctx context.Context, id int, update entities.UserUpdate) error {
	return m.Called(ctx, id, update).Error(0)
}

func (m *repoMock) DeleteUser(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *repoMock) CreateProject(ctx context.Context, title, description string) (*entities.Project, error) {
	args := m.Called(ctx, title, description)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *repoMock) ListProjects(ctx context.Context) ([]entities.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Project), args.Error(1)
}

func (m *repoMock) SearchProjects(ctx context.Context, fragment string) ([]entities.Project, error) {
	args := m.Called(ctx, fragment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Project), args.Error(1)
}

func (m *repoMock) GetProject(ctx context.Context, id int) (*entities.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Project), args.Error(1)
}

func (m *repoMock) UpdateProject(ctx context.Context, id int, update entities.ProjectUpdate) error {
	return m.Called(ctx, id, update).Error(0)
}

func (m *repoMock) DeleteProject(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *repoMock) InviteToProject(ctx context.Context, projectID, userID int, isCreator bool) error {
	return m.Called(ctx, projectID, userID, isCreator).Error(0)
}

func (m *repoMock) ProjectTasks(ctx context.Context, projectID int) ([]entities.Task, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entities.Task), args.Error(1)
}

func (m *repoMock) CreateTask(ctx context.Context, projectID, assigneeID int, title, description string, deadline time.Time) (*entities.Task, error) {
	args := m.Called(ctx, projectID, assigneeID, title, description, deadline)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *repoMock) GetTask(ctx context.Context, id int) (*entities.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Task), args.Error(1)
}

func (m *repoMock) UpdateTask(ctx context.Context, id int, update entities.TaskUpdate) error {
	return m.Called(ctx, id, update).Error(0)
}

func (m *repoMock) DeleteTask(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

func (m *repoMock) InviteToTask(ctx context.Context, taskID, projectID, userID int) error {
	return m.Called(ctx, taskID, projectID, userID).Error(0)
}

func testLogger() *zap.SugaredLogger { return zap.NewNop().Sugar() }

func confirmYes() Confirmer { return ConfirmFunc(func(string) bool { return true }) }
func confirmNo() Confirmer  { return ConfirmFunc(func(string) bool { return false }) }

func demoProject(creatorID int) *entities.Project {
	return &entities.Project{
		ID:          7,
		Title:       "Demo",
		Description: "demo project",
		Members: []entities.Membership{
			{UserID: creatorID, Username: "alice", IsCreator: true},
			{UserID: 2, Username: "bob", IsCreator: false},
		},
	}
}

func demoUser() *entities.User {
	return &entities.User{ID: 1, Username: "alice", Name: "Alice", Email: "alice@example.com"}
}

func TestProjectDetailFirstLoad(t *testing.T) {
	repo := new(repoMock)
	repo.On("GetProject", mock.Anything, 7).Return(demoProject(1), nil)
	repo.On("Me", mock.Anything).Return(demoUser(), nil)
	repo.On("ProjectTasks", mock.Anything, 7).Return([]entities.Task{{ID: 3, Title: "write docs"}}, nil)

	v := NewProjectDetail(testLogger(), repo, 7)
	require.Equal(t, PhaseIdle, v.Phase)

	require.NoError(t, v.Load(context.Background()))
	require.Equal(t, PhaseReady, v.Phase)
	require.Equal(t, "Demo", v.Project.Title)
	require.Len(t, v.Tasks, 1)
	require.True(t, v.Gates.Invite)
	require.True(t, v.Gates.ToggleTask)
}

func TestProjectDetailLoadDegradesOutsiderQueries(t *testing.T) {
	repo := new(repoMock)
	repo.On("GetProject", mock.Anything, 7).Return(demoProject(1), nil)
	repo.On("Me", mock.Anything).Return(nil, &entities.RequestError{Status: 401, Message: "Not authenticated"})
	repo.On("ProjectTasks", mock.Anything, 7).Return(nil, &entities.RequestError{Status: 403, Message: "Only members can view tasks"})

	v := NewProjectDetail(testLogger(), repo, 7)
	require.NoError(t, v.Load(context.Background()))

	require.Equal(t, PhaseReady, v.Phase)
	require.Nil(t, v.Me)
	require.Empty(t, v.Tasks)
	require.False(t, v.Gates.Invite)
	require.False(t, v.Gates.ViewTasks)
}

func TestProjectDetailFirstLoadFailure(t *testing.T) {
	repo := new(repoMock)
	repo.On("GetProject", mock.Anything, 7).Return(nil, &entities.RequestError{Status: 404, Message: "Project not found"})
	repo.On("Me", mock.Anything).Return(demoUser(), nil)
	repo.On("ProjectTasks", mock.Anything, 7).Return(nil, &entities.RequestError{Status: 404, Message: "Project not found"})

	v := NewProjectDetail(testLogger(), repo, 7)
	require.Error(t, v.Load(context.Background()))

	require.Equal(t, PhaseFailed, v.Phase)
	require.Nil(t, v.Project)
	require.Error(t, v.Err)
}

func TestProjectDetailMutationRequiresReady(t *testing.T) {
	repo := new(repoMock)
	v := NewProjectDetail(testLogger(), repo, 7)

	err := v.Invite(context.Background(), 2, false)
	require.ErrorIs(t, err, entities.ErrNotReady)
	repo.AssertNotCalled(t, "InviteToProject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProjectDetailMutationFailureRetainsData(t *testing.T) {
	repo := new(repoMock)
	repo.On("GetProject", mock.Anything, 7).Return(demoProject(1), nil)
	repo.On("Me", mock.Anything).Return(demoUser(), nil)
	repo.On("ProjectTasks", mock.Anything, 7).Return([]entities.Task{}, nil)

	v := NewProjectDetail(testLogger(), repo, 7)
	require.NoError(t, v.Load(context.Background()))

	denied := &entities.RequestError{Status: 403, Message: "Only creator can invite"}
	repo.On("InviteToProject", mock.Anything, 7, 5, false).Return(denied)

	err := v.Invite(context.Background(), 5, false)
	require.ErrorIs(t, err, denied)
	require.Equal(t, PhaseReady, v.Phase)
	require.NotNil(t, v.Project, "data stays on screen after a failed mutation")
	require.Equal(t, denied, v.Err)
}

func TestProjectDetailMutationReloads(t *testing.T) {
	repo := new(repoMock)
	repo.On("GetProject", mock.Anything, 7).Return(demoProject(1), nil)
	repo.On("Me", mock.Anything).Return(demoUser(), nil)
	repo.On("ProjectTasks", mock.Anything, 7).Return([]entities.Task{}, nil)
	repo.On("InviteToProject", mock.Anything, 7, 5, false).Return(nil)

	v := NewProjectDetail(testLogger(), repo, 7)
	require.NoError(t, v.Load(context.Background()))
	require.NoError(t, v.Invite(context.Background(), 5, false))

	require.Equal(t, PhaseReady, v.Phase)
	repo.AssertNumberOfCalls(t, "GetProject", 2)
}

func TestProjectDetailToggleFlipsLoadedFlag(t *testing.T) {
	repo := new(repoMock)
	repo.On("GetProject", mock.Anything, 7).Return(demoProject(1), nil)
	repo.On("Me", mock.Anything).Return(demoUser(), nil)
	repo.On("ProjectTasks", mock.Anything, 7).Return([]entities.Task{{ID: 3, Title: "write docs", Completed: true}}, nil)

	done := false
	repo.On("UpdateTask", mock.Anything, 3, entities.TaskUpdate{Completed: &done}).Return(nil).Run(func(args mock.Arguments) {
		upd := args.Get(2).(entities.TaskUpdate)
		require.NotNil(t, upd.Completed)
		require.False(t, *upd.Completed)
	})

	v := NewProjectDetail(testLogger(), repo, 7)
	require.NoError(t, v.Load(context.Background()))
	require.NoError(t, v.ToggleTask(context.Background(), 3))
}

func TestProjectDetailToggleUnknownTask(t *testing.T) {
	repo := new(repoMock)
	repo.On("GetProject", mock.Anything, 7).Return(demoProject(1), nil)
	repo.On("Me", mock.Anything).Return(demoUser(), nil)
	repo.On("ProjectTasks", mock.Anything, 7).Return([]entities.Task{}, nil)

	v := NewProjectDetail(testLogger(), repo, 7)
	require.NoError(t, v.Load(context.Background()))

	err := v.ToggleTask(context.Background(), 99)
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
	repo.AssertNotCalled(t, "UpdateTask", mock.Anything, mock.Anything, mock.Anything)
}

func TestProjectDetailDeleteDeclined(t *testing.T) {
	repo := new(repoMock)
	repo.On("GetProject", mock.Anything, 7).Return(demoProject(1), nil)
	repo.On("Me", mock.Anything).Return(demoUser(), nil)
	repo.On("ProjectTasks", mock.Anything, 7).Return([]entities.Task{}, nil)

	v := NewProjectDetail(testLogger(), repo, 7)
	require.NoError(t, v.Load(context.Background()))

	deleted, err := v.DeleteProject(context.Background(), confirmNo())
	require.NoError(t, err)
	require.False(t, deleted)
	require.Equal(t, PhaseReady, v.Phase)
	repo.AssertNotCalled(t, "DeleteProject", mock.Anything, mock.Anything)
}

func TestProjectDetailDeleteIsTerminal(t *testing.T) {
	repo := new(repoMock)
	repo.On("GetProject", mock.Anything, 7).Return(demoProject(1), nil)
	repo.On("Me", mock.Anything).Return(demoUser(), nil)
	repo.On("ProjectTasks", mock.Anything, 7).Return([]entities.Task{}, nil)
	repo.On("DeleteProject", mock.Anything, 7).Return(nil)

	v := NewProjectDetail(testLogger(), repo, 7)
	require.NoError(t, v.Load(context.Background()))

	deleted, err := v.DeleteProject(context.Background(), confirmYes())
	require.NoError(t, err)
	require.True(t, deleted)
	require.Equal(t, PhaseIdle, v.Phase)
	require.Nil(t, v.Project)
	// No reload of a gone resource.
	repo.AssertNumberOfCalls(t, "GetProject", 1)
}

func TestAccountLoadAllOrNothing(t *testing.T) {
	repo := new(repoMock)
	repo.On("Me", mock.Anything).Return(demoUser(), nil)
	repo.On("MyProjects", mock.Anything).Return(nil, &entities.RequestError{Status: 500, Message: "boom"})

	v := NewAccount(testLogger(), repo)
	require.Error(t, v.Load(context.Background()))
	require.Equal(t, PhaseFailed, v.Phase)
	require.Nil(t, v.Me)
}

func TestAccountDeleteClearsSession(t *testing.T) {
	repo := new(repoMock)
	repo.On("Me", mock.Anything).Return(demoUser(), nil)
	repo.On("MyProjects", mock.Anything).Return([]entities.Project{}, nil)
	repo.On("DeleteUser", mock.Anything, 1).Return(nil)
	repo.On("Logout").Return()

	v := NewAccount(testLogger(), repo)
	require.NoError(t, v.Load(context.Background()))

	deleted, err := v.DeleteAccount(context.Background(), confirmYes())
	require.NoError(t, err)
	require.True(t, deleted)
	require.Equal(t, PhaseIdle, v.Phase)
	require.Nil(t, v.Me)
	repo.AssertCalled(t, "Logout")
}

func TestAccountDeleteDeclined(t *testing.T) {
	repo := new(repoMock)
	repo.On("Me", mock.Anything).Return(demoUser(), nil)
	repo.On("MyProjects", mock.Anything).Return([]entities.Project{}, nil)

	v := NewAccount(testLogger(), repo)
	require.NoError(t, v.Load(context.Background()))

	deleted, err := v.DeleteAccount(context.Background(), confirmNo())
	require.NoError(t, err)
	require.False(t, deleted)
	require.Equal(t, PhaseReady, v.Phase)
	repo.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Logout")
}

func TestProjectListAlwaysReady(t *testing.T) {
	repo := new(repoMock)
	repo.On("ListProjects", mock.Anything).Return(nil, &entities.RequestError{Status: 500, Message: "boom"})
	repo.On("MyProjects", mock.Anything).Return(nil, &entities.RequestError{Status: 401, Message: "Not authenticated"})
	repo.On("Me", mock.Anything).Return(nil, &entities.RequestError{Status: 401, Message: "Not authenticated"})

	v := NewProjectList(testLogger(), repo)
	require.NoError(t, v.Load(context.Background()))
	require.Equal(t, PhaseReady, v.Phase)
	require.Empty(t, v.Mine)
	require.Empty(t, v.All)
	require.Nil(t, v.Me)
}

func TestSearchBlankQueryShortCircuits(t *testing.T) {
	repo := new(repoMock)
	v := NewSearch(testLogger(), repo)

	v.SetQuery("   ")
	require.NoError(t, v.Submit(context.Background()))
	require.False(t, v.Open)
	repo.AssertNotCalled(t, "SearchProjects", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "SearchUsers", mock.Anything, mock.Anything)
}

func TestSearchSubmitTagsResultsAtSubmitTime(t *testing.T) {
	repo := new(repoMock)
	repo.On("SearchProjects", mock.Anything, "demo").Return([]entities.Project{{ID: 7, Title: "Demo"}}, nil)

	v := NewSearch(testLogger(), repo)
	v.SetQuery("demo")
	require.NoError(t, v.Submit(context.Background()))
	require.True(t, v.Open)

	// Toggling the selector afterwards does not re-run or re-tag.
	v.SetKind(SearchUsers)
	results := v.Results()
	require.Len(t, results, 1)
	require.Equal(t, SearchProjects, results[0].Target.Kind)
	require.Equal(t, 7, results[0].Target.ProjectID)
	repo.AssertNotCalled(t, "SearchUsers", mock.Anything, mock.Anything)
}

func TestSearchFailureOpensEmptyPanel(t *testing.T) {
	repo := new(repoMock)
	repo.On("SearchUsers", mock.Anything, "al").Return(nil, &entities.RequestError{Status: 500, Message: "boom"})

	v := NewSearch(testLogger(), repo)
	v.SetKind(SearchUsers)
	v.SetQuery("al")
	require.Error(t, v.Submit(context.Background()))
	require.True(t, v.Open)
	require.Empty(t, v.Results())
}

func TestSearchSelectClearsQueryAndPanel(t *testing.T) {
	repo := new(repoMock)
	repo.On("SearchUsers", mock.Anything, "ali").Return([]entities.User{{ID: 1, Username: "alice", Name: "Alice"}}, nil)

	v := NewSearch(testLogger(), repo)
	v.SetKind(SearchUsers)
	v.SetQuery("ali")
	require.NoError(t, v.Submit(context.Background()))

	target, ok := v.Select(0)
	require.True(t, ok)
	require.Equal(t, SearchUsers, target.Kind)
	require.Equal(t, "alice", target.Username)
	require.False(t, v.Open)
	require.Empty(t, v.Query)
}

func TestSearchSelectOutOfRange(t *testing.T) {
	repo := new(repoMock)
	v := NewSearch(testLogger(), repo)

	_, ok := v.Select(0)
	require.False(t, ok)
}
