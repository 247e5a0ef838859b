package application

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"todoapp/internal/domain"
	"todoapp/internal/ports/output"
)

// TodoService struct - Application service implementing use cases
type TodoService struct {
	repo  output.TodoRepository
	views output.ViewCache
}

// NewTodoService func - Creates new todo service
func NewTodoService(repo output.TodoRepository, views output.ViewCache) *TodoService {
	return &TodoService{
		repo:  repo,
		views: views,
	}
}

// ListTodos func - Use case: List the caller's todos, newest first
// The owner string is trusted verbatim; identity resolution happens at the
// HTTP boundary. Whatever arrives here is the value the query runs with.
func (s *TodoService) ListTodos(ctx context.Context, ownerID string) (*domain.TodoListResponse, error) {
	result, err := s.repo.ListTodos(ctx, domain.QueryTodoRequest{UserID: &ownerID})
	if err != nil {
		logrus.Errorln(err)
		return nil, domain.ErrTodoRetrieval
	}
	return result, nil
}

// CreateTodo func - Use case: Create a new todo owned by the caller
func (s *TodoService) CreateTodo(ctx context.Context, request domain.TodoRequest, ownerID string) error {
	if emptyTitle(request.Title) {
		return domain.ErrEmptyTitle
	}
	request.ID = nil
	request.UserID = &ownerID
	if request.Completed == nil {
		completed := false
		request.Completed = &completed
	}
	if _, err := s.repo.CreateTodo(ctx, request); err != nil {
		logrus.Errorln(err)
		return domain.ErrTodoCreation
	}
	s.views.Invalidate(domain.RootView)
	return nil
}

// UpdateTodo func - Use case: Replace the mutable fields of an existing todo
// The id is the only lookup key: a caller holding a valid id can modify a
// todo it does not own. This mirrors the reference system and is flagged in
// DESIGN.md rather than fixed here.
func (s *TodoService) UpdateTodo(ctx context.Context, id uuid.UUID, request domain.TodoRequest) error {
	if emptyTitle(request.Title) {
		return domain.ErrEmptyTitle
	}
	request.ID = &id
	request.UserID = nil // owner is immutable
	if request.Completed == nil {
		completed := false
		request.Completed = &completed
	}
	if _, err := s.repo.UpdateTodo(ctx, request); err != nil {
		logrus.Errorln(err)
		return domain.ErrTodoUpdate
	}
	s.views.Invalidate(domain.RootView)
	return nil
}

// DeleteTodo func - Use case: Permanently delete a todo
// Deleting an unknown id is an error, consistent with UpdateTodo. Same
// ownership caveat as UpdateTodo.
func (s *TodoService) DeleteTodo(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteTodo(ctx, id); err != nil {
		logrus.Errorln(err)
		return domain.ErrTodoDeletion
	}
	s.views.Invalidate(domain.RootView)
	return nil
}

func emptyTitle(title *string) bool {
	return title == nil || strings.TrimSpace(*title) == ""
}
