package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"todoapp/internal/domain"
	"todoapp/internal/ports/output"
)

// Compile-time check to ensure TodoRepository implements the repository port
var _ output.TodoRepository = (*TodoRepository)(nil)

// TodoRepository struct - Output adapter for in-memory todo storage
// Used by tests and local development. Mirrors the PostgreSQL adapter's
// semantics: server-assigned id and created_at, owner filter on listing,
// created_at-descending order, hard delete, not-found on unknown ids.
type TodoRepository struct {
	todos sync.Map // uuid.UUID -> domain.Todo
}

// NewTodoRepository creates a new empty in-memory repository.
func NewTodoRepository() *TodoRepository {
	return &TodoRepository{}
}

// CreateTodo stores a new todo with a fresh id and timestamps.
func (m *TodoRepository) CreateTodo(ctx context.Context, request domain.TodoRequest) (*domain.TodoResponse, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	todo := domain.Todo{
		ID:        &id,
		Title:     request.Title,
		Body:      request.Body,
		Completed: request.Completed,
		UserID:    request.UserID,
		CreatedAt: &now,
		UpdatedAt: &now,
	}
	m.todos.Store(id, todo)
	return todoResponse(&todo), nil
}

// UpdateTodo replaces title, body and completed of an existing todo.
// id, user_id and created_at keep their stored values.
func (m *TodoRepository) UpdateTodo(ctx context.Context, request domain.TodoRequest) (*domain.TodoResponse, error) {
	value, ok := m.todos.Load(*request.ID)
	if !ok {
		return nil, domain.ErrTodoNotFound
	}
	todo := value.(domain.Todo)
	now := time.Now()
	todo.Title = request.Title
	todo.Body = request.Body
	todo.Completed = request.Completed
	todo.UpdatedAt = &now
	m.todos.Store(*request.ID, todo)
	return todoResponse(&todo), nil
}

// DeleteTodo removes a todo permanently. Unknown ids are an error.
func (m *TodoRepository) DeleteTodo(ctx context.Context, id uuid.UUID) error {
	if _, ok := m.todos.Load(id); !ok {
		return domain.ErrTodoNotFound
	}
	m.todos.Delete(id)
	return nil
}

// ListTodos returns the owner's todos ordered by creation time descending.
// Creation-time ties break on id so repeated listings agree on an order.
func (m *TodoRepository) ListTodos(ctx context.Context, condition domain.QueryTodoRequest) (*domain.TodoListResponse, error) {
	var todos []domain.Todo
	m.todos.Range(func(_, value interface{}) bool {
		todo := value.(domain.Todo)
		if condition.UserID != nil && (todo.UserID == nil || *todo.UserID != *condition.UserID) {
			return true
		}
		todos = append(todos, todo)
		return true
	})

	sort.Slice(todos, func(i, j int) bool {
		if !todos[i].CreatedAt.Equal(*todos[j].CreatedAt) {
			return todos[i].CreatedAt.After(*todos[j].CreatedAt)
		}
		return todos[i].ID.String() > todos[j].ID.String()
	})

	totalItem := int64(len(todos))
	result := domain.TodoListResponse{
		Todos:     make([]domain.TodoResponse, 0, len(todos)),
		TotalItem: &totalItem,
	}
	for i := range todos {
		result.Todos = append(result.Todos, *todoResponse(&todos[i]))
	}
	return &result, nil
}

func todoResponse(todo *domain.Todo) *domain.TodoResponse {
	return &domain.TodoResponse{
		ID:        todo.ID,
		Title:     todo.Title,
		Body:      todo.Body,
		Completed: todo.Completed,
		UserID:    todo.UserID,
		CreatedAt: todo.CreatedAt,
		UpdatedAt: todo.UpdatedAt,
	}
}
