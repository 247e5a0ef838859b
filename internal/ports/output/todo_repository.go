package output

import (
	"context"

	"github.com/google/uuid"

	"todoapp/internal/domain"
)

// TodoRepository interface - Output port
// Defines what the application needs from data persistence. Each call is an
// isolated transaction against the store; no cross-call atomicity exists.
type TodoRepository interface {
	CreateTodo(ctx context.Context, request domain.TodoRequest) (*domain.TodoResponse, error)
	UpdateTodo(ctx context.Context, request domain.TodoRequest) (*domain.TodoResponse, error)
	DeleteTodo(ctx context.Context, id uuid.UUID) error
	ListTodos(ctx context.Context, condition domain.QueryTodoRequest) (*domain.TodoListResponse, error)
}
