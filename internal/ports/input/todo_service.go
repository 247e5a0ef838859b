package input

import (
	"context"

	"github.com/google/uuid"

	"todoapp/internal/domain"
)

// TodoService interface - Input port (use case)
// Defines what the application can do with todos. Mutations return no
// payload; they signal view invalidation on success instead.
type TodoService interface {
	ListTodos(ctx context.Context, ownerID string) (*domain.TodoListResponse, error)
	CreateTodo(ctx context.Context, request domain.TodoRequest, ownerID string) error
	UpdateTodo(ctx context.Context, id uuid.UUID, request domain.TodoRequest) error
	DeleteTodo(ctx context.Context, id uuid.UUID) error
}
