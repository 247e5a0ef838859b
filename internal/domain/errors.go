package domain

import "errors"

// Persistence failure kinds. The underlying cause is logged at the layer
// that caught it and discarded; callers only ever see these.

var (
	// ErrTodoRetrieval indicates the listing could not be read from the store
	ErrTodoRetrieval = errors.New("failed to retrieve todo items")

	// ErrTodoCreation indicates a new todo could not be written
	ErrTodoCreation = errors.New("failed to create todo item")

	// ErrTodoUpdate indicates an update could not be written or the id does not exist
	ErrTodoUpdate = errors.New("failed to update todo item")

	// ErrTodoDeletion indicates a delete could not be performed or the id does not exist
	ErrTodoDeletion = errors.New("failed to delete todo item")

	// ErrTodoNotFound is returned by repository adapters when no row matches the id
	ErrTodoNotFound = errors.New("todo not found")

	// ErrEmptyTitle rejects a create/update before it reaches the store
	ErrEmptyTitle = errors.New("title cannot be empty")
)
