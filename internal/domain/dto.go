package domain

import (
	"time"

	"github.com/google/uuid"
)

// RootView is the single view key the invalidation signal operates on.
// Mutations mark it stale; the next listing recomputes from persistence.
const RootView = "/"

// DTOs (Data Transfer Objects) - Domain layer request/response structures

type (
	// TodoRequest struct - Domain request DTO
	// Carries the full set of mutable fields. Update is a replacement of
	// title/body/completed, not a partial patch.
	TodoRequest struct {
		ID        *uuid.UUID `json:"id"`
		Title     *string    `json:"title"`
		Body      *string    `json:"body"`
		Completed *bool      `json:"completed"`
		UserID    *string    `json:"user_id"`
	}

	// QueryTodoRequest struct - Domain query request DTO
	QueryTodoRequest struct {
		UserID *string
	}

	// TodoResponse struct - Domain response DTO
	TodoResponse struct {
		ID        *uuid.UUID `json:"id,omitempty"`
		Title     *string    `json:"title,omitempty"`
		Body      *string    `json:"body,omitempty"`
		Completed *bool      `json:"completed,omitempty"`
		UserID    *string    `json:"user_id,omitempty"`
		CreatedAt *time.Time `json:"created_at,omitempty"`
		UpdatedAt *time.Time `json:"updated_at,omitempty"`
	}

	// TodoListResponse struct - Domain list response DTO
	TodoListResponse struct {
		Todos     []TodoResponse
		TotalItem *int64
	}
)
