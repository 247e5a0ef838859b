package application

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"todoapp/internal/domain"
)

// Mock implementations for testing

// MockTodoRepository implements output.TodoRepository for testing
type MockTodoRepository struct {
	CreateTodoFunc func(ctx context.Context, request domain.TodoRequest) (*domain.TodoResponse, error)
	UpdateTodoFunc func(ctx context.Context, request domain.TodoRequest) (*domain.TodoResponse, error)
	DeleteTodoFunc func(ctx context.Context, id uuid.UUID) error
	ListTodosFunc  func(ctx context.Context, condition domain.QueryTodoRequest) (*domain.TodoListResponse, error)

	// Captured values for assertions
	LastCreateRequest *domain.TodoRequest
	LastUpdateRequest *domain.TodoRequest
	LastDeleteID      *uuid.UUID
	LastListCondition *domain.QueryTodoRequest

	// Call counters
	CreateCalls int
	UpdateCalls int
	DeleteCalls int
}

func (m *MockTodoRepository) CreateTodo(ctx context.Context, request domain.TodoRequest) (*domain.TodoResponse, error) {
	m.LastCreateRequest = &request
	m.CreateCalls++
	if m.CreateTodoFunc != nil {
		return m.CreateTodoFunc(ctx, request)
	}
	return &domain.TodoResponse{}, nil
}

func (m *MockTodoRepository) UpdateTodo(ctx context.Context, request domain.TodoRequest) (*domain.TodoResponse, error) {
	m.LastUpdateRequest = &request
	m.UpdateCalls++
	if m.UpdateTodoFunc != nil {
		return m.UpdateTodoFunc(ctx, request)
	}
	return &domain.TodoResponse{}, nil
}

func (m *MockTodoRepository) DeleteTodo(ctx context.Context, id uuid.UUID) error {
	m.LastDeleteID = &id
	m.DeleteCalls++
	if m.DeleteTodoFunc != nil {
		return m.DeleteTodoFunc(ctx, id)
	}
	return nil
}

func (m *MockTodoRepository) ListTodos(ctx context.Context, condition domain.QueryTodoRequest) (*domain.TodoListResponse, error) {
	m.LastListCondition = &condition
	if m.ListTodosFunc != nil {
		return m.ListTodosFunc(ctx, condition)
	}
	return &domain.TodoListResponse{Todos: []domain.TodoResponse{}}, nil
}

// MockViewCache implements output.ViewCache for testing
type MockViewCache struct {
	InvalidateCalls []string
	FreshCalls      []string
}

func (m *MockViewCache) Invalidate(view string) {
	m.InvalidateCalls = append(m.InvalidateCalls, view)
}

func (m *MockViewCache) Stale(view string) bool {
	return len(m.InvalidateCalls) > 0
}

func (m *MockViewCache) MarkFresh(view string) {
	m.FreshCalls = append(m.FreshCalls, view)
}

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

// TestListTodosScopesQueryToOwner tests that the list query carries exactly the caller's identity
func TestListTodosScopesQueryToOwner(t *testing.T) {
	repo := &MockTodoRepository{}
	views := &MockViewCache{}
	srv := NewTodoService(repo, views)

	_, err := srv.ListTodos(context.Background(), "user_2a")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if repo.LastListCondition == nil || repo.LastListCondition.UserID == nil {
		t.Fatal("expected list condition to carry the owner id")
	}
	if *repo.LastListCondition.UserID != "user_2a" {
		t.Errorf("expected owner 'user_2a', got %s", *repo.LastListCondition.UserID)
	}
}

// TestListTodosMapsStoreFailureToRetrievalError tests that any persistence
// failure surfaces as the generic retrieval error with the cause discarded
func TestListTodosMapsStoreFailureToRetrievalError(t *testing.T) {
	repo := &MockTodoRepository{
		ListTodosFunc: func(ctx context.Context, condition domain.QueryTodoRequest) (*domain.TodoListResponse, error) {
			return nil, errors.New("connection refused")
		},
	}
	srv := NewTodoService(repo, &MockViewCache{})

	_, err := srv.ListTodos(context.Background(), "user_2a")
	if !errors.Is(err, domain.ErrTodoRetrieval) {
		t.Errorf("expected ErrTodoRetrieval, got %v", err)
	}
}

// TestCreateTodoRejectsEmptyTitleBeforeStore tests that an empty or
// whitespace title never reaches the repository
func TestCreateTodoRejectsEmptyTitleBeforeStore(t *testing.T) {
	for _, title := range []*string{nil, strPtr(""), strPtr("   ")} {
		repo := &MockTodoRepository{}
		views := &MockViewCache{}
		srv := NewTodoService(repo, views)

		err := srv.CreateTodo(context.Background(), domain.TodoRequest{Title: title}, "user_2a")
		if !errors.Is(err, domain.ErrEmptyTitle) {
			t.Errorf("expected ErrEmptyTitle, got %v", err)
		}
		if repo.CreateCalls != 0 {
			t.Error("expected repository to stay untouched on validation failure")
		}
		if len(views.InvalidateCalls) != 0 {
			t.Error("expected no invalidation on validation failure")
		}
	}
}

// TestCreateTodoAssignsOwnerAndSignalsInvalidation tests the happy path:
// owner set from the caller identity, completed defaulted, root view stale
func TestCreateTodoAssignsOwnerAndSignalsInvalidation(t *testing.T) {
	repo := &MockTodoRepository{}
	views := &MockViewCache{}
	srv := NewTodoService(repo, views)

	err := srv.CreateTodo(context.Background(), domain.TodoRequest{Title: strPtr("Buy milk")}, "user_2a")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if repo.LastCreateRequest.UserID == nil || *repo.LastCreateRequest.UserID != "user_2a" {
		t.Error("expected owner to be assigned from the caller identity")
	}
	if repo.LastCreateRequest.Completed == nil || *repo.LastCreateRequest.Completed {
		t.Error("expected completed to default to false")
	}
	if repo.LastCreateRequest.ID != nil {
		t.Error("expected id assignment to be left to the persistence layer")
	}
	if len(views.InvalidateCalls) != 1 || views.InvalidateCalls[0] != domain.RootView {
		t.Errorf("expected one invalidation of the root view, got %v", views.InvalidateCalls)
	}
}

// TestCreateTodoMapsStoreFailureAndSkipsInvalidation tests that a failed
// write surfaces the generic creation error and never marks the view stale
func TestCreateTodoMapsStoreFailureAndSkipsInvalidation(t *testing.T) {
	repo := &MockTodoRepository{
		CreateTodoFunc: func(ctx context.Context, request domain.TodoRequest) (*domain.TodoResponse, error) {
			return nil, errors.New("write failed")
		},
	}
	views := &MockViewCache{}
	srv := NewTodoService(repo, views)

	err := srv.CreateTodo(context.Background(), domain.TodoRequest{Title: strPtr("Buy milk")}, "user_2a")
	if !errors.Is(err, domain.ErrTodoCreation) {
		t.Errorf("expected ErrTodoCreation, got %v", err)
	}
	if len(views.InvalidateCalls) != 0 {
		t.Error("expected no invalidation after a failed create")
	}
}

// TestUpdateTodoReplacesMutableFieldsOnly tests that the update request
// carries the target id and never an owner
func TestUpdateTodoReplacesMutableFieldsOnly(t *testing.T) {
	repo := &MockTodoRepository{}
	views := &MockViewCache{}
	srv := NewTodoService(repo, views)

	id := uuid.New()
	req := domain.TodoRequest{
		Title:     strPtr("Buy bread"),
		Completed: boolPtr(true),
		UserID:    strPtr("user_evil"), // must be discarded: owner is immutable
	}
	err := srv.UpdateTodo(context.Background(), id, req)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if repo.LastUpdateRequest.ID == nil || *repo.LastUpdateRequest.ID != id {
		t.Error("expected update request to carry the target id")
	}
	if repo.LastUpdateRequest.UserID != nil {
		t.Error("expected owner to be stripped from the update request")
	}
	if len(views.InvalidateCalls) != 1 {
		t.Errorf("expected one invalidation, got %d", len(views.InvalidateCalls))
	}
}

// TestUpdateTodoRejectsEmptyTitleBeforeStore tests update-side validation
func TestUpdateTodoRejectsEmptyTitleBeforeStore(t *testing.T) {
	repo := &MockTodoRepository{}
	srv := NewTodoService(repo, &MockViewCache{})

	err := srv.UpdateTodo(context.Background(), uuid.New(), domain.TodoRequest{Title: strPtr(" ")})
	if !errors.Is(err, domain.ErrEmptyTitle) {
		t.Errorf("expected ErrEmptyTitle, got %v", err)
	}
	if repo.UpdateCalls != 0 {
		t.Error("expected repository to stay untouched on validation failure")
	}
}

// TestUpdateTodoMapsMissingIDToUpdateError tests that an unknown id folds
// into the generic update failure
func TestUpdateTodoMapsMissingIDToUpdateError(t *testing.T) {
	repo := &MockTodoRepository{
		UpdateTodoFunc: func(ctx context.Context, request domain.TodoRequest) (*domain.TodoResponse, error) {
			return nil, domain.ErrTodoNotFound
		},
	}
	views := &MockViewCache{}
	srv := NewTodoService(repo, views)

	err := srv.UpdateTodo(context.Background(), uuid.New(), domain.TodoRequest{Title: strPtr("Buy bread")})
	if !errors.Is(err, domain.ErrTodoUpdate) {
		t.Errorf("expected ErrTodoUpdate, got %v", err)
	}
	if len(views.InvalidateCalls) != 0 {
		t.Error("expected no invalidation after a failed update")
	}
}

// TestDeleteTodoSignalsInvalidationOnSuccess tests the delete happy path
func TestDeleteTodoSignalsInvalidationOnSuccess(t *testing.T) {
	repo := &MockTodoRepository{}
	views := &MockViewCache{}
	srv := NewTodoService(repo, views)

	id := uuid.New()
	err := srv.DeleteTodo(context.Background(), id)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if repo.LastDeleteID == nil || *repo.LastDeleteID != id {
		t.Error("expected delete to target the given id")
	}
	if len(views.InvalidateCalls) != 1 || views.InvalidateCalls[0] != domain.RootView {
		t.Errorf("expected one invalidation of the root view, got %v", views.InvalidateCalls)
	}
}

// TestDeleteTodoMapsMissingIDToDeletionError tests that deleting an unknown
// id is an error, consistent with update
func TestDeleteTodoMapsMissingIDToDeletionError(t *testing.T) {
	repo := &MockTodoRepository{
		DeleteTodoFunc: func(ctx context.Context, id uuid.UUID) error {
			return domain.ErrTodoNotFound
		},
	}
	views := &MockViewCache{}
	srv := NewTodoService(repo, views)

	err := srv.DeleteTodo(context.Background(), uuid.New())
	if !errors.Is(err, domain.ErrTodoDeletion) {
		t.Errorf("expected ErrTodoDeletion, got %v", err)
	}
	if len(views.InvalidateCalls) != 0 {
		t.Error("expected no invalidation after a failed delete")
	}
}
