package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"todoapp/internal/domain"
)

// TodoRepository struct - Secondary/Driven adapter for PostgreSQL
type TodoRepository struct {
	dbGorm *gorm.DB
}

// NewTodoRepository func - Creates new PostgreSQL repository
func NewTodoRepository(dbGorm *gorm.DB) *TodoRepository {
	logrus.Info("Migrate database ...")
	domain.MigrateDatabase(dbGorm)
	return &TodoRepository{
		dbGorm: dbGorm,
	}
}

// CreateTodo func - Creates a new todo in the database
func (p *TodoRepository) CreateTodo(ctx context.Context, request domain.TodoRequest) (*domain.TodoResponse, error) {
	todo := domain.Todo{
		Title:     request.Title,
		Body:      request.Body,
		Completed: request.Completed,
		UserID:    request.UserID,
	}
	if err := p.dbGorm.WithContext(ctx).Create(&todo).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	response := todoResponse(&todo)
	return response, nil
}

// UpdateTodo func - Replaces the mutable columns of an existing todo
// id, user_id and created_at are never written here.
func (p *TodoRepository) UpdateTodo(ctx context.Context, request domain.TodoRequest) (*domain.TodoResponse, error) {
	var todo domain.Todo
	condition := map[string]interface{}{"id": *request.ID}
	columns := p.updateColumns(request)
	tx := p.dbGorm.WithContext(ctx).Table(todo.TableName()).Where(condition).Updates(columns)
	if tx.Error != nil {
		logrus.Errorln(tx.Error)
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, domain.ErrTodoNotFound
	}
	if err := p.dbGorm.WithContext(ctx).Where(condition).First(&todo).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	response := todoResponse(&todo)
	return response, nil
}

// DeleteTodo func - Deletes a todo from the database permanently
func (p *TodoRepository) DeleteTodo(ctx context.Context, id uuid.UUID) error {
	tx := p.dbGorm.WithContext(ctx).Where("id = ?", id).Delete(&domain.Todo{})
	if tx.Error != nil {
		logrus.Errorln(tx.Error)
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrTodoNotFound
	}
	return nil
}

// ListTodos func - Retrieves the owner's todos ordered by creation time descending
func (p *TodoRepository) ListTodos(ctx context.Context, condition domain.QueryTodoRequest) (*domain.TodoListResponse, error) {
	var todos []domain.Todo
	cond := p.condition(condition)
	tx := p.dbGorm.WithContext(ctx).Where(cond)

	var totalItem int64
	if err := tx.Model(&domain.Todo{}).Count(&totalItem).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	if err := tx.Order("created_at DESC").Find(&todos).Error; err != nil {
		logrus.Errorln(err)
		return nil, err
	}

	result := domain.TodoListResponse{
		Todos:     make([]domain.TodoResponse, 0, len(todos)),
		TotalItem: &totalItem,
	}
	for i := range todos {
		result.Todos = append(result.Todos, *todoResponse(&todos[i]))
	}
	return &result, nil
}

func (p *TodoRepository) condition(condition domain.QueryTodoRequest) map[string]interface{} {
	expression := make(map[string]interface{})
	if condition.UserID != nil {
		expression["user_id"] = *condition.UserID
	}
	return expression
}

func (p *TodoRepository) updateColumns(request domain.TodoRequest) map[string]interface{} {
	expression := make(map[string]interface{})
	if request.Title != nil {
		expression["title"] = *request.Title
	}
	// nil body clears the column: update is a replacement, not a patch
	if request.Body != nil {
		expression["body"] = *request.Body
	} else {
		expression["body"] = nil
	}
	if request.Completed != nil {
		expression["completed"] = *request.Completed
	}
	return expression
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
