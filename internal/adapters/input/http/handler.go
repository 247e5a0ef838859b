package http

import (
	"errors"

	"todoapp/internal/domain"
	"todoapp/internal/ports/input"
	"todoapp/internal/ports/output"
	"todoapp/pkg/validator"

	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// HTTPHandler struct - Primary/Driving adapter for HTTP
type HTTPHandler struct {
	srv       input.TodoService
	db        *gorm.DB
	views     output.ViewCache
	validator validator.Validator
}

// New func - Creates new HTTP handler
func New(srv input.TodoService, db *gorm.DB, views output.ViewCache) *HTTPHandler {
	return &HTTPHandler{
		srv:       srv,
		db:        db,
		views:     views,
		validator: validator.New(),
	}
}

// HealthCheck func
func (hdl *HTTPHandler) HealthCheck(c *fiber.Ctx) error {
	sqlDB, err := hdl.db.DB()
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}

	err = sqlDB.Ping()
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusInternalServerError).JSON(ResponseBody{Status: InternalServerError})
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success, Data: ""})
}

// ListTodos func
/* list the caller's todos */
// ListTodos godoc
// @Summary List todos
// @Description List the caller's todos, newest first
// @Tags TODO
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/todo [get]
// @Produce json
func (hdl *HTTPHandler) ListTodos(c *fiber.Ctx) error {
	owner, ok := ownerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(ResponseBody{Status: Unauthorized})
	}

	result, err := hdl.srv.ListTodos(c.UserContext(), owner)
	if err != nil {
		return hdl.failure(c, err)
	}

	data := make([]TodoResponse, 0, len(result.Todos))
	for _, todo := range result.Todos {
		data = append(data, TodoResponse{
			ID:        todo.ID,
			Title:     todo.Title,
			Body:      todo.Body,
			Completed: todo.Completed,
			UserID:    todo.UserID,
			CreatedAt: todo.CreatedAt,
			UpdatedAt: todo.UpdatedAt,
		})
	}

	// the listing has just been recomputed from persistence
	hdl.views.MarkFresh(domain.RootView)

	return c.Status(fiber.StatusOK).JSON(ResponseBody{
		Status:    Success,
		Data:      data,
		TotalItem: result.TotalItem,
	})
}

// CreateTodo func
/* create todo */
// CreateTodo godoc
// @Summary Create todo
// @Description Create a todo owned by the caller
// @Tags TODO
// @Security BearerAuth
// @Accept application/json
// @Success 201 {object} map[string]interface{}
// @Router /v1/api/todo [post]
// @Produce json
// @param CreateTodo body TodoRequest true "CreateTodo"
func (hdl *HTTPHandler) CreateTodo(c *fiber.Ctx) error {
	owner, ok := ownerID(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(ResponseBody{Status: Unauthorized})
	}

	var request TodoRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		msg := ResponseBody{
			Status: BadRequest,
		}
		msg.Status.Message = []string{
			err.Error(),
		}
		return c.Status(fiber.StatusBadRequest).JSON(msg)
	}

	domainReq := domain.TodoRequest{
		Title:     request.Title,
		Body:      request.Body,
		Completed: request.Completed,
	}
	if err := hdl.srv.CreateTodo(c.UserContext(), domainReq, owner); err != nil {
		return hdl.failure(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(ResponseBody{Status: Created})
}

// UpdateTodo func
/* update todo */
// UpdateTodo godoc
// @Summary Update todo
// @Description Replace title, body and completed of an existing todo
// @Tags TODO
// @Security BearerAuth
// @Accept application/json
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/todo/{id} [put]
// @Produce json
// @param id path string true "uuid"
// @param UpdateTodo body TodoRequest true "UpdateTodo"
func (hdl *HTTPHandler) UpdateTodo(c *fiber.Ctx) error {
	uid, err := uuid.Parse(c.Params("id"))
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	var request TodoRequest
	if err := c.BodyParser(&request); err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}
	if err := hdl.validator.ValidateStruct(request); err != nil {
		msg := ResponseBody{
			Status: BadRequest,
		}
		msg.Status.Message = []string{
			err.Error(),
		}
		return c.Status(fiber.StatusBadRequest).JSON(msg)
	}

	domainReq := domain.TodoRequest{
		Title:     request.Title,
		Body:      request.Body,
		Completed: request.Completed,
	}
	if err := hdl.srv.UpdateTodo(c.UserContext(), uid, domainReq); err != nil {
		return hdl.failure(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success})
}

// DeleteTodo func
/* delete todo */
// DeleteTodo godoc
// @Summary Delete todo
// @Description Permanently delete a todo
// @Tags TODO
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /v1/api/todo/{id} [delete]
// @Produce json
// @param id path string true "uuid"
func (hdl *HTTPHandler) DeleteTodo(c *fiber.Ctx) error {
	uid, err := uuid.Parse(c.Params("id"))
	if err != nil {
		logrus.Errorln(err)
		return c.Status(fiber.StatusBadRequest).JSON(ResponseBody{Status: BadRequest})
	}

	if err := hdl.srv.DeleteTodo(c.UserContext(), uid); err != nil {
		return hdl.failure(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(ResponseBody{Status: Success})
}

// failure maps use-case errors onto the response envelope. Validation
// failures are the caller's fault; everything else is the generic opaque
// failure of the operation.
func (hdl *HTTPHandler) failure(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrEmptyTitle) {
		msg := ResponseBody{
			Status: BadRequest,
		}
		msg.Status.Message = []string{
			err.Error(),
		}
		return c.Status(fiber.StatusBadRequest).JSON(msg)
	}
	msg := ResponseBody{
		Status: InternalServerError,
	}
	msg.Status.Message = []string{
		err.Error(),
	}
	return c.Status(fiber.StatusInternalServerError).JSON(msg)
}
