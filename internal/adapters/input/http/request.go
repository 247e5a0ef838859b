package http

type (
	// TodoRequest struct - HTTP request DTO
	// Shared by create and update: both carry the full mutable field set.
	// The owner is never accepted from the body; it comes from the verified
	// identity in the request context.
	TodoRequest struct {
		Title     *string `json:"title" validate:"required,max=100" form:"title"`
		Body      *string `json:"body" validate:"omitempty" form:"body"`
		Completed *bool   `json:"completed" validate:"omitempty" form:"completed"`
	}
)
