package schemas

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CreateUser is the payload accepted by POST /users/.
type CreateUser struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// ArticlePayload is the payload accepted by article create and update.
// Update replaces header, description and author wholesale, so both
// operations share one schema.
type ArticlePayload struct {
	Header      string `json:"header" binding:"required,max=100"`
	Description string `json:"description" binding:"required"`
	Author      uint   `json:"author" binding:"required"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors flattens a failed bind into per-field messages. Anything
// that is not a validator error (malformed JSON, wrong types) collapses
// into a single body-level entry.
func FieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors

	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "body", Message: "invalid request body"}}
	}

	out := make([]FieldError, 0, len(verrs))

	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: message(fe),
		})
	}

	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return "invalid value"
	}
}
