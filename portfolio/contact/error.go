package contact

import (
	"net/http"

	"github.com/Abraxas-365/folio/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("CONTACT")

// Error codes
var (
	CodeInvalidMessage   = ErrRegistry.Register("INVALID_MESSAGE", errx.TypeValidation, http.StatusBadRequest, "Invalid contact message")
	CodeEmptyMessageID   = ErrRegistry.Register("EMPTY_ID", errx.TypeValidation, http.StatusBadRequest, "Message id must not be empty")
	CodeMessageNotFound  = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Message not found")
	CodeDuplicateMessage = ErrRegistry.Register("DUPLICATE", errx.TypeConflict, http.StatusConflict, "Message already exists")
)

// Helper functions
func ErrInvalidMessage() *errx.Error {
	return ErrRegistry.New(CodeInvalidMessage)
}

func ErrEmptyMessageID() *errx.Error {
	return ErrRegistry.New(CodeEmptyMessageID)
}

func ErrMessageNotFound() *errx.Error {
	return ErrRegistry.New(CodeMessageNotFound)
}

func ErrDuplicateMessage() *errx.Error {
	return ErrRegistry.New(CodeDuplicateMessage)
}
