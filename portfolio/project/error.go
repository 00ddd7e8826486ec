package project

import (
	"net/http"

	"github.com/Abraxas-365/folio/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("PROJECT")

// Error codes
var (
	CodeProjectNotFound      = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Project not found")
	CodeEmptyProjectID       = ErrRegistry.Register("EMPTY_ID", errx.TypeValidation, http.StatusBadRequest, "Project id must not be empty")
	CodeProjectMissingFields = ErrRegistry.Register("MISSING_FIELDS", errx.TypeInternal, http.StatusInternalServerError, "Stored project is missing mandatory fields")
	CodeUnknownQueryParam    = ErrRegistry.Register("UNKNOWN_QUERY_PARAM", errx.TypeValidation, http.StatusBadRequest, "Unrecognized query parameters")
)

// Helper functions
func ErrProjectNotFound() *errx.Error {
	return ErrRegistry.New(CodeProjectNotFound)
}

func ErrEmptyProjectID() *errx.Error {
	return ErrRegistry.New(CodeEmptyProjectID)
}

func ErrProjectMissingFields() *errx.Error {
	return ErrRegistry.New(CodeProjectMissingFields)
}

func ErrUnknownQueryParam() *errx.Error {
	return ErrRegistry.New(CodeUnknownQueryParam)
}
