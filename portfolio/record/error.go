package record

import (
	"net/http"

	"github.com/Abraxas-365/folio/pkg/errx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("RECORD")

// Error codes
var (
	CodeInvalidRecordKind   = ErrRegistry.Register("INVALID_KIND", errx.TypeValidation, http.StatusBadRequest, "Invalid record type")
	CodeEmptyRecordID       = ErrRegistry.Register("EMPTY_ID", errx.TypeValidation, http.StatusBadRequest, "Record id must not be empty")
	CodeRecordMissingFields = ErrRegistry.Register("MISSING_FIELDS", errx.TypeInternal, http.StatusInternalServerError, "Stored record is missing mandatory fields")
	CodeRecordNotFound      = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "Record not found")
	CodeUnknownQueryParam   = ErrRegistry.Register("UNKNOWN_QUERY_PARAM", errx.TypeValidation, http.StatusBadRequest, "Unrecognized query parameters")
)

// Helper functions
func ErrInvalidRecordKind() *errx.Error {
	return ErrRegistry.New(CodeInvalidRecordKind)
}

func ErrEmptyRecordID() *errx.Error {
	return ErrRegistry.New(CodeEmptyRecordID)
}

func ErrRecordMissingFields() *errx.Error {
	return ErrRegistry.New(CodeRecordMissingFields)
}

func ErrRecordNotFound() *errx.Error {
	return ErrRegistry.New(CodeRecordNotFound)
}

func ErrUnknownQueryParam() *errx.Error {
	return ErrRegistry.New(CodeUnknownQueryParam)
}
