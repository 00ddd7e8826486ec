package errx

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
)

// Type classifies an error for logging and HTTP translation.
type Type string

const (
	TypeValidation    Type = "VALIDATION"
	TypeNotFound      Type = "NOT_FOUND"
	TypeConflict      Type = "CONFLICT"
	TypeAuthorization Type = "AUTHORIZATION"
	TypeBusiness      Type = "BUSINESS"
	TypeInternal      Type = "INTERNAL"
	TypeExternal      Type = "EXTERNAL"
)

// Code is a registered error code. Obtain one from Registry.Register and
// instantiate errors from it with Registry.New.
type Code struct {
	full       string
	errType    Type
	httpStatus int
	message    string
}

// Registry holds the error codes of one domain, all sharing a prefix.
type Registry struct {
	prefix string

	mu    sync.Mutex
	codes map[string]Code
}

// NewRegistry creates a registry whose codes are prefixed with the given
// domain name, e.g. NewRegistry("RECORD") yields codes like RECORD_NOT_FOUND.
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		codes:  make(map[string]Code),
	}
}

// Register adds a code to the registry. Registering the same code twice
// returns the original registration.
func (r *Registry) Register(code string, t Type, httpStatus int, message string) Code {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.codes[code]; ok {
		return existing
	}

	c := Code{
		full:       r.prefix + "_" + code,
		errType:    t,
		httpStatus: httpStatus,
		message:    message,
	}
	r.codes[code] = c
	return c
}

// New creates a fresh error for a registered code.
func (r *Registry) New(c Code) *Error {
	return &Error{
		Code:       c.full,
		Type:       c.errType,
		Message:    c.message,
		HTTPStatus: c.httpStatus,
	}
}

// Error is a typed error carrying an HTTP status and optional details.
type Error struct {
	Code       string
	Type       Type
	Message    string
	HTTPStatus int
	Details    map[string]any

	cause error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Code)
	b.WriteString(": ")
	b.WriteString(e.Message)

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%v", k, e.Details[k]))
		}
		b.WriteString(" (")
		b.WriteString(strings.Join(parts, ", "))
		b.WriteString(")")
	}

	if e.cause != nil {
		b.WriteString(": ")
		b.WriteString(e.cause.Error())
	}
	return b.String()
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// WithDetail attaches a key/value pair and returns the same error for
// chaining.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause records the underlying error.
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}

// Wrap converts an arbitrary error into an *Error of the given type. If err
// is already an *Error it is returned untouched so the original code and
// status survive service-layer wrapping.
func Wrap(err error, message string, t Type) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	return &Error{
		Code:       string(t) + "_ERROR",
		Type:       t,
		Message:    message,
		HTTPStatus: defaultStatus(t),
		cause:      err,
	}
}

func defaultStatus(t Type) int {
	switch t {
	case TypeValidation:
		return http.StatusBadRequest
	case TypeNotFound:
		return http.StatusNotFound
	case TypeConflict:
		return http.StatusConflict
	case TypeAuthorization:
		return http.StatusForbidden
	case TypeBusiness:
		return http.StatusUnprocessableEntity
	case TypeExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// HTTPResponse is the JSON body returned to clients for an Error.
type HTTPResponse struct {
	Type    Type           `json:"type"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// ToHTTPResponse builds the client-facing body. The wrapped cause is
// deliberately omitted.
func (e *Error) ToHTTPResponse() HTTPResponse {
	return HTTPResponse{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	}
}
