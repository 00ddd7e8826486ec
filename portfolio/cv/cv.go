// Package cv serves the downloadable CV file stored alongside the portfolio
// content.
package cv

import (
	"context"
	"net/http"
	"time"

	"github.com/Abraxas-365/folio/pkg/errx"
	"github.com/Abraxas-365/folio/pkg/fsx"
)

// Error Registry
var ErrRegistry = errx.NewRegistry("CV")

var (
	CodeCVNotFound = ErrRegistry.Register("NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "CV file not found")
)

func ErrCVNotFound() *errx.Error {
	return ErrRegistry.New(CodeCVNotFound)
}

// DownloadResponse carries a time-limited download URL.
type DownloadResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Service hands out presigned download URLs for the configured CV object.
type Service struct {
	files     fsx.FileSystem
	objectKey string
	ttl       time.Duration
}

// NewService creates a CV service for the given object key.
func NewService(files fsx.FileSystem, objectKey string, ttl time.Duration) *Service {
	return &Service{
		files:     files,
		objectKey: objectKey,
		ttl:       ttl,
	}
}

// DownloadURL returns a presigned URL for the CV, or a not-found error when
// the object is absent.
func (s *Service) DownloadURL(ctx context.Context) (*DownloadResponse, error) {
	exists, err := s.files.Exists(ctx, s.objectKey)
	if err != nil {
		return nil, errx.Wrap(err, "failed to check CV file", errx.TypeExternal)
	}
	if !exists {
		return nil, ErrCVNotFound().WithDetail("key", s.objectKey)
	}

	url, err := s.files.PresignURL(ctx, s.objectKey, s.ttl)
	if err != nil {
		return nil, errx.Wrap(err, "failed to presign CV URL", errx.TypeExternal)
	}

	return &DownloadResponse{
		URL:       url,
		ExpiresAt: time.Now().Add(s.ttl),
	}, nil
}
