// Package fsx abstracts file storage for static assets such as the CV.
package fsx

import (
	"context"
	"time"
)

// FileSystem is the file storage port.
type FileSystem interface {
	// Read returns the full contents of the file at path.
	Read(ctx context.Context, path string) ([]byte, error)

	// Exists reports whether a file is present at path.
	Exists(ctx context.Context, path string) (bool, error)

	// PresignURL returns a time-limited URL granting read access to path.
	PresignURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}
