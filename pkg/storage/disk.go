// Package storage is the object-storage boundary for order attachments.
//
// Two drivers are available:
//   - "local"  — local filesystem (default, dev)
//   - "s3"     — S3-compatible object storage (AWS S3, MinIO, R2, Spaces)
//
// Boot once in internal/server, then:
//
//	storage.Put("orders/1712_ab3f.png", data, storage.PutOptions{
//	    ContentType:  "image/png",
//	    CacheControl: "3600",
//	})
//	url := storage.URL("orders/1712_ab3f.png")
package storage

import "io"

// PutOptions carries per-object metadata for uploads. Attachments are
// immutable once stored, so a long CacheControl is safe.
type PutOptions struct {
	ContentType  string
	CacheControl string
}

// Disk is the object-storage driver interface.
type Disk interface {
	// Put writes content to path, creating parents as needed.
	Put(path string, content []byte, opts PutOptions) error

	// Get returns the full content of the object at path.
	Get(path string) ([]byte, error)

	// GetStream returns a ReadCloser for the object. Caller must close it.
	GetStream(path string) (io.ReadCloser, error)

	// Exists reports whether an object exists at path.
	Exists(path string) bool

	// URL returns the public URL for path.
	URL(path string) string

	// Delete removes an object. Returns nil if the object did not exist.
	Delete(path string) error
}
