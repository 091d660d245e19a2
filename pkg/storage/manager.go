package storage

import (
	"fmt"
	"io"
	"sync"

	"github.com/shashiranjanraj/ordertrack/config"
	"github.com/shashiranjanraj/ordertrack/pkg/logger"
)

// ─── Manager ──────────────────────────────────────────────────────────────────

var (
	managerMu   sync.RWMutex
	disks       = map[string]Disk{}
	defaultDisk string
)

// Connect boots the storage manager. Call once at application startup.
// It fails when the configured default disk cannot be brought up; a
// secondary disk that fails is only logged.
func Connect() error {
	return connect(config.StorageDefault(), config.StorageS3Bucket() != "", func() (Disk, error) {
		return newS3Disk()
	})
}

func connect(defaultName string, s3Configured bool, newS3 func() (Disk, error)) error {
	managerMu.Lock()
	defer managerMu.Unlock()

	defaultDisk = defaultName

	// Always boot local disk.
	disks["local"] = newLocalDisk()

	// Boot S3 disk only if a bucket is configured.
	if s3Configured {
		d, err := newS3()
		if err != nil {
			if defaultName == "s3" {
				return fmt.Errorf("storage: default disk s3 failed to boot: %w", err)
			}
			logger.Warn("storage: s3 disk disabled", "error", err)
		} else {
			disks["s3"] = d
		}
	}

	if _, ok := disks[defaultName]; !ok {
		return fmt.Errorf("storage: default disk %q is not configured", defaultName)
	}

	return nil
}

// Use returns the named disk ("local" or "s3").
func Use(name string) Disk {
	managerMu.RLock()
	d, ok := disks[name]
	managerMu.RUnlock()
	if !ok {
		panic(fmt.Sprintf("storage: disk %q is not configured", name))
	}
	return d
}

// RegisterDisk plugs in a custom Disk implementation (used by tests).
func RegisterDisk(name string, d Disk) {
	managerMu.Lock()
	disks[name] = d
	managerMu.Unlock()
}

// Default returns the disk selected by STORAGE_DISK.
func Default() Disk { return Use(defaultDisk) }

// ─── Default disk helpers ─────────────────────────────────────────────────────

// Put writes content to path on the default disk.
func Put(path string, content []byte, opts PutOptions) error {
	return Default().Put(path, content, opts)
}

// Get returns object content from the default disk.
func Get(path string) ([]byte, error) { return Default().Get(path) }

// GetStream returns a ReadCloser from the default disk.
func GetStream(path string) (io.ReadCloser, error) { return Default().GetStream(path) }

// Exists reports whether path exists on the default disk.
func Exists(path string) bool { return Default().Exists(path) }

// Delete removes path from the default disk.
func Delete(path string) error { return Default().Delete(path) }

// URL returns the public URL for path on the default disk.
func URL(path string) string { return Default().URL(path) }
