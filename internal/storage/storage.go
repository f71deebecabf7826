package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"hivedesk/internal/config"
)

// Store persists uploaded document blobs. Put returns an opaque reference
// that Get and Delete accept back.
//
//go:generate mockgen -source=storage.go -destination=mock/store_mock.go -package=mock
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (ref string, err error)
	Get(ctx context.Context, ref string) ([]byte, error)
	Delete(ctx context.Context, ref string) error
}

func NewStore(cfg config.StorageConfig) (Store, error) {
	switch cfg.Backend {
	case config.StorageBackendLocal:
		return NewLocalStore(cfg.LocalDir)
	case config.StorageBackendS3:
		return NewS3Store(cfg)
	default:
		return nil, fmt.Errorf("unknown storage backend: %q", cfg.Backend)
	}
}

var unsafeKeyChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// BuildObjectKey derives the stored name for an upload. Client filenames are
// flattened so a key can never escape the store's namespace.
func BuildObjectKey(employeeID, docType, filename string) string {
	base := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	base = unsafeKeyChars.ReplaceAllString(base, "_")
	if base == "" || base == "." || base == ".." {
		base = "upload"
	}
	return fmt.Sprintf("%s_%s_%s", employeeID, docType, base)
}
