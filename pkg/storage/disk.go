// Package storage writes export snapshots to a disk: the local filesystem or
// any S3-compatible bucket (AWS S3, MinIO, R2).
//
//	disk, err := storage.Open(ctx, config.StorageDefault())
//	err = disk.Put(ctx, "exports/orders.json", r)
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/shashiranjanraj/ordermanager/config"
)

// ErrNotExist is returned by Get for a missing path.
var ErrNotExist = errors.New("storage: file does not exist")

// Disk is implemented by every driver. Paths are slash-separated and
// relative to the disk root.
type Disk interface {
	// Put writes r to path, replacing any existing file.
	Put(ctx context.Context, path string, r io.Reader) error
	// Get opens path. The caller closes the reader.
	Get(ctx context.Context, path string) (io.ReadCloser, error)
	Exists(ctx context.Context, path string) (bool, error)
	// Delete is a no-op for a missing path.
	Delete(ctx context.Context, path string) error
	// List returns every file below dir, recursively.
	List(ctx context.Context, dir string) ([]string, error)
	// URL is the public address of path.
	URL(path string) string
}

// Open returns the disk named "local" or "s3", configured from the
// environment.
func Open(ctx context.Context, name string) (Disk, error) {
	switch name {
	case "local":
		return NewLocal(config.StorageLocalRoot(), config.StorageURL())
	case "s3":
		return NewS3(ctx, S3Config{
			Bucket:   config.StorageS3Bucket(),
			Region:   config.StorageS3Region(),
			Key:      config.StorageS3Key(),
			Secret:   config.StorageS3Secret(),
			Endpoint: config.StorageS3Endpoint(),
			BaseURL:  config.StorageS3URL(),
		})
	default:
		return nil, fmt.Errorf("storage: unknown disk %q (supported: local, s3)", name)
	}
}
