// Package storage persists rendered receipts and returns the reference
// clients use to download them.
package storage

//go:generate go run go.uber.org/mock/mockgen -source=./storage.go -destination=../mocks/storage_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/s3"
	"hotel/shared/constant"
)

const (
	DriverLocal = "local"
	DriverS3    = "s3"

	dirPerm  = 0o755
	filePerm = 0o644
)

type Storage interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
	// Delete removes a stored receipt. A missing file is not an error.
	Delete(ctx context.Context, name string) error
}

// New picks the backend named by STORAGE_DRIVER.
func New(cfg *config.Config, client s3.S3, otel otel.Otel) Storage {
	if strings.EqualFold(cfg.Storage.Driver, DriverS3) {
		return NewS3(client, cfg.External.S3.Bucket, cfg.External.S3.Directory, otel)
	}

	if !strings.EqualFold(cfg.Storage.Driver, DriverLocal) {
		log.Warn().Str("driver", cfg.Storage.Driver).Msg("Unknown storage driver, falling back to local")
	}

	return NewLocal(cfg.Storage.Dir, cfg.Storage.PublicPrefix, otel)
}

// Local writes receipts to a directory served by the HTTP server.
type Local struct {
	dir    string
	prefix string
	otel   otel.Otel
}

func NewLocal(dir, prefix string, otel otel.Otel) *Local {
	return &Local{dir: dir, prefix: prefix, otel: otel}
}

// Save writes through a temp file and renames it so readers never see a
// partial receipt.
func (l *Local) Save(ctx context.Context, name string, data []byte) (ref string, err error) {
	ctx, scope := l.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".storage.local.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = ctx.Err(); err != nil {
		return "", fmt.Errorf("failed to save receipt %s: %w", name, err)
	}

	if err = os.MkdirAll(l.dir, dirPerm); err != nil {
		return "", fmt.Errorf("failed to create storage directory: %w", err)
	}

	tmp, err := os.CreateTemp(l.dir, name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()

		return "", fmt.Errorf("failed to write receipt %s: %w", name, err)
	}

	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close receipt %s: %w", name, err)
	}

	if err = os.Chmod(tmp.Name(), filePerm); err != nil {
		return "", fmt.Errorf("failed to set receipt permissions: %w", err)
	}

	if err = os.Rename(tmp.Name(), filepath.Join(l.dir, name)); err != nil {
		return "", fmt.Errorf("failed to move receipt %s into place: %w", name, err)
	}

	return path.Join("/", l.prefix, name), nil
}

func (l *Local) Delete(ctx context.Context, name string) error {
	_, scope := l.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".storage.local.Delete")
	defer scope.End()

	err := os.Remove(filepath.Join(l.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		scope.TraceError(err)

		return fmt.Errorf("failed to remove receipt %s: %w", name, err)
	}

	return nil
}

// S3 uploads receipts to object storage.
type S3 struct {
	client    s3.S3
	bucket    string
	directory string
	otel      otel.Otel
}

func NewS3(client s3.S3, bucket, directory string, otel otel.Otel) *S3 {
	return &S3{client: client, bucket: bucket, directory: directory, otel: otel}
}

func (s *S3) Save(ctx context.Context, name string, data []byte) (string, error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".storage.s3.Save")
	defer scope.End()

	url, err := s.client.UploadFileBytes(ctx, s.bucket, s.directory, name, constant.ContentTypePDF, data)
	if err != nil {
		scope.TraceError(err)

		return "", fmt.Errorf("failed to upload receipt %s: %w", name, err)
	}

	return url, nil
}

func (s *S3) Delete(ctx context.Context, name string) error {
	if err := s.client.DeleteFile(ctx, s.bucket, s.directory, name); err != nil {
		return fmt.Errorf("failed to delete receipt %s: %w", name, err)
	}

	return nil
}
