package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"cmsapi/internal/storage"
)

var (
	ErrReaderNil         = errors.New("reader is nil")
	ErrUnsupportedImage  = errors.New("unsupported image type")
	ErrImagePathRequired = errors.New("image path is required")
)

// allowedImageTypes are the content types accepted for uploaded images.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// MediaService stores uploaded images in object storage and serves them back,
// addressed by the site-relative /section/filename path that content records
// carry in their image fields.
type MediaService interface {
	// UploadImage stores the image under a generated name and returns its
	// site-relative path ("/gallery/<uuid>.jpg").
	UploadImage(ctx context.Context, section string, r io.Reader, originalFilename, contentType string, size int64) (string, error)

	// Open streams a stored image by its site-relative path.
	Open(ctx context.Context, path string) (io.ReadCloser, storage.ObjectInfo, error)

	// RemoveImage deletes a stored image by its site-relative path.
	RemoveImage(ctx context.Context, path string) error
}

type mediaService struct {
	store storage.Storage
}

func NewMediaService(store storage.Storage) MediaService {
	return &mediaService{store: store}
}

func (s *mediaService) UploadImage(ctx context.Context, section string, r io.Reader, originalFilename, contentType string, size int64) (string, error) {
	if r == nil {
		return "", ErrReaderNil
	}
	if !allowedImageTypes[contentType] {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedImage, contentType)
	}

	ext := filepath.Ext(originalFilename)
	key := filepath.ToSlash(filepath.Join(section, uuid.New().String()+ext))

	info, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return "", fmt.Errorf("upload to storage: %w", err)
	}
	return "/" + info.Key, nil
}

func (s *mediaService) Open(ctx context.Context, path string) (io.ReadCloser, storage.ObjectInfo, error) {
	key := strings.TrimPrefix(path, "/")
	if key == "" {
		return nil, storage.ObjectInfo{}, ErrImagePathRequired
	}
	return s.store.Get(ctx, key)
}

func (s *mediaService) RemoveImage(ctx context.Context, path string) error {
	key := strings.TrimPrefix(path, "/")
	if key == "" {
		return ErrImagePathRequired
	}
	return s.store.Delete(ctx, key)
}
