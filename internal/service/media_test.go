package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"cmsapi/internal/storage"
	storeMocks "cmsapi/internal/storage/mocks"
)

func TestMediaService_UploadImage(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		svc := NewMediaService(mStore)

		r := strings.NewReader("image-bytes")
		mStore.On("Put", ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "gallery/") && strings.HasSuffix(key, ".jpg")
		}), r, mock.MatchedBy(func(opt storage.PutObjectOptions) bool {
			return opt.ContentType == "image/jpeg" && opt.Size == 11
		})).Return(storage.ObjectInfo{Key: "gallery/uuid.jpg"}, nil)

		path, err := svc.UploadImage(ctx, "gallery", r, "photo.jpg", "image/jpeg", 11)

		assert.NoError(t, err)
		assert.Equal(t, "/gallery/uuid.jpg", path)
		mStore.AssertExpectations(t)
	})

	t.Run("rejects unsupported type", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		svc := NewMediaService(mStore)

		_, err := svc.UploadImage(ctx, "gallery", strings.NewReader("x"), "doc.pdf", "application/pdf", 1)

		assert.ErrorIs(t, err, ErrUnsupportedImage)
		mStore.AssertNotCalled(t, "Put")
	})

	t.Run("nil reader", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		svc := NewMediaService(mStore)

		_, err := svc.UploadImage(ctx, "gallery", nil, "photo.jpg", "image/jpeg", 1)

		assert.ErrorIs(t, err, ErrReaderNil)
	})
}

func TestMediaService_RemoveImage(t *testing.T) {
	ctx := context.Background()

	t.Run("strips the leading slash", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		svc := NewMediaService(mStore)

		mStore.On("Delete", ctx, "team/old.png").Return(nil)

		assert.NoError(t, svc.RemoveImage(ctx, "/team/old.png"))
		mStore.AssertExpectations(t)
	})

	t.Run("empty path", func(t *testing.T) {
		mStore := new(storeMocks.MockStorage)
		svc := NewMediaService(mStore)

		assert.ErrorIs(t, svc.RemoveImage(ctx, "/"), ErrImagePathRequired)
	})
}
