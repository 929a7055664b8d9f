package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/bnema/bmb/internal/application/port/mocks"
)

func TestResolveAddressUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("existing path becomes file url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fs := mocks.NewMockFileSystem(ctrl)
		fs.EXPECT().Exists(gomock.Any(), "/srv/page.html").Return(true, nil)

		got, ok := NewResolveAddressUseCase(fs).Execute(ctx, " /srv/page.html ")
		assert.True(t, ok)
		assert.Equal(t, "file:///srv/page.html", got)
	})

	t.Run("missing path gets https", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fs := mocks.NewMockFileSystem(ctrl)
		fs.EXPECT().Exists(gomock.Any(), "example.com").Return(false, nil)

		got, ok := NewResolveAddressUseCase(fs).Execute(ctx, "example.com")
		assert.True(t, ok)
		assert.Equal(t, "https://example.com", got)
	})

	t.Run("stat error is treated as missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fs := mocks.NewMockFileSystem(ctrl)
		fs.EXPECT().Exists(gomock.Any(), "secret").Return(false, errors.New("denied"))

		got, ok := NewResolveAddressUseCase(fs).Execute(ctx, "secret")
		assert.True(t, ok)
		assert.Equal(t, "https://secret", got)
	})

	t.Run("empty input does not touch the filesystem", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		fs := mocks.NewMockFileSystem(ctrl)

		_, ok := NewResolveAddressUseCase(fs).Execute(ctx, "   ")
		assert.False(t, ok)
	})
}
