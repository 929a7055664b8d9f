package usecase

import (
	"context"

	"github.com/bnema/bmb/internal/application/port"
	"github.com/bnema/bmb/internal/domain/url"
)

// ResolveAddressUseCase turns URL bar input into a loadable address,
// checking the local filesystem for paths.
type ResolveAddressUseCase struct {
	fs port.FileSystem
}

// NewResolveAddressUseCase creates a new ResolveAddressUseCase.
// With a nil fs no input is treated as a local path.
func NewResolveAddressUseCase(fs port.FileSystem) *ResolveAddressUseCase {
	return &ResolveAddressUseCase{fs: fs}
}

// Execute returns the address for input, or ok=false when nothing should load.
func (u *ResolveAddressUseCase) Execute(ctx context.Context, input string) (address string, ok bool) {
	var exists url.PathExists
	if u.fs != nil {
		exists = func(path string) bool {
			found, err := u.fs.Exists(ctx, path)
			return err == nil && found
		}
	}
	return url.Resolve(input, exists)
}
