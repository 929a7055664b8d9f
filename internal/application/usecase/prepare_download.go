package usecase

import (
	"context"
	"path/filepath"

	"github.com/bnema/bmb/internal/application/port"
	"github.com/bnema/bmb/internal/domain/download"
	"github.com/bnema/bmb/internal/logging"
)

// PrepareDownloadInput contains the inputs for preparing a download destination.
type PrepareDownloadInput struct {
	// SuggestedFilename comes from Content-Disposition or the engine.
	SuggestedFilename string
	URI               string
	MIMEType          string
	// DownloadDir is the folder the save dialog opens in.
	DownloadDir string
}

// PrepareDownloadOutput contains the proposed download destination.
type PrepareDownloadOutput struct {
	// Filename is the sanitized, safe filename to pre-fill.
	Filename string
	// DestinationPath is DownloadDir joined with Filename.
	DestinationPath string
}

// PrepareDownloadUseCase builds the safe default filename offered in the save dialog.
type PrepareDownloadUseCase struct {
	fs port.FileSystem
}

// NewPrepareDownloadUseCase creates a new PrepareDownloadUseCase.
// If fs is nil, filename deduplication is disabled.
func NewPrepareDownloadUseCase(fs port.FileSystem) *PrepareDownloadUseCase {
	return &PrepareDownloadUseCase{fs: fs}
}

// Execute resolves the download filename and destination path.
func (u *PrepareDownloadUseCase) Execute(ctx context.Context, input PrepareDownloadInput) *PrepareDownloadOutput {
	log := logging.FromContext(ctx)

	safeName := download.DefaultName(input.SuggestedFilename, input.URI, input.MIMEType)

	if u.fs != nil && input.DownloadDir != "" {
		safeName = download.UniqueName(input.DownloadDir, safeName, func(path string) bool {
			exists, err := u.fs.Exists(ctx, path)
			return err == nil && exists
		})
	}

	destPath := filepath.Join(input.DownloadDir, safeName)

	log.Debug().
		Str("suggested", input.SuggestedFilename).
		Str("uri", logging.TruncateURL(input.URI, 120)).
		Str("sanitized", safeName).
		Str("destPath", destPath).
		Msg("prepared download destination")

	return &PrepareDownloadOutput{
		Filename:        safeName,
		DestinationPath: destPath,
	}
}
