package port

import "context"

//go:generate mockgen -source=download.go -destination=mocks/mock_download.go -package=mocks

// Download is a transfer the engine wants to write to disk.
// It waits until SetDestination or Cancel is called.
type Download interface {
	SuggestedFilename() string
	URI() string
	MIMEType() string
	// SetDestination starts writing to path, replacing an existing file.
	SetDestination(path string)
	Cancel()
}

// DownloadRequestHandler decides what happens to a new download.
type DownloadRequestHandler interface {
	OnDownloadRequested(ctx context.Context, download Download)
}

// DownloadEventType represents the type of download event.
type DownloadEventType int

const (
	// DownloadEventStarted indicates a download has begun.
	DownloadEventStarted DownloadEventType = iota
	// DownloadEventFinished indicates a download completed successfully.
	DownloadEventFinished
	// DownloadEventFailed indicates a download failed.
	DownloadEventFailed
)

func (t DownloadEventType) String() string {
	switch t {
	case DownloadEventStarted:
		return "started"
	case DownloadEventFinished:
		return "finished"
	case DownloadEventFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// DownloadEvent contains information about a download event.
type DownloadEvent struct {
	Type        DownloadEventType
	Filename    string
	Destination string
	Error       error // Set when Type is DownloadEventFailed
}

// DownloadEventHandler receives download event notifications.
type DownloadEventHandler interface {
	OnDownloadEvent(ctx context.Context, event DownloadEvent)
}
