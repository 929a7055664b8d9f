package webkit

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/bnema/bmb/internal/application/port"
	"github.com/bnema/bmb/internal/application/port/mocks"
)

func TestNewDownloadHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	requests := mocks.NewMockDownloadRequestHandler(ctrl)
	events := mocks.NewMockDownloadEventHandler(ctrl)

	h := NewDownloadHandler(requests, events)

	assert.Same(t, requests, h.requests)
	assert.Same(t, events, h.events)
}

func TestDownloadHandler_NotifyForwardsEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	events := mocks.NewMockDownloadEventHandler(ctrl)
	ev := port.DownloadEvent{Type: port.DownloadEventFinished, Filename: "a.zip", Destination: "/tmp/a.zip"}

	events.EXPECT().OnDownloadEvent(gomock.Any(), ev)

	NewDownloadHandler(nil, events).notify(context.Background(), ev)
}

func TestDownloadHandler_NotifyWithoutEventHandler(t *testing.T) {
	h := NewDownloadHandler(nil, nil)
	assert.NotPanics(t, func() {
		h.notify(context.Background(), port.DownloadEvent{Type: port.DownloadEventFailed})
	})
}

func TestIsCancelledDownload(t *testing.T) {
	assert.False(t, isCancelledDownload(nil))
	assert.False(t, isCancelledDownload(errors.New("network down")))
}
