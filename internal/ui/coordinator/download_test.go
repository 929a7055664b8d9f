package coordinator

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/bnema/bmb/internal/application/port"
	"github.com/bnema/bmb/internal/application/port/mocks"
)

func expectDownloadInfo(d *mocks.MockDownload, suggested, uri, mime string) {
	d.EXPECT().SuggestedFilename().Return(suggested)
	d.EXPECT().URI().Return(uri)
	d.EXPECT().MIMEType().Return(mime)
}

func TestBrowserCoordinator_DownloadChosenPathBecomesDestination(t *testing.T) {
	h := newHarness(t)
	d := mocks.NewMockDownload(gomock.NewController(t))

	expectDownloadInfo(d, "../../report", "https://example.com/dl", "application/pdf")
	h.dialog.EXPECT().
		AskSavePath(gomock.Any(), "report.pdf", "/home/me/Downloads", gomock.Any()).
		Do(func(_ context.Context, _, _ string, done func(string, bool)) {
			done("/tmp/chosen.pdf", true)
		})
	d.EXPECT().SetDestination("/tmp/chosen.pdf")

	h.c.OnDownloadRequested(h.ctx, d)
}

func TestBrowserCoordinator_DownloadCancelledDialogCancels(t *testing.T) {
	h := newHarness(t)
	d := mocks.NewMockDownload(gomock.NewController(t))

	expectDownloadInfo(d, "", "https://example.com/files/data.csv", "")
	h.dialog.EXPECT().
		AskSavePath(gomock.Any(), "data.csv", gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, _, _ string, done func(string, bool)) {
			done("", false)
		})
	d.EXPECT().Cancel()

	h.c.OnDownloadRequested(h.ctx, d)
}

func TestBrowserCoordinator_DownloadEmptyPathCancels(t *testing.T) {
	h := newHarness(t)
	d := mocks.NewMockDownload(gomock.NewController(t))

	expectDownloadInfo(d, "a.txt", "", "")
	h.dialog.EXPECT().
		AskSavePath(gomock.Any(), "a.txt", gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, _, _ string, done func(string, bool)) {
			done("", true)
		})
	d.EXPECT().Cancel()

	h.c.OnDownloadRequested(h.ctx, d)
}

func TestBrowserCoordinator_DownloadWithoutDialogCancels(t *testing.T) {
	h := newHarness(t)
	h.c.saveDialog = nil
	d := mocks.NewMockDownload(gomock.NewController(t))
	d.EXPECT().Cancel()

	h.c.OnDownloadRequested(h.ctx, d)
}

func TestBrowserCoordinator_OnDownloadEventDoesNotPanic(t *testing.T) {
	h := newHarness(t)
	for _, ev := range []port.DownloadEvent{
		{Type: port.DownloadEventStarted, Filename: "a", Destination: "/tmp/a"},
		{Type: port.DownloadEventFinished, Filename: "a", Destination: "/tmp/a"},
		{Type: port.DownloadEventFailed, Filename: "a", Error: errors.New("reset")},
	} {
		h.c.OnDownloadEvent(h.ctx, ev)
	}
}
