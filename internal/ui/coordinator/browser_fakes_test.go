package coordinator

import (
	"context"
	"errors"
	"slices"

	"github.com/bnema/bmb/internal/application/port"
	"github.com/bnema/bmb/internal/domain/entity"
)

type fakeSurface struct {
	uri       string
	loads     []string
	back      int
	forward   int
	reloads   int
	destroyed bool
	events    port.SurfaceEvents
}

func (s *fakeSurface) LoadURI(uri string) {
	s.loads = append(s.loads, uri)
	s.uri = uri
}
func (s *fakeSurface) GoBack()     { s.back++ }
func (s *fakeSurface) GoForward()  { s.forward++ }
func (s *fakeSurface) Reload()     { s.reloads++ }
func (s *fakeSurface) URI() string { return s.uri }
func (s *fakeSurface) Destroy()    { s.destroyed = true }

type fakeFactory struct {
	created []*fakeSurface
	err     error
}

func (f *fakeFactory) NewSurface(_ context.Context, events port.SurfaceEvents) (port.Surface, error) {
	if f.err != nil {
		return nil, f.err
	}
	s := &fakeSurface{events: events}
	f.created = append(f.created, s)
	return s, nil
}

type fakeStrip struct {
	order     []entity.TabID
	selected  entity.TabID
	labels    map[entity.TabID]string
	appendErr error
}

func newFakeStrip() *fakeStrip {
	return &fakeStrip{labels: make(map[entity.TabID]string)}
}

func (s *fakeStrip) AppendTab(id entity.TabID, label string, _ port.Surface) error {
	if s.appendErr != nil {
		return s.appendErr
	}
	s.order = append(s.order, id)
	s.labels[id] = label
	return nil
}

func (s *fakeStrip) RemoveTab(id entity.TabID) {
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	delete(s.labels, id)
}

func (s *fakeStrip) SelectTab(id entity.TabID) { s.selected = id }

func (s *fakeStrip) SetTabLabel(id entity.TabID, label string) { s.labels[id] = label }

type fakeAddressBar struct {
	text    string
	sets    int
	focused int
}

func (a *fakeAddressBar) Text() string { return a.text }
func (a *fakeAddressBar) SetText(text string) {
	a.text = text
	a.sets++
}
func (a *fakeAddressBar) Focus() { a.focused++ }

var errBoom = errors.New("boom")
