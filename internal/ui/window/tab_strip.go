package window

import (
	"slices"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/diamondburned/gotk4/pkg/pango"
	"github.com/rs/zerolog"

	"github.com/bnema/bmb/internal/application/port"
	"github.com/bnema/bmb/internal/domain/entity"
	"github.com/bnema/bmb/internal/infrastructure/webkit"
)

// pageOrder mirrors the notebook's page order by tab ID.
type pageOrder []entity.TabID

func (o pageOrder) index(id entity.TabID) int {
	return slices.Index(o, id)
}

func (o pageOrder) at(i int) (entity.TabID, bool) {
	if i < 0 || i >= len(o) {
		return "", false
	}
	return o[i], true
}

func (o pageOrder) without(i int) pageOrder {
	return slices.Delete(o, i, i+1)
}

type tabPage struct {
	widget gtk.Widgetter
	label  *gtk.Label
}

// TabStrip is a gtk.Notebook implementing port.TabStrip.
// Programmatic changes do not report switches back to the controller.
type TabStrip struct {
	notebook *gtk.Notebook
	order    pageOrder
	pages    map[entity.TabID]*tabPage
	muted    bool

	onSwitch func(id entity.TabID)
	onClose  func(id entity.TabID)

	logger zerolog.Logger
}

func newTabStrip(logger zerolog.Logger) *TabStrip {
	nb := gtk.NewNotebook()
	if nb == nil {
		return nil
	}
	nb.SetScrollable(true)
	nb.SetHExpand(true)
	nb.SetVExpand(true)

	s := &TabStrip{
		notebook: nb,
		pages:    make(map[entity.TabID]*tabPage),
		logger:   logger,
	}
	nb.ConnectSwitchPage(func(_ gtk.Widgetter, pageNum uint) {
		if s.muted || s.onSwitch == nil {
			return
		}
		if id, ok := s.order.at(int(pageNum)); ok {
			s.onSwitch(id)
		}
	})
	return s
}

// AppendTab implements port.TabStrip.
func (s *TabStrip) AppendTab(id entity.TabID, label string, surface port.Surface) error {
	widget, err := webkit.Widget(surface)
	if err != nil {
		return err
	}

	text := gtk.NewLabel(label)
	text.SetEllipsize(pango.EllipsizeEnd)
	text.SetTooltipText(label)

	closeButton := gtk.NewButtonFromIconName("window-close-symbolic")
	closeButton.SetHasFrame(false)
	closeButton.SetFocusOnClick(false)
	closeButton.SetTooltipText("Close tab")
	closeButton.ConnectClicked(func() {
		if s.onClose != nil {
			s.onClose(id)
		}
	})

	header := gtk.NewBox(gtk.OrientationHorizontal, 4)
	header.Append(text)
	header.Append(closeButton)

	s.muted = true
	s.notebook.AppendPage(widget, header)
	s.muted = false

	s.order = append(s.order, id)
	s.pages[id] = &tabPage{widget: widget, label: text}

	s.logger.Trace().Str("tab", string(id)).Int("pages", len(s.order)).Msg("page appended")
	return nil
}

// RemoveTab implements port.TabStrip.
func (s *TabStrip) RemoveTab(id entity.TabID) {
	i := s.order.index(id)
	if i < 0 {
		return
	}
	s.muted = true
	s.notebook.RemovePage(i)
	s.muted = false

	s.order = s.order.without(i)
	delete(s.pages, id)
}

// SelectTab implements port.TabStrip.
func (s *TabStrip) SelectTab(id entity.TabID) {
	i := s.order.index(id)
	if i < 0 {
		return
	}
	s.muted = true
	s.notebook.SetCurrentPage(i)
	s.muted = false

	if page := s.pages[id]; page != nil {
		if w, ok := page.widget.(interface{ GrabFocus() bool }); ok {
			w.GrabFocus()
		}
	}
}

// SetTabLabel implements port.TabStrip.
func (s *TabStrip) SetTabLabel(id entity.TabID, label string) {
	page := s.pages[id]
	if page == nil {
		return
	}
	page.label.SetText(label)
	page.label.SetTooltipText(label)
}

var _ port.TabStrip = (*TabStrip)(nil)
