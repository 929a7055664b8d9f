package input

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/bmb/internal/logging"
)

// ActionHandler runs an action and reports whether it was known.
type ActionHandler func(ctx context.Context, action string) bool

// KeyboardHandler turns key presses on a window into actions.
// It runs on the GTK main thread only.
type KeyboardHandler struct {
	ctx      context.Context
	table    ShortcutTable
	onAction ActionHandler

	controller *gtk.EventControllerKey
}

// NewKeyboardHandler creates a new keyboard handler for the given bindings.
func NewKeyboardHandler(ctx context.Context, keys map[string]string, onAction ActionHandler) *KeyboardHandler {
	table, _ := NewShortcutTable(ctx, keys)
	return &KeyboardHandler{
		ctx:      ctx,
		table:    table,
		onAction: onAction,
	}
}

// Rebind replaces the shortcut table, used after a config reload.
func (h *KeyboardHandler) Rebind(keys map[string]string) {
	table, _ := NewShortcutTable(h.ctx, keys)
	h.table = table
}

// AttachTo attaches the handler to a window in the capture phase, so
// bindings win over the focused web view.
func (h *KeyboardHandler) AttachTo(window *gtk.ApplicationWindow) {
	log := logging.FromContext(h.ctx)
	if window == nil {
		log.Error().Msg("cannot attach keyboard handler to nil window")
		return
	}

	h.controller = gtk.NewEventControllerKey()
	h.controller.SetPropagationPhase(gtk.PhaseCapture)
	h.controller.ConnectKeyPressed(func(keyval, _ uint, state gdk.ModifierType) bool {
		return h.HandleKey(keyval, state)
	})
	window.AddController(h.controller)

	log.Debug().Msg("keyboard handler attached to window")
}

// HandleKey dispatches a key press. It returns true when the key was consumed.
func (h *KeyboardHandler) HandleKey(keyval uint, state gdk.ModifierType) bool {
	binding := KeyBinding{
		Keyval:    NormalizeKeyval(keyval),
		Modifiers: Modifier(state) & modifierMask,
	}

	action, found := h.table.Lookup(binding)
	if !found || h.onAction == nil {
		return false
	}

	logging.FromContext(h.ctx).Trace().Str("action", action).Msg("shortcut triggered")
	return h.onAction(h.ctx, action)
}
