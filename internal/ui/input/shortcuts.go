// Package input maps configured key bindings to browser actions.
package input

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"

	"github.com/bnema/bmb/internal/logging"
)

// Modifier represents keyboard modifier flags.
type Modifier uint

const (
	// ModNone indicates no modifier is pressed.
	ModNone Modifier = 0
	// ModShift indicates the Shift key is pressed.
	ModShift Modifier = Modifier(gdk.ShiftMask)
	// ModCtrl indicates the Control key is pressed.
	ModCtrl Modifier = Modifier(gdk.ControlMask)
	// ModAlt indicates the Alt key is pressed.
	ModAlt Modifier = Modifier(gdk.AltMask)
)

// modifierMask filters out lock and pointer state from GDK state.
const modifierMask = ModCtrl | ModShift | ModAlt

var modifierByName = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"primary": ModCtrl,
	"shift":   ModShift,
	"alt":     ModAlt,
	"mod1":    ModAlt,
}

var keyvalByName = map[string]uint{
	"escape":    uint(gdk.KEY_Escape),
	"esc":       uint(gdk.KEY_Escape),
	"return":    uint(gdk.KEY_Return),
	"enter":     uint(gdk.KEY_Return),
	"tab":       uint(gdk.KEY_Tab),
	"space":     uint(gdk.KEY_space),
	"backspace": uint(gdk.KEY_BackSpace),
	"delete":    uint(gdk.KEY_Delete),
	"home":      uint(gdk.KEY_Home),
	"end":       uint(gdk.KEY_End),
	"pageup":    uint(gdk.KEY_Page_Up),
	"page_up":   uint(gdk.KEY_Page_Up),
	"pagedown":  uint(gdk.KEY_Page_Down),
	"page_down": uint(gdk.KEY_Page_Down),
	"left":      uint(gdk.KEY_Left),
	"right":     uint(gdk.KEY_Right),
	"up":        uint(gdk.KEY_Up),
	"down":      uint(gdk.KEY_Down),
	"f1":        uint(gdk.KEY_F1),
	"f2":        uint(gdk.KEY_F2),
	"f3":        uint(gdk.KEY_F3),
	"f4":        uint(gdk.KEY_F4),
	"f5":        uint(gdk.KEY_F5),
	"f6":        uint(gdk.KEY_F6),
	"f7":        uint(gdk.KEY_F7),
	"f8":        uint(gdk.KEY_F8),
	"f9":        uint(gdk.KEY_F9),
	"f10":       uint(gdk.KEY_F10),
	"f11":       uint(gdk.KEY_F11),
	"f12":       uint(gdk.KEY_F12),
	"plus":      uint(gdk.KEY_plus),
	"minus":     uint(gdk.KEY_minus),
	"equal":     uint(gdk.KEY_equal),
}

// KeyBinding represents a single key combination.
type KeyBinding struct {
	Keyval    uint
	Modifiers Modifier
}

// ShortcutTable maps key combinations to action names.
type ShortcutTable map[KeyBinding]string

// NewShortcutTable builds a table from action → accelerator pairs.
// Unparsable or duplicate accelerators are skipped and returned as errors.
func NewShortcutTable(ctx context.Context, keys map[string]string) (ShortcutTable, []error) {
	log := logging.FromContext(ctx)

	// Sorted for a stable winner on duplicates.
	actions := make([]string, 0, len(keys))
	for action := range keys {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	table := make(ShortcutTable, len(keys))
	var errs []error
	for _, action := range actions {
		accel := keys[action]
		binding, ok := ParseKeyString(accel)
		if !ok {
			errs = append(errs, fmt.Errorf("keys.%s: cannot parse %q", action, accel))
			continue
		}
		if other, taken := table[binding]; taken {
			errs = append(errs, fmt.Errorf("keys.%s: %q already bound to %s", action, accel, other))
			continue
		}
		table[binding] = action
	}

	for _, err := range errs {
		log.Warn().Err(err).Msg("ignoring key binding")
	}
	log.Debug().Int("bindings", len(table)).Msg("shortcut table built")
	return table, errs
}

// Lookup finds the action bound to binding.
func (t ShortcutTable) Lookup(binding KeyBinding) (string, bool) {
	binding.Modifiers &= modifierMask
	action, ok := t[binding]
	return action, ok
}

// ParseKeyString parses a GTK accelerator such as "<Control>t" or "<Alt>Left",
// or the shorthand "ctrl+t" / "alt+left".
func ParseKeyString(s string) (KeyBinding, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return KeyBinding{}, false
	}

	var modifiers Modifier
	var keyPart string

	if strings.HasPrefix(s, "<") {
		rest := s
		for strings.HasPrefix(rest, "<") {
			end := strings.IndexByte(rest, '>')
			if end < 0 {
				return KeyBinding{}, false
			}
			mod, ok := modifierByName[strings.ToLower(rest[1:end])]
			if !ok {
				return KeyBinding{}, false
			}
			modifiers |= mod
			rest = rest[end+1:]
		}
		keyPart = strings.TrimSpace(rest)
	} else {
		if s == "+" {
			return KeyBinding{Keyval: uint(gdk.KEY_plus)}, true
		}
		for _, part := range strings.Split(s, "+") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if mod, ok := modifierByName[strings.ToLower(part)]; ok {
				modifiers |= mod
				continue
			}
			if keyPart != "" {
				return KeyBinding{}, false
			}
			keyPart = part
		}
		// "ctrl++" binds the plus key.
		if keyPart == "" && strings.HasSuffix(s, "++") {
			keyPart = "+"
		}
	}

	if keyPart == "" {
		return KeyBinding{}, false
	}

	// Uppercase single letters mean Shift+<letter>.
	if len(keyPart) == 1 && keyPart[0] >= 'A' && keyPart[0] <= 'Z' {
		modifiers |= ModShift
		keyPart = strings.ToLower(keyPart)
	}

	keyval, ok := stringToKeyval(keyPart)
	if !ok {
		return KeyBinding{}, false
	}
	return KeyBinding{Keyval: keyval, Modifiers: modifiers}, true
}

// stringToKeyval converts a key name to its GDK keyval.
func stringToKeyval(s string) (uint, bool) {
	if keyval, ok := keyvalByName[strings.ToLower(s)]; ok {
		return keyval, true
	}
	if s == "+" {
		return uint(gdk.KEY_plus), true
	}
	// ASCII letters and digits share their code point with the keyval.
	if len(s) == 1 {
		c := s[0]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			return uint(c), true
		}
	}
	return 0, false
}

// NormalizeKeyval folds shifted ASCII letters to lowercase so that bindings
// only carry Shift in their modifiers.
func NormalizeKeyval(keyval uint) uint {
	if keyval >= uint('A') && keyval <= uint('Z') {
		return keyval + (uint('a') - uint('A'))
	}
	return keyval
}
