package input

import (
	"context"
	"testing"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bmb/internal/config"
)

func TestParseKeyString(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   KeyBinding
		wantOk bool
	}{
		{"gtk control letter", "<Control>t", KeyBinding{Keyval: uint(gdk.KEY_t), Modifiers: ModCtrl}, true},
		{"gtk alt arrow", "<Alt>Left", KeyBinding{Keyval: uint(gdk.KEY_Left), Modifiers: ModAlt}, true},
		{"gtk stacked modifiers", "<Control><Shift>n", KeyBinding{Keyval: uint(gdk.KEY_n), Modifiers: ModCtrl | ModShift}, true},
		{"gtk primary alias", "<Primary>l", KeyBinding{Keyval: uint(gdk.KEY_l), Modifiers: ModCtrl}, true},
		{"function key", "F11", KeyBinding{Keyval: uint(gdk.KEY_F11)}, true},
		{"shorthand", "ctrl+w", KeyBinding{Keyval: uint(gdk.KEY_w), Modifiers: ModCtrl}, true},
		{"shorthand case insensitive", "Alt+Home", KeyBinding{Keyval: uint(gdk.KEY_Home), Modifiers: ModAlt}, true},
		{"uppercase letter adds shift", "ctrl+T", KeyBinding{Keyval: uint(gdk.KEY_t), Modifiers: ModCtrl | ModShift}, true},
		{"plus key", "ctrl++", KeyBinding{Keyval: uint(gdk.KEY_plus), Modifiers: ModCtrl}, true},
		{"digit", "alt+1", KeyBinding{Keyval: uint(gdk.KEY_1), Modifiers: ModAlt}, true},
		{"empty", "", KeyBinding{}, false},
		{"modifier only", "<Control>", KeyBinding{}, false},
		{"unclosed modifier", "<Control t", KeyBinding{}, false},
		{"unknown modifier", "<Hyper>t", KeyBinding{}, false},
		{"two keys", "ctrl+a+b", KeyBinding{}, false},
		{"unknown key", "ctrl+whatever", KeyBinding{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseKeyString(tt.input)
			assert.Equal(t, tt.wantOk, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewShortcutTable_DefaultKeys(t *testing.T) {
	table, errs := NewShortcutTable(context.Background(), config.DefaultKeys())
	require.Empty(t, errs)
	assert.Len(t, table, len(config.KnownActions))

	action, ok := table.Lookup(KeyBinding{Keyval: uint(gdk.KEY_F11)})
	assert.True(t, ok)
	assert.Equal(t, config.ActionFullscreen, action)

	action, ok = table.Lookup(KeyBinding{Keyval: uint(gdk.KEY_l), Modifiers: ModCtrl})
	assert.True(t, ok)
	assert.Equal(t, config.ActionFocusAddress, action)
}

func TestNewShortcutTable_ReportsBadBindings(t *testing.T) {
	table, errs := NewShortcutTable(context.Background(), map[string]string{
		"back":      "<Alt>Left",
		"forward":   "<Alt>Left",
		"new_tab":   "<Nope>t",
		"close_tab": "ctrl+w",
	})

	assert.Len(t, errs, 2)
	assert.Len(t, table, 2)
	action, _ := table.Lookup(KeyBinding{Keyval: uint(gdk.KEY_Left), Modifiers: ModAlt})
	assert.Equal(t, "back", action, "first action in name order keeps a duplicate binding")
}

func TestShortcutTable_LookupIgnoresLockModifiers(t *testing.T) {
	table, _ := NewShortcutTable(context.Background(), map[string]string{"reload": "F5"})

	action, ok := table.Lookup(KeyBinding{
		Keyval:    uint(gdk.KEY_F5),
		Modifiers: Modifier(gdk.LockMask),
	})
	assert.True(t, ok)
	assert.Equal(t, "reload", action)
}

func TestKeyboardHandler_HandleKey(t *testing.T) {
	var got []string
	h := NewKeyboardHandler(context.Background(), config.DefaultKeys(), func(_ context.Context, action string) bool {
		got = append(got, action)
		return true
	})

	assert.False(t, h.HandleKey(uint(gdk.KEY_T), gdk.ControlMask|gdk.ShiftMask))
	assert.True(t, h.HandleKey(uint(gdk.KEY_t), gdk.ControlMask))
	assert.True(t, h.HandleKey(uint(gdk.KEY_F5), 0))
	assert.False(t, h.HandleKey(uint(gdk.KEY_x), 0))

	assert.Equal(t, []string{config.ActionNewTab, config.ActionReload}, got)
}

func TestKeyboardHandler_Rebind(t *testing.T) {
	var got []string
	h := NewKeyboardHandler(context.Background(), config.DefaultKeys(), func(_ context.Context, action string) bool {
		got = append(got, action)
		return true
	})

	h.Rebind(map[string]string{config.ActionReload: "ctrl+r"})

	assert.False(t, h.HandleKey(uint(gdk.KEY_F5), 0))
	assert.True(t, h.HandleKey(uint(gdk.KEY_r), gdk.ControlMask))
	assert.Equal(t, []string{config.ActionReload}, got)
}
