package weft

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// KeyPattern identifies which key events match a binding.
type KeyPattern struct {
	Key           Key      // Specific key (KeyCtrlB, KeyEscape, etc.), or 0
	Rune          rune     // Specific rune, or 0
	AnyRune       bool     // Match any printable character
	Mod           Modifier // Required modifiers (when non-zero, event must have exactly these mods)
	RequireNoMods bool     // When true, event must have no modifiers (Mod field is ignored)
}

// Matches reports whether a key event satisfies the pattern.
func (p KeyPattern) Matches(ke KeyEvent) bool {
	if p.RequireNoMods && ke.Mod != 0 {
		return false
	}
	if p.Mod != 0 && ke.Mod != p.Mod {
		return false
	}

	if p.AnyRune && ke.Key == KeyRune {
		return true
	}
	if p.Rune != 0 && ke.Rune == p.Rune && ke.Key == KeyRune {
		return true
	}
	if p.Key != 0 && ke.Key == p.Key {
		return true
	}
	return false
}

// Keymap maps action names to key patterns. Applications bind handlers
// to action names (App.BindAction) and users can rebind the chords from
// a YAML file without touching code.
type Keymap struct {
	patterns map[string]KeyPattern
	order    []string // action names in bind order, for deterministic matching
}

// NewKeymap creates an empty keymap.
func NewKeymap() *Keymap {
	return &Keymap{patterns: make(map[string]KeyPattern)}
}

// Bind associates an action name with a key chord like "ctrl+c",
// "shift+tab", "f5", or "q". Rebinding an action replaces its chord.
func (k *Keymap) Bind(action, chord string) error {
	pattern, err := ParseChord(chord)
	if err != nil {
		return fmt.Errorf("bind %q: %w", action, err)
	}
	if _, exists := k.patterns[action]; !exists {
		k.order = append(k.order, action)
	}
	k.patterns[action] = pattern
	return nil
}

// BindPattern associates an action name with an explicit pattern.
func (k *Keymap) BindPattern(action string, pattern KeyPattern) {
	if _, exists := k.patterns[action]; !exists {
		k.order = append(k.order, action)
	}
	k.patterns[action] = pattern
}

// Pattern returns the pattern bound to an action.
func (k *Keymap) Pattern(action string) (KeyPattern, bool) {
	p, ok := k.patterns[action]
	return p, ok
}

// Match returns the first action (in bind order) whose pattern matches
// the event.
func (k *Keymap) Match(ke KeyEvent) (string, bool) {
	for _, action := range k.order {
		if k.patterns[action].Matches(ke) {
			return action, true
		}
	}
	return "", false
}

// Len returns the number of bound actions.
func (k *Keymap) Len() int {
	return len(k.order)
}

// keymapFile is the YAML schema for keymap files.
type keymapFile struct {
	Bindings map[string]string `yaml:"bindings"`
}

// LoadKeymap reads action bindings from a YAML file:
//
//	bindings:
//	  quit: ctrl+c
//	  next-pane: tab
//	  search: "/"
//
// A missing file is not an error; the returned keymap is empty and the
// application's defaults apply.
func LoadKeymap(path string) (*Keymap, error) {
	km := NewKeymap()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return km, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read keymap: %w", err)
	}

	var file keymapFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse keymap: %w", err)
	}

	// Bind in sorted order for deterministic Match priority.
	actions := make([]string, 0, len(file.Bindings))
	for action := range file.Bindings {
		actions = append(actions, action)
	}
	sort.Strings(actions)
	for _, action := range actions {
		if err := km.Bind(action, file.Bindings[action]); err != nil {
			return nil, fmt.Errorf("keymap %s: %w", path, err)
		}
	}
	return km, nil
}

// chordKeys maps chord key names to Key constants.
var chordKeys = map[string]Key{
	"enter":     KeyEnter,
	"tab":       KeyTab,
	"escape":    KeyEscape,
	"esc":       KeyEscape,
	"backspace": KeyBackspace,
	"delete":    KeyDelete,
	"insert":    KeyInsert,
	"up":        KeyUp,
	"down":      KeyDown,
	"left":      KeyLeft,
	"right":     KeyRight,
	"home":      KeyHome,
	"end":       KeyEnd,
	"pageup":    KeyPageUp,
	"pagedown":  KeyPageDown,
	"f1":        KeyF1,
	"f2":        KeyF2,
	"f3":        KeyF3,
	"f4":        KeyF4,
	"f5":        KeyF5,
	"f6":        KeyF6,
	"f7":        KeyF7,
	"f8":        KeyF8,
	"f9":        KeyF9,
	"f10":       KeyF10,
	"f11":       KeyF11,
	"f12":       KeyF12,
}

// ParseChord parses a key chord string into a pattern. Chords are
// lowercase, joined with "+": "ctrl+c", "alt+x", "shift+tab", "f5",
// "enter", or a single printable character like "q" or "/".
//
// "ctrl"+letter resolves to the dedicated control-key constant the
// input parser emits (the terminal sends a control byte, not a
// modifier flag).
func ParseChord(chord string) (KeyPattern, error) {
	if chord == "" {
		return KeyPattern{}, fmt.Errorf("empty chord")
	}

	parts := strings.Split(strings.ToLower(chord), "+")
	keyName := parts[0]
	if len(parts) > 1 {
		keyName = parts[len(parts)-1]
	}

	var mod Modifier
	ctrl := false
	for _, part := range parts[:len(parts)-1] {
		switch part {
		case "ctrl":
			ctrl = true
		case "alt":
			mod |= ModAlt
		case "shift":
			mod |= ModShift
		default:
			return KeyPattern{}, fmt.Errorf("unknown modifier %q in chord %q", part, chord)
		}
	}

	// Ctrl+letter arrives as a control byte.
	if ctrl {
		if mod != 0 {
			return KeyPattern{}, fmt.Errorf("ctrl does not combine with other modifiers in chord %q", chord)
		}
		if len(keyName) == 1 && keyName[0] >= 'a' && keyName[0] <= 'z' {
			return KeyPattern{Key: KeyCtrlA + Key(keyName[0]-'a')}, nil
		}
		if keyName == "space" {
			return KeyPattern{Key: KeyCtrlSpace}, nil
		}
		return KeyPattern{}, fmt.Errorf("unsupported ctrl chord %q", chord)
	}

	if key, ok := chordKeys[keyName]; ok {
		return KeyPattern{Key: key, Mod: mod}, nil
	}
	if keyName == "space" {
		return KeyPattern{Rune: ' ', Mod: mod}, nil
	}

	runes := []rune(keyName)
	if len(runes) != 1 {
		return KeyPattern{}, fmt.Errorf("unknown key %q in chord %q", keyName, chord)
	}
	return KeyPattern{Rune: runes[0], Mod: mod}, nil
}
