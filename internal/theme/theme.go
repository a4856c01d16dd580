// Package theme resolves and persists the dark/light page theme.
//
// The persisted preference is tri-state: a stored "true", a stored "false",
// or nothing at all. Only the absent case defers to the ambient system
// signal, so a user who explicitly chose light keeps light on a dark system.
package theme

import (
	"context"
	"fmt"
)

// PreferenceKey is the storage key holding the persisted preference.
const PreferenceKey = "prefers-dark"

// Mode is the applied visual theme.
type Mode int

const (
	Light Mode = iota
	Dark
)

func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// Preference is the persisted user choice.
type Preference int

const (
	Unset Preference = iota
	PreferLight
	PreferDark
)

func (p Preference) String() string {
	switch p {
	case PreferDark:
		return "dark"
	case PreferLight:
		return "light"
	default:
		return "unset"
	}
}

// ParsePreference interprets a stored value. Anything other than "true"
// counts as an explicit light choice once a value exists.
func ParsePreference(value string, ok bool) Preference {
	if !ok {
		return Unset
	}
	if value == "true" {
		return PreferDark
	}
	return PreferLight
}

// storageValue returns the boolean-like string persisted for a mode.
func storageValue(m Mode) string {
	if m == Dark {
		return "true"
	}
	return "false"
}

// Resolve picks the initial mode: persisted preference first, then the
// ambient signal when nothing is persisted, otherwise light.
func Resolve(pref Preference, ambient Ambient) Mode {
	switch pref {
	case PreferDark:
		return Dark
	case PreferLight:
		return Light
	}

	if ambient != nil {
		if dark, ok := ambient(); ok && dark {
			return Dark
		}
	}
	return Light
}

// Store is the key-value storage the toggle persists into.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Toggle holds the current theme state. It reads the store once in New and
// writes on every flip.
type Toggle struct {
	store      Store
	mode       Mode
	preference Preference
}

// New resolves the initial state from the store and the ambient signal.
func New(ctx context.Context, store Store, ambient Ambient) (*Toggle, error) {
	value, ok, err := store.Get(ctx, PreferenceKey)
	if err != nil {
		return nil, fmt.Errorf("reading theme preference: %w", err)
	}

	pref := ParsePreference(value, ok)
	return &Toggle{
		store:      store,
		mode:       Resolve(pref, ambient),
		preference: pref,
	}, nil
}

// Mode returns the applied mode.
func (t *Toggle) Mode() Mode {
	return t.mode
}

// Preference returns the persisted preference as read at init or written by
// the last Toggle.
func (t *Toggle) Preference() Preference {
	return t.preference
}

// Pressed reports the toggle control's pressed state.
func (t *Toggle) Pressed() bool {
	return t.mode == Dark
}

// BodyClass returns the class applied to the page body.
func (t *Toggle) BodyClass() string {
	if t.mode == Dark {
		return "dark"
	}
	return ""
}

// Toggle flips the mode and persists it. The in-memory state is only changed
// once the write succeeded.
func (t *Toggle) Toggle(ctx context.Context) (Mode, error) {
	next := Dark
	if t.mode == Dark {
		next = Light
	}

	if err := t.store.Set(ctx, PreferenceKey, storageValue(next)); err != nil {
		return t.mode, fmt.Errorf("saving theme preference: %w", err)
	}

	t.mode = next
	if next == Dark {
		t.preference = PreferDark
	} else {
		t.preference = PreferLight
	}
	return t.mode, nil
}
