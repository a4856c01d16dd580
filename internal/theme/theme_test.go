package theme

import (
	"context"
	"errors"
	"testing"
)

type fakeStore struct {
	values map[string]string
	setErr error
	writes int
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: make(map[string]string)}
}

func (s *fakeStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *fakeStore) Set(_ context.Context, key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.writes++
	s.values[key] = value
	return nil
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		pref    Preference
		ambient Ambient
		want    Mode
	}{
		{"persisted dark", PreferDark, Fixed(false), Dark},
		{"persisted light beats ambient dark", PreferLight, Fixed(true), Light},
		{"unset with ambient dark", Unset, Fixed(true), Dark},
		{"unset with ambient light", Unset, Fixed(false), Light},
		{"unset without signal", Unset, Unavailable, Light},
		{"unset with nil ambient", Unset, nil, Light},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.pref, tt.ambient); got != tt.want {
				t.Errorf("Resolve() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParsePreference(t *testing.T) {
	tests := []struct {
		value string
		ok    bool
		want  Preference
	}{
		{"", false, Unset},
		{"true", true, PreferDark},
		{"false", true, PreferLight},
		{"", true, PreferLight},
	}

	for _, tt := range tests {
		if got := ParsePreference(tt.value, tt.ok); got != tt.want {
			t.Errorf("ParsePreference(%q, %v) = %v, want %v", tt.value, tt.ok, got, tt.want)
		}
	}
}

func TestNewAbsentPreferenceAmbientDark(t *testing.T) {
	store := newFakeStore()

	toggle, err := New(context.Background(), store, Fixed(true))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if toggle.Mode() != Dark {
		t.Errorf("expected dark, got %v", toggle.Mode())
	}
	if !toggle.Pressed() {
		t.Error("pressed indicator should be true")
	}
	if toggle.BodyClass() != "dark" {
		t.Errorf("body class = %q, want %q", toggle.BodyClass(), "dark")
	}
	if toggle.Preference() != Unset {
		t.Errorf("preference = %v, want unset", toggle.Preference())
	}
	if store.writes != 0 {
		t.Errorf("init must not write, got %d writes", store.writes)
	}
}

func TestNewStoredFalseIgnoresAmbient(t *testing.T) {
	store := newFakeStore()
	store.values[PreferenceKey] = "false"

	toggle, err := New(context.Background(), store, Fixed(true))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	if toggle.Mode() != Light || toggle.Pressed() {
		t.Errorf("stored false should stay light, got %v", toggle.Mode())
	}
}

func TestToggleWritesPreference(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()

	toggle, err := New(ctx, store, Unavailable)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	mode, err := toggle.Toggle(ctx)
	if err != nil {
		t.Fatalf("Toggle() failed: %v", err)
	}
	if mode != Dark || store.values[PreferenceKey] != "true" {
		t.Errorf("after first toggle: mode=%v stored=%q", mode, store.values[PreferenceKey])
	}

	mode, err = toggle.Toggle(ctx)
	if err != nil {
		t.Fatalf("Toggle() failed: %v", err)
	}
	if mode != Light || store.values[PreferenceKey] != "false" {
		t.Errorf("after second toggle: mode=%v stored=%q", mode, store.values[PreferenceKey])
	}
	if toggle.Preference() != PreferLight {
		t.Errorf("preference = %v, want light", toggle.Preference())
	}
}

func TestToggleTwiceRestoresState(t *testing.T) {
	tests := []struct {
		name    string
		stored  string
		hasPref bool
		ambient Ambient
	}{
		{"stored dark", "true", true, Unavailable},
		{"stored light", "false", true, Fixed(true)},
		{"unset ambient dark", "", false, Fixed(true)},
		{"unset no signal", "", false, Unavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := newFakeStore()
			if tt.hasPref {
				store.values[PreferenceKey] = tt.stored
			}

			toggle, err := New(ctx, store, tt.ambient)
			if err != nil {
				t.Fatalf("New() failed: %v", err)
			}
			initial := toggle.Mode()

			for i := 0; i < 2; i++ {
				if _, err := toggle.Toggle(ctx); err != nil {
					t.Fatalf("Toggle() failed: %v", err)
				}
			}

			if toggle.Mode() != initial {
				t.Errorf("mode after two toggles = %v, want %v", toggle.Mode(), initial)
			}
			if tt.hasPref && store.values[PreferenceKey] != tt.stored {
				t.Errorf("stored after two toggles = %q, want %q", store.values[PreferenceKey], tt.stored)
			}
			if want := storageValue(initial); store.values[PreferenceKey] != want {
				t.Errorf("stored = %q, want %q", store.values[PreferenceKey], want)
			}
		})
	}
}

func TestToggleStoreFailureKeepsState(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	store.setErr = errors.New("disk full")

	toggle, err := New(ctx, store, Unavailable)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if _, err := toggle.Toggle(ctx); !errors.Is(err, store.setErr) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
	if toggle.Mode() != Light {
		t.Errorf("mode changed despite failed write: %v", toggle.Mode())
	}
}

func TestForSystem(t *testing.T) {
	t.Setenv("FERIADOS_PREFERS_DARK", "")
	t.Setenv("COLORFGBG", "")

	tests := []struct {
		system   string
		wantDark bool
		wantOK   bool
	}{
		{"dark", true, true},
		{"light", false, true},
		{"none", false, false},
		{"auto", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.system, func(t *testing.T) {
			dark, ok := ForSystem(tt.system)()
			if dark != tt.wantDark || ok != tt.wantOK {
				t.Errorf("ForSystem(%q)() = (%v, %v), want (%v, %v)", tt.system, dark, ok, tt.wantDark, tt.wantOK)
			}
		})
	}
}

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name        string
		prefersDark string
		colorFGBG   string
		wantDark    bool
		wantOK      bool
	}{
		{"explicit dark", "true", "", true, true},
		{"explicit light wins over COLORFGBG", "false", "15;0", false, true},
		{"dark terminal background", "", "15;0", true, true},
		{"light terminal background", "", "0;15", false, true},
		{"three-part COLORFGBG", "", "15;default;0", true, true},
		{"garbage", "", "x;y", false, false},
		{"nothing set", "", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("FERIADOS_PREFERS_DARK", tt.prefersDark)
			t.Setenv("COLORFGBG", tt.colorFGBG)

			dark, ok := FromEnv()()
			if dark != tt.wantDark || ok != tt.wantOK {
				t.Errorf("FromEnv()() = (%v, %v), want (%v, %v)", dark, ok, tt.wantDark, tt.wantOK)
			}
		})
	}
}
