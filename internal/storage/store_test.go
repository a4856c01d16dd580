package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func openAll(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	file, err := OpenFile(filepath.Join(dir, "prefs.json"))
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}
	db, err := OpenSQLite(filepath.Join(dir, "prefs.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	mem, err := OpenSQLiteMemory()
	if err != nil {
		t.Fatalf("OpenSQLiteMemory() failed: %v", err)
	}

	stores := map[string]Store{
		"file":          file,
		"sqlite":        db,
		"sqlite-memory": mem,
		"memory":        NewMemory(),
	}
	t.Cleanup(func() {
		for _, s := range stores {
			s.Close()
		}
	})
	return stores
}

func TestStoreContract(t *testing.T) {
	ctx := context.Background()

	for name, store := range openAll(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok, err := store.Get(ctx, "prefers-dark"); err != nil || ok {
				t.Fatalf("Get() on empty store = (ok=%v, err=%v), want absent", ok, err)
			}

			if err := store.Set(ctx, "prefers-dark", "true"); err != nil {
				t.Fatalf("Set() failed: %v", err)
			}
			v, ok, err := store.Get(ctx, "prefers-dark")
			if err != nil || !ok || v != "true" {
				t.Fatalf("Get() = (%q, %v, %v), want (\"true\", true, nil)", v, ok, err)
			}

			if err := store.Set(ctx, "prefers-dark", "false"); err != nil {
				t.Fatalf("Set() overwrite failed: %v", err)
			}
			if v, _, _ := store.Get(ctx, "prefers-dark"); v != "false" {
				t.Errorf("overwrite not visible, got %q", v)
			}

			if err := store.Delete(ctx, "prefers-dark"); err != nil {
				t.Fatalf("Delete() failed: %v", err)
			}
			if _, ok, _ := store.Get(ctx, "prefers-dark"); ok {
				t.Error("value still present after Delete()")
			}
			if err := store.Delete(ctx, "missing"); err != nil {
				t.Errorf("Delete() of missing key failed: %v", err)
			}
		})
	}
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "prefs.json")

	first, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}
	if err := first.Set(ctx, "prefers-dark", "true"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	second, err := OpenFile(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if v, ok, _ := second.Get(ctx, "prefers-dark"); !ok || v != "true" {
		t.Errorf("value not persisted, got (%q, %v)", v, ok)
	}

	if _, err := os.Stat(path + TmpSuffix); !os.IsNotExist(err) {
		t.Error("temp file should not remain after save")
	}
}

func TestFileStoreKeepsBackup(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prefs.json")

	store, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}
	if err := store.Set(ctx, "prefers-dark", "true"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Set(ctx, "prefers-dark", "false"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	backup, err := os.ReadFile(path + BackupSuffix)
	if err != nil {
		t.Fatalf("backup missing: %v", err)
	}
	if !strings.Contains(string(backup), `"true"`) {
		t.Errorf("backup should hold the previous value, got %s", backup)
	}
}

func TestFileStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := OpenFile(path); err == nil {
		t.Error("expected error for corrupt store file")
	}
}

func TestFileStoreNullDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	if err := os.WriteFile(path, []byte("null"), 0644); err != nil {
		t.Fatal(err)
	}

	store, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}

	ctx := context.Background()
	if _, ok, _ := store.Get(ctx, "prefers-dark"); ok {
		t.Error("null document should be an empty store")
	}
	if err := store.Set(ctx, "prefers-dark", "true"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	reopened, err := OpenFile(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	if v, ok, _ := reopened.Get(ctx, "prefers-dark"); !ok || v != "true" {
		t.Errorf("got %q (present=%v), want \"true\"", v, ok)
	}
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prefs.db")

	first, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite() failed: %v", err)
	}
	if err := first.Set(ctx, "prefers-dark", "true"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	first.Close()

	second, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer second.Close()

	if v, ok, _ := second.Get(ctx, "prefers-dark"); !ok || v != "true" {
		t.Errorf("value not persisted, got (%q, %v)", v, ok)
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		backend string
		path    string
		wantErr error
	}{
		{BackendFile, filepath.Join(dir, "a.json"), nil},
		{BackendSQLite, filepath.Join(dir, "a.db"), nil},
		{BackendMemory, "", nil},
		{"redis", "", ErrUnknownBackend},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			store, err := Open(tt.backend, tt.path)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Open(%q) error = %v, want %v", tt.backend, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Open(%q) failed: %v", tt.backend, err)
			}
			store.Close()
		})
	}
}
