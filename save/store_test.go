package save

import (
	"errors"
	"testing"
)

func TestStoreTypedValues(t *testing.T) {
	s, err := Open(NewMemory())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if s.Int("missing") != DefaultInt || s.Float("missing") != DefaultFloat || s.String("missing") != DefaultString {
		t.Fatalf("missing keys should read as defaults")
	}

	cases := []struct {
		name  string
		write func() error
		check func(t *testing.T)
	}{
		{"int", func() error { return s.SaveInt("SOUND_ON", 1) }, func(t *testing.T) {
			if s.Int("SOUND_ON") != 1 {
				t.Fatalf("expected 1, got %d", s.Int("SOUND_ON"))
			}
		}},
		{"float", func() error { return s.SaveFloat("volume", 0.25) }, func(t *testing.T) {
			if s.Float("volume") != 0.25 {
				t.Fatalf("expected 0.25, got %g", s.Float("volume"))
			}
		}},
		{"string", func() error { return s.SaveString("name", "ada") }, func(t *testing.T) {
			if s.String("name") != "ada" {
				t.Fatalf("expected ada, got %q", s.String("name"))
			}
		}},
		{"type_mismatch_reads_default", func() error { return s.SaveString("level", "3") }, func(t *testing.T) {
			if s.Int("level") != DefaultInt {
				t.Fatalf("string key read as int should be the default")
			}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.write(); err != nil {
				t.Fatalf("write: %v", err)
			}
			tc.check(t)
		})
	}
}

func TestStorePersistsAcrossOpen(t *testing.T) {
	mem := NewMemory()
	s, err := Open(mem)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.SaveInt("MUSIC_ON", 0); err != nil {
		t.Fatalf("SaveInt: %v", err)
	}

	reopened, err := Open(mem, "MUSIC_ON", "SOUND_ON")
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if !reopened.KeyExists("MUSIC_ON") {
		t.Fatalf("saved key should exist after reopen")
	}
	if reopened.KeyExists("SOUND_ON") {
		t.Fatalf("known but unsaved key should not exist")
	}
	if reopened.Int("MUSIC_ON") != 0 {
		t.Fatalf("unexpected value")
	}
	if got := reopened.Keys(); len(got) != 1 || got[0] != "MUSIC_ON" {
		t.Fatalf("unexpected keys %v", got)
	}
	if mem.Len() != 1 {
		t.Fatalf("only the saved value should be stored, got %d items", mem.Len())
	}
}

func TestStoreDelete(t *testing.T) {
	mem := NewMemory()
	s, err := Open(mem)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	for _, k := range []string{"a", "b", "c"} {
		if err := s.SaveInt(k, 7); err != nil {
			t.Fatalf("SaveInt: %v", err)
		}
	}

	if err := s.DeleteKey("b"); err != nil {
		t.Fatalf("DeleteKey: %v", err)
	}
	if s.KeyExists("b") || s.Int("b") != DefaultInt {
		t.Fatalf("deleted key still readable")
	}
	if mem.ItemExists("b") || mem.Len() != 2 {
		t.Fatalf("delete should remove the item from the backend, %d items left", mem.Len())
	}
	if got := s.Keys(); len(got) != 2 || got[0] != "a" || got[1] != "c" {
		t.Fatalf("unexpected keys %v", got)
	}
	if err := s.DeleteKey("missing"); err != nil {
		t.Fatalf("deleting a missing key: %v", err)
	}

	if err := s.DeleteAll(); err != nil {
		t.Fatalf("DeleteAll: %v", err)
	}
	if len(s.Keys()) != 0 || s.KeyExists("a") {
		t.Fatalf("expected empty store")
	}
	if mem.Len() != 0 {
		t.Fatalf("backend should be empty, got %d items", mem.Len())
	}
}

func TestStoreDeleteAllCoversKeysFromEarlierRuns(t *testing.T) {
	mem := NewMemory()
	first, err := Open(mem)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := first.SaveInt("SOUND_ON", 1); err != nil {
		t.Fatalf("SaveInt: %v", err)
	}

	second, err := Open(mem, "SOUND_ON")
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if err := second.DeleteAll(); err != nil {
		t.Fatalf("DeleteAll: %v", err)
	}
	if mem.ItemExists("SOUND_ON") {
		t.Fatalf("known key from an earlier run should be deleted")
	}
}

type failingBackend struct{ *Memory }

func (failingBackend) SaveItem(string, []byte) error { return errors.New("disk full") }
func (failingBackend) DeleteItem(string) error       { return errors.New("read-only") }

func TestStoreBackendErrors(t *testing.T) {
	s, err := Open(failingBackend{NewMemory()}, "x")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.SaveInt("x", 1); err == nil {
		t.Fatalf("expected write error")
	}
	if s.KeyExists("x") {
		t.Fatalf("failed write must not create the key")
	}
	if err := s.DeleteKey("x"); err == nil {
		t.Fatalf("expected delete error")
	}
	if err := s.DeleteAll(); err == nil {
		t.Fatalf("expected delete error")
	}
}
