package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadMissingKey(t *testing.T) {
	s := openTestStore(t)

	idx, ok, err := s.LoadPageIndex("kitchen")
	if err != nil {
		t.Fatalf("LoadPageIndex: %v", err)
	}
	if ok {
		t.Error("ok = true for a key never saved")
	}
	if idx != 0 {
		t.Errorf("idx = %d, want 0", idx)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)

	if err := s.SavePageIndex("kitchen", 2); err != nil {
		t.Fatalf("SavePageIndex: %v", err)
	}

	idx, ok, err := s.LoadPageIndex("kitchen")
	if err != nil {
		t.Fatalf("LoadPageIndex: %v", err)
	}
	if !ok || idx != 2 {
		t.Errorf("got (%d, %v), want (2, true)", idx, ok)
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := openTestStore(t)

	for _, idx := range []int{0, 3, 1} {
		if err := s.SavePageIndex("hall", idx); err != nil {
			t.Fatalf("SavePageIndex(%d): %v", idx, err)
		}
	}

	idx, ok, err := s.LoadPageIndex("hall")
	if err != nil || !ok {
		t.Fatalf("LoadPageIndex: idx=%d ok=%v err=%v", idx, ok, err)
	}
	if idx != 1 {
		t.Errorf("idx = %d, want last written 1", idx)
	}
}

func TestKeysIndependent(t *testing.T) {
	s := openTestStore(t)

	if err := s.SavePageIndex("kitchen", 4); err != nil {
		t.Fatal(err)
	}
	if err := s.SavePageIndex("hall", 1); err != nil {
		t.Fatal(err)
	}

	if idx, _, _ := s.LoadPageIndex("kitchen"); idx != 4 {
		t.Errorf("kitchen = %d, want 4", idx)
	}
	if idx, _, _ := s.LoadPageIndex("hall"); idx != 1 {
		t.Errorf("hall = %d, want 1", idx)
	}
}

func TestReopenKeepsState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := s.SavePageIndex("kiosk", 2); err != nil {
		t.Fatal(err)
	}
	s.Close()

	s2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()

	idx, ok, err := s2.LoadPageIndex("kiosk")
	if err != nil || !ok || idx != 2 {
		t.Errorf("after reopen: idx=%d ok=%v err=%v, want 2/true/nil", idx, ok, err)
	}
}
