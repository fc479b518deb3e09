package store

import (
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

func TestPhotos_AddAndList(t *testing.T) {
	s := newTestStore(t)

	first, err := s.Photos().Add("tree.jpg", "The Tree")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if first.ID == "" {
		t.Error("expected a generated photo ID")
	}

	second, err := s.Photos().Add("family.jpg", "")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if second.SortOrder <= first.SortOrder {
		t.Errorf("second photo sort order %d should follow %d", second.SortOrder, first.SortOrder)
	}

	photos, err := s.Photos().List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(photos) != 2 {
		t.Fatalf("len(photos) = %d, want 2", len(photos))
	}
	if photos[0].ID != first.ID || photos[1].ID != second.ID {
		t.Error("photos not listed in display order")
	}
}

func TestPhotos_AddRequiresFileName(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Photos().Add("", "untitled"); err == nil {
		t.Error("expected an error for an empty file name")
	}
}

func TestPhotos_Get(t *testing.T) {
	s := newTestStore(t)

	added, err := s.Photos().Add("snow.jpg", "Snow")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	got, err := s.Photos().Get(added.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil || got.FileName != "snow.jpg" || got.Title != "Snow" {
		t.Errorf("Get = %+v", got)
	}

	missing, err := s.Photos().Get("nope")
	if err != nil {
		t.Fatalf("Get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown ID, got %+v", missing)
	}
}

func TestPhotos_Remove(t *testing.T) {
	s := newTestStore(t)

	added, err := s.Photos().Add("gone.jpg", "")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	removed, err := s.Photos().Remove(added.ID)
	if err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if !removed {
		t.Error("expected removal to report true")
	}

	removed, err = s.Photos().Remove(added.ID)
	if err != nil {
		t.Fatalf("Remove again: %v", err)
	}
	if removed {
		t.Error("second removal should report false")
	}
}

func TestSettings_RoundTrip(t *testing.T) {
	s := newTestStore(t)

	if v, err := s.Setting("tracking_enabled"); err != nil || v != "" {
		t.Fatalf("unset key: v=%q err=%v", v, err)
	}

	if err := s.SetSetting("tracking_enabled", "false"); err != nil {
		t.Fatalf("SetSetting: %v", err)
	}
	if v, _ := s.Setting("tracking_enabled"); v != "false" {
		t.Errorf("Setting = %q, want false", v)
	}

	// Upsert overwrites.
	if err := s.SetSetting("tracking_enabled", "true"); err != nil {
		t.Fatalf("SetSetting: %v", err)
	}
	if v, _ := s.Setting("tracking_enabled"); v != "true" {
		t.Errorf("Setting = %q, want true", v)
	}
}
