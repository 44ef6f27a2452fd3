package manifest

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"framescribe/internal/archive"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s, err := Open(filepath.Join(t.TempDir(), "manifest.db"), logger)
	if err != nil {
		t.Fatalf("open manifest: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func testItems() []archive.WorkItem {
	return []archive.WorkItem{
		{Filename: "1.png", BaseKey: "1", GlobalIndex: 0, CropKey: "crops/j/0000_1.png", SignedURL: "https://signed/1"},
		{Filename: "1-1.png", BaseKey: "1", GlobalIndex: 1, CropKey: "crops/j/0001_1-1.png", SignedURL: "https://signed/2"},
		{Filename: "2.png", BaseKey: "2", GlobalIndex: 2, CropKey: "crops/j/0002_2.png", SignedURL: "https://signed/3"},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := openTestStore(t)
	jobID := uuid.New()

	if err := s.Save(context.Background(), jobID, testItems()); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load(context.Background(), jobID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := testItems()
	if len(got) != len(want) {
		t.Fatalf("got %d items, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSaveReplacesExistingManifest(t *testing.T) {
	s := openTestStore(t)
	jobID := uuid.New()

	if err := s.Save(context.Background(), jobID, testItems()); err != nil {
		t.Fatalf("save: %v", err)
	}
	smaller := testItems()[:1]
	if err := s.Save(context.Background(), jobID, smaller); err != nil {
		t.Fatalf("second save: %v", err)
	}
	got, err := s.Load(context.Background(), jobID)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d items after replace, want 1", len(got))
	}
}

func TestLoadMissingJobIsEmpty(t *testing.T) {
	s := openTestStore(t)
	got, err := s.Load(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d items for unknown job", len(got))
	}
}

func TestPurgeIsScopedToJob(t *testing.T) {
	s := openTestStore(t)
	a, b := uuid.New(), uuid.New()

	if err := s.Save(context.Background(), a, testItems()); err != nil {
		t.Fatalf("save a: %v", err)
	}
	if err := s.Save(context.Background(), b, testItems()); err != nil {
		t.Fatalf("save b: %v", err)
	}
	if err := s.Purge(context.Background(), a); err != nil {
		t.Fatalf("purge: %v", err)
	}

	if got, _ := s.Load(context.Background(), a); len(got) != 0 {
		t.Errorf("job a not purged: %d items", len(got))
	}
	if got, _ := s.Load(context.Background(), b); len(got) != 3 {
		t.Errorf("job b affected by purge: %d items", len(got))
	}
}
