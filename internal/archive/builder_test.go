package archive

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

type memStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func newMemStore() *memStore { return &memStore{objects: map[string][]byte{}} }

func (s *memStore) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return nil
}

func (s *memStore) Get(_ context.Context, key string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	if !ok {
		return nil, fmt.Errorf("object %s not found", key)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *memStore) List(_ context.Context, prefix string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for k := range s.objects {
		if strings.HasPrefix(k, prefix) {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out, nil
}

func (s *memStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func (s *memStore) PresignGet(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://signed.example/" + key, nil
}

func (s *memStore) PresignPut(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://signed.example/put/" + key, nil
}

func makeZip(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	// deterministic entry order
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zip create %s: %v", name, err)
		}
		if _, err := w.Write([]byte(entries[name])); err != nil {
			t.Fatalf("zip write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	return buf.Bytes()
}

func testBuilder(t *testing.T, store *memStore) *Builder {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	b := NewBuilder(store, nil, time.Hour, t.TempDir(), logger)
	return b
}

func TestBuildFiltersAndOrders(t *testing.T) {
	store := newMemStore()
	archiveKey := "uploads/in.zip"
	_ = store.Put(context.Background(), archiveKey, bytes.NewReader(makeZip(t, map[string]string{
		"10.png":          "j",
		"2.png":           "b",
		"1-1.png":         "a1",
		"1.png":           "a",
		"cover.png":       "skip",
		"notes.txt":       "skip",
		"__MACOSX/1.png":  "skip",
		"._2.png":         "skip",
		"frames/99.gif":   "skip",
	})), 0, "application/zip")

	b := testBuilder(t, store)
	jobID := uuid.New()
	res, err := b.Build(context.Background(), jobID, archiveKey)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	want := []string{"1.png", "1-1.png", "2.png", "10.png"}
	if len(res.Items) != len(want) {
		t.Fatalf("got %d items, want %d", len(res.Items), len(want))
	}
	for i, w := range want {
		it := res.Items[i]
		if it.Filename != w {
			t.Errorf("item %d = %q, want %q", i, it.Filename, w)
		}
		if it.GlobalIndex != i {
			t.Errorf("item %d global index = %d", i, it.GlobalIndex)
		}
		if it.SignedURL == "" || it.CropKey == "" {
			t.Errorf("item %d missing crop pointers: %+v", i, it)
		}
	}
	if res.TotalImages != 4 {
		t.Errorf("total images = %d, want 4", res.TotalImages)
	}
	if res.ThumbnailKey == "" {
		t.Error("thumbnail key missing")
	}
	if _, err := store.Get(context.Background(), res.ThumbnailKey); err != nil {
		t.Errorf("thumbnail not uploaded: %v", err)
	}
}

func TestBuildFilteredArchiveKeepsCanonicalFramesOnly(t *testing.T) {
	store := newMemStore()
	archiveKey := "uploads/in.zip"
	_ = store.Put(context.Background(), archiveKey, bytes.NewReader(makeZip(t, map[string]string{
		"1.png":   "one",
		"1-1.png": "one-sub",
		"2.png":   "two",
		"03.png":  "three-padded",
		"3.png":   "three",
	})), 0, "application/zip")

	b := testBuilder(t, store)
	res, err := b.Build(context.Background(), uuid.New(), archiveKey)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	rc, err := store.Get(context.Background(), res.FilteredArchiveKey)
	if err != nil {
		t.Fatalf("filtered archive not uploaded: %v", err)
	}
	data, _ := io.ReadAll(rc)
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("open filtered archive: %v", err)
	}

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	// "1-1.png" is not a pure-integer name; "03" and "3" collide on base
	// key 3 and only the first seen survives
	if len(names) != 3 {
		t.Fatalf("filtered entries = %v, want 3 canonical frames", names)
	}
	for _, n := range names {
		if n == "1-1.png" {
			t.Errorf("sub-frame variant leaked into filtered archive: %v", names)
		}
	}
}

func TestBuildSkipsFilteredArchiveWithoutCanonicalFrames(t *testing.T) {
	store := newMemStore()
	archiveKey := "uploads/in.zip"
	_ = store.Put(context.Background(), archiveKey, bytes.NewReader(makeZip(t, map[string]string{
		"1-1.png": "one-sub",
		"2-1.png": "two-sub",
	})), 0, "application/zip")

	b := testBuilder(t, store)
	res, err := b.Build(context.Background(), uuid.New(), archiveKey)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(res.Items) != 2 {
		t.Fatalf("got %d items, want 2", len(res.Items))
	}
	if res.FilteredArchiveKey != "" {
		t.Errorf("filtered archive key = %q, want empty", res.FilteredArchiveKey)
	}
	keys, _ := store.List(context.Background(), "filtered/")
	if len(keys) != 0 {
		t.Errorf("empty filtered archive uploaded: %v", keys)
	}
}

func TestBuildEmptyArchive(t *testing.T) {
	store := newMemStore()
	archiveKey := "uploads/in.zip"
	_ = store.Put(context.Background(), archiveKey, bytes.NewReader(makeZip(t, map[string]string{
		"cover.png": "skip",
		"notes.txt": "skip",
	})), 0, "application/zip")

	b := testBuilder(t, store)
	_, err := b.Build(context.Background(), uuid.New(), archiveKey)
	if !errors.Is(err, ErrNoProcessableEntries) {
		t.Fatalf("err = %v, want ErrNoProcessableEntries", err)
	}
}
