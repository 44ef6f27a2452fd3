package archive

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"framescribe/internal/storage"
	"framescribe/internal/transform"
)

// ErrNoProcessableEntries means the archive contained nothing recognizable;
// the job cannot proceed.
var ErrNoProcessableEntries = errors.New("archive: no processable entries")

// WorkItem is one processable frame, ready for batch submission. It is
// ephemeral: the signed URL is a short-lived credential, so work items live
// only in the transient manifest, never in the permanent job ledger.
type WorkItem struct {
	Filename    string `json:"filename"`
	BaseKey     string `json:"base_key"`
	GlobalIndex int    `json:"global_index"`
	CropKey     string `json:"crop_key"`
	SignedURL   string `json:"signed_url"`
}

// Result is the builder's output for one job.
type Result struct {
	Items              []WorkItem
	FilteredArchiveKey string
	ThumbnailKey       string
	TotalImages        int
}

// Builder streams an input archive, filters and transforms its entries, and
// emits the sorted work-item list. Peak memory is bounded by one entry at a
// time: each crop is uploaded before the next entry is read.
type Builder struct {
	Store        storage.ObjectStore
	Transform    transform.Func
	SignedURLTTL time.Duration
	WorkDir      string
	Logger       *slog.Logger
}

func NewBuilder(store storage.ObjectStore, tf transform.Func, ttl time.Duration, workDir string, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	if tf == nil {
		tf = transform.Passthrough
	}
	if ttl <= 0 {
		ttl = 48 * time.Hour
	}
	return &Builder{Store: store, Transform: tf, SignedURLTTL: ttl, WorkDir: workDir, Logger: logger}
}

// Build produces the work items for a job from its source archive pointer.
func (b *Builder) Build(ctx context.Context, jobID uuid.UUID, archiveKey string) (*Result, error) {
	start := time.Now()

	src, err := b.fetchArchive(ctx, archiveKey)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = src.Close()
		_ = os.Remove(src.Name())
	}()

	zr, err := zip.OpenReader(src.Name())
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer func() {
		if cerr := zr.Close(); cerr != nil {
			b.Logger.Warn("archive close error", "error", cerr)
		}
	}()

	filteredPath := src.Name() + ".filtered.zip"
	filteredFile, err := os.Create(filteredPath)
	if err != nil {
		return nil, fmt.Errorf("create filtered archive: %w", err)
	}
	defer func() {
		_ = filteredFile.Close()
		_ = os.Remove(filteredPath)
	}()
	zw := zip.NewWriter(filteredFile)

	var (
		items        []WorkItem
		seenBaseKeys = map[string]struct{}{}
		thumbnailKey string
		cropIndex    int
	)

	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		info, ok := ParseEntryName(f.Name)
		if !ok {
			b.Logger.Debug("archive.entry.skipped", "entry", f.Name)
			continue
		}

		original, err := readEntry(f)
		if err != nil {
			return nil, fmt.Errorf("read entry %s: %w", f.Name, err)
		}

		crop, err := b.Transform(ctx, info.Filename, original)
		if err != nil {
			return nil, fmt.Errorf("transform %s: %w", info.Filename, err)
		}

		cropKey := fmt.Sprintf("crops/%s/%04d_%s", jobID, cropIndex, info.Filename)
		cropIndex++
		if err := b.Store.Put(ctx, cropKey, bytes.NewReader(crop), int64(len(crop)), contentType(info.Filename)); err != nil {
			return nil, fmt.Errorf("upload crop %s: %w", info.Filename, err)
		}
		signedURL, err := b.Store.PresignGet(ctx, cropKey, b.SignedURLTTL)
		if err != nil {
			return nil, fmt.Errorf("sign crop %s: %w", info.Filename, err)
		}

		if thumbnailKey == "" {
			thumbnailKey = fmt.Sprintf("thumbnails/%s%s", jobID, strings.ToLower(path.Ext(info.Filename)))
			if err := b.Store.Put(ctx, thumbnailKey, bytes.NewReader(original), int64(len(original)), contentType(info.Filename)); err != nil {
				return nil, fmt.Errorf("upload thumbnail: %w", err)
			}
		}

		// archive inclusion: pure-integer names only, first seen base key wins
		if info.Archivable {
			if _, dup := seenBaseKeys[info.BaseKey]; !dup {
				seenBaseKeys[info.BaseKey] = struct{}{}
				w, err := zw.Create(info.Filename)
				if err != nil {
					return nil, fmt.Errorf("filtered archive entry %s: %w", info.Filename, err)
				}
				if _, err := w.Write(original); err != nil {
					return nil, fmt.Errorf("filtered archive write %s: %w", info.Filename, err)
				}
			}
		}

		items = append(items, WorkItem{
			Filename:  info.Filename,
			BaseKey:   info.BaseKey,
			CropKey:   cropKey,
			SignedURL: signedURL,
		})
	}

	if len(items) == 0 {
		return nil, ErrNoProcessableEntries
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize filtered archive: %w", err)
	}

	// no canonical frames means no filtered archive; an empty zip is not an artifact
	var filteredKey string
	if len(seenBaseKeys) > 0 {
		filteredKey = fmt.Sprintf("filtered/%s.zip", jobID)
		if err := b.uploadFile(ctx, filteredKey, filteredFile); err != nil {
			return nil, err
		}
	}

	SortItems(items)
	for i := range items {
		items[i].GlobalIndex = i
	}

	b.Logger.Info("archive.build.ok",
		"job_id", jobID,
		"items", len(items),
		"archived", len(seenBaseKeys),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return &Result{
		Items:              items,
		FilteredArchiveKey: filteredKey,
		ThumbnailKey:       thumbnailKey,
		TotalImages:        len(items),
	}, nil
}

// fetchArchive spools the source archive to a temp file; zip needs random access.
func (b *Builder) fetchArchive(ctx context.Context, archiveKey string) (*os.File, error) {
	rc, err := b.Store.Get(ctx, archiveKey)
	if err != nil {
		return nil, fmt.Errorf("fetch archive: %w", err)
	}
	defer func() {
		if cerr := rc.Close(); cerr != nil {
			b.Logger.Warn("archive source close error", "error", cerr)
		}
	}()

	tmp, err := os.CreateTemp(b.WorkDir, "framescribe-archive-*.zip")
	if err != nil {
		return nil, fmt.Errorf("spool archive: %w", err)
	}
	if _, err := io.Copy(tmp, rc); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return nil, fmt.Errorf("spool archive: %w", err)
	}
	return tmp, nil
}

func (b *Builder) uploadFile(ctx context.Context, key string, f *os.File) error {
	stat, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", key, err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewind %s: %w", key, err)
	}
	if err := b.Store.Put(ctx, key, f, stat.Size(), "application/zip"); err != nil {
		return fmt.Errorf("upload %s: %w", key, err)
	}
	return nil
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return io.ReadAll(rc)
}

func contentType(filename string) string {
	switch strings.ToLower(path.Ext(filename)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	}
	return "application/octet-stream"
}
