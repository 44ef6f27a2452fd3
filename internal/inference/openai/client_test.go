package openai

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"framescribe/internal/inference"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewClient(Config{APIKey: "test-key", BaseURL: srv.URL}, logger)
}

func TestUploadBatchInput(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/files" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization = %q", got)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("purpose"); got != "batch" {
			t.Errorf("purpose = %q", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "file-123"})
	}))

	id, err := c.UploadBatchInput(context.Background(), "job.batch-0.jsonl", []byte(`{"custom_id":"x"}`+"\n"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if id != "file-123" {
		t.Errorf("file id = %q", id)
	}
}

func TestCreateBatchCarriesMetadata(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		if payload["input_file_id"] != "file-123" {
			t.Errorf("input_file_id = %v", payload["input_file_id"])
		}
		if payload["completion_window"] != "24h" {
			t.Errorf("completion_window = %v", payload["completion_window"])
		}
		md, _ := payload["metadata"].(map[string]any)
		if md["job_id"] != "j1" || md["batch_index"] != "0" {
			t.Errorf("metadata = %v", md)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":            "batch-1",
			"status":        "validating",
			"input_file_id": "file-123",
			"metadata":      map[string]string{"job_id": "j1", "batch_index": "0"},
		})
	}))

	b, err := c.CreateBatch(context.Background(), "file-123", map[string]string{"job_id": "j1", "batch_index": "0"})
	if err != nil {
		t.Fatalf("create batch: %v", err)
	}
	if b.ID != "batch-1" || b.State != inference.StateValidating {
		t.Errorf("batch = %+v", b)
	}
	if b.Metadata["job_id"] != "j1" {
		t.Errorf("metadata = %v", b.Metadata)
	}
}

func TestCreateBatchCapacityRejections(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{"http 429", http.StatusTooManyRequests, `{"error":{"message":"slow down"}}`},
		{"token limit", http.StatusBadRequest, `{"error":{"code":"token_limit_exceeded"}}`},
		{"batch quota", http.StatusBadRequest, `{"error":{"code":"batch_quota_exceeded"}}`},
		{"insufficient quota", http.StatusForbidden, `{"error":{"type":"insufficient_quota"}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			_, err := c.CreateBatch(context.Background(), "file-123", nil)
			if !errors.Is(err, inference.ErrCapacity) {
				t.Errorf("err = %v, want ErrCapacity", err)
			}
		})
	}
}

func TestCreateBatchOtherErrorsAreNotCapacity(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":"invalid_request"}}`))
	}))
	_, err := c.CreateBatch(context.Background(), "file-123", nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, inference.ErrCapacity) {
		t.Error("plain 400 classified as capacity")
	}
}

func TestGetBatchAndDownload(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/batches/batch-1":
			_ = json.NewEncoder(w).Encode(map[string]any{
				"id": "batch-1", "status": "completed", "output_file_id": "file-out",
			})
		case "/files/file-out/content":
			_, _ = w.Write([]byte(`{"custom_id":"a"}` + "\n"))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	b, err := c.GetBatch(context.Background(), "batch-1")
	if err != nil {
		t.Fatalf("get batch: %v", err)
	}
	if !b.State.Succeeded() || b.OutputFileID != "file-out" {
		t.Errorf("batch = %+v", b)
	}
	data, err := c.DownloadFile(context.Background(), b.OutputFileID)
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	if len(data) == 0 {
		t.Error("empty download")
	}
}

func TestListRecentBatches(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("limit"); got != "50" {
			t.Errorf("limit = %q", got)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"id": "batch-1", "status": "completed", "metadata": map[string]string{"job_id": "j1"}},
				{"id": "batch-2", "status": "in_progress"},
			},
		})
	}))

	batches, err := c.ListRecentBatches(context.Background(), 50)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(batches) != 2 {
		t.Fatalf("got %d batches", len(batches))
	}
	if batches[0].Metadata["job_id"] != "j1" {
		t.Errorf("metadata = %v", batches[0].Metadata)
	}
}
