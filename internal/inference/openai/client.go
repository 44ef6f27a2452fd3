package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"framescribe/internal/inference"
)

// batchEnvelope mirrors the provider's batch object.
type batchEnvelope struct {
	ID           string            `json:"id"`
	Status       string            `json:"status"`
	InputFileID  string            `json:"input_file_id"`
	OutputFileID string            `json:"output_file_id"`
	ErrorFileID  string            `json:"error_file_id"`
	Metadata     map[string]string `json:"metadata"`
}

func (e batchEnvelope) toBatch() inference.Batch {
	return inference.Batch{
		ID:           e.ID,
		InputFileID:  e.InputFileID,
		OutputFileID: e.OutputFileID,
		ErrorFileID:  e.ErrorFileID,
		State:        inference.State(e.Status),
		Metadata:     e.Metadata,
	}
}

// UploadBatchInput implements inference.Client via the files endpoint.
func (c *Client) UploadBatchInput(ctx context.Context, filename string, jsonl []byte) (string, error) {
	start := time.Now()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if err := w.WriteField("purpose", "batch"); err != nil {
		return "", fmt.Errorf("write purpose field: %w", err)
	}
	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := fw.Write(jsonl); err != nil {
		return "", fmt.Errorf("write form file: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/files"), &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", w.FormDataContentType())

	raw, status, err := c.do(req)
	if err != nil {
		c.logger.Error("openai.upload.failed", "filename", filename, "status", status, "error", err)
		return "", err
	}
	var out struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("decode file upload response: %w", err)
	}
	c.logger.Info("openai.upload.ok",
		"filename", filename,
		"file_id", out.ID,
		"bytes", len(jsonl),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out.ID, nil
}

// CreateBatch implements inference.Client. Capacity rejections map to
// inference.ErrCapacity so the submitter can shrink and retry.
func (c *Client) CreateBatch(ctx context.Context, inputFileID string, metadata map[string]string) (inference.Batch, error) {
	payload := map[string]any{
		"input_file_id":     inputFileID,
		"endpoint":          "/v1/chat/completions",
		"completion_window": c.cfg.CompletionWindow,
	}
	if len(metadata) > 0 {
		payload["metadata"] = metadata
	}
	raw, err := c.postJSON(ctx, c.endpoint("/batches"), payload)
	if err != nil {
		return inference.Batch{}, err
	}
	var env batchEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return inference.Batch{}, fmt.Errorf("decode batch response: %w", err)
	}
	c.logger.Info("openai.batch.created", "batch_id", env.ID, "input_file_id", inputFileID, "status", env.Status)
	return env.toBatch(), nil
}

func (c *Client) GetBatch(ctx context.Context, batchID string) (inference.Batch, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/batches/"+batchID), nil)
	if err != nil {
		return inference.Batch{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	raw, status, err := c.do(req)
	if err != nil {
		c.logger.Error("openai.batch.get_failed", "batch_id", batchID, "status", status, "error", err)
		return inference.Batch{}, err
	}
	var env batchEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return inference.Batch{}, fmt.Errorf("decode batch response: %w", err)
	}
	return env.toBatch(), nil
}

func (c *Client) ListRecentBatches(ctx context.Context, limit int) ([]inference.Batch, error) {
	if limit <= 0 {
		limit = 20
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/batches?limit="+strconv.Itoa(limit)), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	raw, _, err := c.do(req)
	if err != nil {
		return nil, err
	}
	var out struct {
		Data []batchEnvelope `json:"data"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode batch list: %w", err)
	}
	batches := make([]inference.Batch, len(out.Data))
	for i, env := range out.Data {
		batches[i] = env.toBatch()
	}
	return batches, nil
}

func (c *Client) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/files/"+fileID+"/content"), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	raw, status, err := c.do(req)
	if err != nil {
		c.logger.Error("openai.file.download_failed", "file_id", fileID, "status", status, "error", err)
		return nil, err
	}
	return raw, nil
}

func (c *Client) endpoint(path string) string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + path
}

func (c *Client) postJSON(ctx context.Context, url string, body any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	raw, _, err := c.do(req)
	return raw, err
}

func (c *Client) do(req *http.Request) ([]byte, int, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("openai http error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		err := Body.Close()
		if err != nil {
			c.logger.Warn("openai response body close error", "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return raw, resp.StatusCode, nil
	}
	if capacityError(resp.StatusCode, raw) {
		return nil, resp.StatusCode, fmt.Errorf("openai status %d: %w", resp.StatusCode, inference.ErrCapacity)
	}
	return nil, resp.StatusCode, fmt.Errorf("openai status %d: %s", resp.StatusCode, string(raw))
}

// capacityError recognizes the quota-exceeded family of rejections.
func capacityError(status int, raw []byte) bool {
	if status == http.StatusTooManyRequests {
		return true
	}
	var env struct {
		Error struct {
			Code string `json:"code"`
			Type string `json:"type"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return false
	}
	switch env.Error.Code {
	case "token_limit_exceeded", "batch_quota_exceeded", "rate_limit_exceeded":
		return true
	}
	return env.Error.Type == "insufficient_quota"
}
