package inference

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestEncodeRequestLines(t *testing.T) {
	lines := []RequestLine{
		NewImageRequest("gpt-4o-mini", "job:0:0:1.png", DefaultPrompt, "https://signed/1"),
		NewImageRequest("gpt-4o-mini", "job:0:1:2.png", DefaultPrompt, "https://signed/2"),
	}
	data, err := EncodeRequestLines(lines)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	raw := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	if len(raw) != 2 {
		t.Fatalf("got %d lines, want 2", len(raw))
	}

	var decoded RequestLine
	if err := json.Unmarshal(raw[0], &decoded); err != nil {
		t.Fatalf("decode line 0: %v", err)
	}
	if decoded.CustomID != "job:0:0:1.png" {
		t.Errorf("custom id = %q", decoded.CustomID)
	}
	if decoded.Method != "POST" || decoded.URL != "/v1/chat/completions" {
		t.Errorf("endpoint = %s %s", decoded.Method, decoded.URL)
	}
	if len(decoded.Body.Messages) != 1 || len(decoded.Body.Messages[0].Content) != 2 {
		t.Fatalf("unexpected message shape: %+v", decoded.Body.Messages)
	}
	if decoded.Body.Messages[0].Content[1].ImageURL.URL != "https://signed/1" {
		t.Errorf("image url = %q", decoded.Body.Messages[0].Content[1].ImageURL.URL)
	}
}

func TestDecodeResponseLines(t *testing.T) {
	input := strings.Join([]string{
		`{"custom_id":"a","response":{"status_code":200,"body":{"choices":[{"message":{"content":"  hello  "}}]}}}`,
		``,
		`{"custom_id":"b","error":{"code":"server_error","message":"boom"}}`,
		`{"custom_id":"c","response":{"status_code":500,"body":{"choices":[]}}}`,
	}, "\n")

	lines, err := DecodeResponseLines([]byte(input))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}

	if lines[0].Failed() {
		t.Error("line a reported failed")
	}
	if got := lines[0].Text(); got != "hello" {
		t.Errorf("line a text = %q, want trimmed hello", got)
	}
	if !lines[1].Failed() {
		t.Error("line b with provider error not reported failed")
	}
	if !lines[2].Failed() {
		t.Error("line c with non-200 status not reported failed")
	}
}

func TestDecodeResponseLinesRejectsMalformed(t *testing.T) {
	if _, err := DecodeResponseLines([]byte(`{"no_custom_id":true}`)); err == nil {
		t.Error("expected schema rejection for line without custom_id")
	}
	if _, err := DecodeResponseLines([]byte(`not json`)); err == nil {
		t.Error("expected rejection for non-JSON line")
	}
}

func TestStateVocabulary(t *testing.T) {
	for _, s := range []State{StateCompleted, StateFailed, StateExpired, StateCancelled} {
		if !s.Terminal() {
			t.Errorf("%s not terminal", s)
		}
	}
	for _, s := range []State{StateValidating, StateInProgress, StateFinalizing, StateCancelling} {
		if s.Terminal() {
			t.Errorf("%s reported terminal", s)
		}
	}
	if !StateCompleted.Succeeded() || StateFailed.Succeeded() {
		t.Error("succeeded classification wrong")
	}
}
