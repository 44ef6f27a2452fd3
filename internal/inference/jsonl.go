package inference

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// RequestLine is one JSON object in a line-delimited batch submission.
type RequestLine struct {
	CustomID string      `json:"custom_id"`
	Method   string      `json:"method"`
	URL      string      `json:"url"`
	Body     RequestBody `json:"body"`
}

type RequestBody struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

type Message struct {
	Role    string        `json:"role"`
	Content []ContentPart `json:"content"`
}

type ContentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

type ImageURL struct {
	URL string `json:"url"`
}

// NewImageRequest builds one recognition request line: a fixed instruction
// prompt plus a signed image URL the provider can fetch.
func NewImageRequest(model, customID, prompt, imageURL string) RequestLine {
	return RequestLine{
		CustomID: customID,
		Method:   "POST",
		URL:      "/v1/chat/completions",
		Body: RequestBody{
			Model: model,
			Messages: []Message{{
				Role: "user",
				Content: []ContentPart{
					{Type: "text", Text: prompt},
					{Type: "image_url", ImageURL: &ImageURL{URL: imageURL}},
				},
			}},
			MaxTokens: 512,
		},
	}
}

// EncodeRequestLines renders request lines as JSONL.
func EncodeRequestLines(lines []RequestLine) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for i, l := range lines {
		if err := enc.Encode(l); err != nil {
			return nil, fmt.Errorf("encode request line %d: %w", i, err)
		}
	}
	return buf.Bytes(), nil
}

// ResponseLine is one JSON object in a batch output file. Its custom id
// echoes the request's correlation id.
type ResponseLine struct {
	CustomID string        `json:"custom_id"`
	Error    *LineError    `json:"error"`
	Response *LineResponse `json:"response"`
}

type LineError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type LineResponse struct {
	StatusCode int          `json:"status_code"`
	Body       ResponseBody `json:"body"`
}

type ResponseBody struct {
	Choices []Choice `json:"choices"`
}

type Choice struct {
	Message ChoiceMessage `json:"message"`
}

type ChoiceMessage struct {
	Content string `json:"content"`
}

// Failed reports a provider-level per-item error on this line.
func (l ResponseLine) Failed() bool {
	if l.Error != nil {
		return true
	}
	return l.Response == nil || l.Response.StatusCode != 200 || len(l.Response.Body.Choices) == 0
}

// Text returns the model's text response, trimmed.
func (l ResponseLine) Text() string {
	if l.Response == nil || len(l.Response.Body.Choices) == 0 {
		return ""
	}
	return strings.TrimSpace(l.Response.Body.Choices[0].Message.Content)
}

// DecodeResponseLines parses a line-delimited output file, validating each
// line's shape before use. Blank lines are skipped.
func DecodeResponseLines(data []byte) ([]ResponseLine, error) {
	var out []ResponseLine
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	n := 0
	for sc.Scan() {
		n++
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 {
			continue
		}
		if err := ValidateJSONAgainstSchema(responseLineSchema, raw); err != nil {
			return nil, fmt.Errorf("output line %d: %w", n, err)
		}
		var line ResponseLine
		if err := json.Unmarshal(raw, &line); err != nil {
			return nil, fmt.Errorf("decode output line %d: %w", n, err)
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan output: %w", err)
	}
	return out, nil
}
