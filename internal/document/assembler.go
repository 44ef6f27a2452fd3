package document

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/yuin/goldmark"

	"framescribe/internal/archive"
	"framescribe/internal/entity"
)

// ErrEmptyDocument means every paragraph came out empty; the assembler fails
// rather than silently producing an empty document.
var ErrEmptyDocument = errors.New("document: no paragraph text")

// Paragraph is one logical frame group's concatenated text.
type Paragraph struct {
	BaseKey string
	Text    string
}

// Paragraphs groups frames by base key, orders groups with the same natural
// comparator used on archive entries, orders frames within a group by global
// index, and joins a group's texts with a single space.
func Paragraphs(frames []*entity.Frame) []Paragraph {
	groups := map[string][]*entity.Frame{}
	var keys []string
	for _, f := range frames {
		if _, ok := groups[f.BaseKey]; !ok {
			keys = append(keys, f.BaseKey)
		}
		groups[f.BaseKey] = append(groups[f.BaseKey], f)
	}
	sort.Slice(keys, func(i, j int) bool { return archive.Compare(keys[i], keys[j]) < 0 })

	out := make([]Paragraph, 0, len(keys))
	for _, k := range keys {
		fs := groups[k]
		sort.Slice(fs, func(i, j int) bool { return fs[i].FrameIndex < fs[j].FrameIndex })
		texts := make([]string, len(fs))
		for i, f := range fs {
			texts[i] = f.Text
		}
		out = append(out, Paragraph{BaseKey: k, Text: strings.Join(texts, " ")})
	}
	return out
}

// PlainText joins paragraphs with one blank line between them.
func PlainText(paras []Paragraph) string {
	texts := make([]string, len(paras))
	for i, p := range paras {
		texts[i] = p.Text
	}
	return strings.Join(texts, "\n\n")
}

// RenderHTML renders the paragraph list as an HTML document via markdown.
func RenderHTML(paras []Paragraph) ([]byte, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(PlainText(paras)), &buf); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	return buf.Bytes(), nil
}

// Build produces both final artifacts from a job's reconciled frames.
func Build(frames []*entity.Frame) (string, []byte, error) {
	paras := Paragraphs(frames)
	empty := true
	for _, p := range paras {
		if strings.TrimSpace(p.Text) != "" {
			empty = false
			break
		}
	}
	if empty {
		return "", nil, ErrEmptyDocument
	}
	text := PlainText(paras)
	html, err := RenderHTML(paras)
	if err != nil {
		return "", nil, err
	}
	return text, html, nil
}
