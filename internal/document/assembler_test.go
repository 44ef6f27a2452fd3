package document

import (
	"errors"
	"strings"
	"testing"

	"framescribe/internal/entity"
)

func frame(idx int, baseKey, filename, text string) *entity.Frame {
	return &entity.Frame{Filename: filename, BaseKey: baseKey, FrameIndex: idx, Text: text}
}

func TestParagraphsGroupsByBaseKey(t *testing.T) {
	frames := []*entity.Frame{
		frame(0, "1", "1.png", "a"),
		frame(1, "1", "1-1.png", "b"),
		frame(2, "2", "2.png", ""),
	}
	paras := Paragraphs(frames)
	if len(paras) != 2 {
		t.Fatalf("got %d paragraphs, want 2", len(paras))
	}
	if paras[0].BaseKey != "1" || paras[0].Text != "a b" {
		t.Errorf("paragraph 0 = %+v, want base key 1 text \"a b\"", paras[0])
	}
	if paras[1].BaseKey != "2" || paras[1].Text != "" {
		t.Errorf("paragraph 1 = %+v, want base key 2 empty text", paras[1])
	}
}

func TestParagraphsNaturalKeyOrder(t *testing.T) {
	frames := []*entity.Frame{
		frame(2, "10", "10.png", "ten"),
		frame(0, "2", "2.png", "two"),
		frame(1, "9", "9.png", "nine"),
	}
	paras := Paragraphs(frames)
	want := []string{"2", "9", "10"}
	for i, w := range want {
		if paras[i].BaseKey != w {
			t.Fatalf("paragraph %d base key = %q, want %q", i, paras[i].BaseKey, w)
		}
	}
}

func TestParagraphsOrdersWithinGroupByFrameIndex(t *testing.T) {
	frames := []*entity.Frame{
		frame(5, "3", "3-2.png", "later"),
		frame(4, "3", "3-1.png", "middle"),
		frame(3, "3", "3.png", "first"),
	}
	paras := Paragraphs(frames)
	if len(paras) != 1 {
		t.Fatalf("got %d paragraphs, want 1", len(paras))
	}
	if paras[0].Text != "first middle later" {
		t.Errorf("text = %q", paras[0].Text)
	}
}

func TestPlainTextBlankLineBetweenParagraphs(t *testing.T) {
	got := PlainText([]Paragraph{{Text: "one"}, {Text: "two"}})
	if got != "one\n\ntwo" {
		t.Errorf("PlainText = %q", got)
	}
}

func TestBuildEmptyDocument(t *testing.T) {
	frames := []*entity.Frame{
		frame(0, "1", "1.png", ""),
		frame(1, "2", "2.png", "   "),
	}
	_, _, err := Build(frames)
	if !errors.Is(err, ErrEmptyDocument) {
		t.Fatalf("err = %v, want ErrEmptyDocument", err)
	}
}

func TestBuildProducesBothArtifacts(t *testing.T) {
	frames := []*entity.Frame{
		frame(0, "1", "1.png", "hello"),
		frame(1, "2", "2.png", ""),
	}
	text, html, err := Build(frames)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if text != "hello\n\n" {
		t.Errorf("text = %q", text)
	}
	if !strings.Contains(string(html), "hello") {
		t.Errorf("html %q does not contain paragraph text", html)
	}
}

func TestFramesXLSX(t *testing.T) {
	frames := []*entity.Frame{
		frame(0, "1", "1.png", "hello"),
	}
	data, err := FramesXLSX(frames)
	if err != nil {
		t.Fatalf("FramesXLSX: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty workbook")
	}
	// xlsx is a zip container
	if string(data[:2]) != "PK" {
		t.Errorf("workbook does not look like a zip: % x", data[:4])
	}
}
