package archive

import (
	"path"
	"strings"

	"framescribe/constants"
)

// EntryInfo describes one processable archive entry.
type EntryInfo struct {
	// Filename is the base name with any path stripped.
	Filename string
	// BaseKey is the leading digit run parsed as an integer, e.g. "3" for
	// both "3-1.png" and "03.png". It groups sub-frame variants into one
	// logical paragraph unit.
	BaseKey string
	// Archivable is true only when the whole stem is the digit run; sub-frame
	// variants like "7-1" are recognized but never re-packaged.
	Archivable bool
}

// ParseEntryName applies the filtering rule: an entry is processable iff its
// base filename (excluding __MACOSX/ trees and AppleDouble files) has a png/
// jpg/jpeg extension and begins with one or more ASCII digits.
func ParseEntryName(entry string) (EntryInfo, bool) {
	clean := strings.ReplaceAll(entry, "\\", "/")
	for _, part := range strings.Split(clean, "/") {
		if part == "__MACOSX" {
			return EntryInfo{}, false
		}
	}
	base := path.Base(clean)
	if base == "." || base == "/" || base == "" {
		return EntryInfo{}, false
	}
	if strings.HasPrefix(base, "._") {
		return EntryInfo{}, false
	}
	ext := path.Ext(base)
	if !constants.AllowedExt(ext) {
		return EntryInfo{}, false
	}
	stem := base[:len(base)-len(ext)]
	digits := leadingDigits(stem)
	if digits == "" {
		return EntryInfo{}, false
	}
	return EntryInfo{
		Filename:   base,
		BaseKey:    canonicalKey(digits),
		Archivable: stem == digits,
	}, true
}

func leadingDigits(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i]
}

// canonicalKey normalizes a digit run to its integer form, so "03" and "3"
// collide on key "3".
func canonicalKey(digits string) string {
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

// Stem returns a filename without its extension.
func Stem(name string) string {
	return strings.TrimSuffix(name, path.Ext(name))
}
