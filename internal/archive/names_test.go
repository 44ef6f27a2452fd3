package archive

import "testing"

func TestParseEntryName(t *testing.T) {
	cases := []struct {
		entry      string
		ok         bool
		filename   string
		baseKey    string
		archivable bool
	}{
		{"1.png", true, "1.png", "1", true},
		{"frames/2.jpg", true, "2.jpg", "2", true},
		{"frames/sub/10.jpeg", true, "10.jpeg", "10", true},
		{"7-1.png", true, "7-1.png", "7", false},
		{"03.png", true, "03.png", "3", true},
		{"0.png", true, "0.png", "0", true},
		{"12abc.png", true, "12abc.png", "12", false},
		{"3.PNG", true, "3.PNG", "3", true},

		{"cover.png", false, "", "", false},
		{"notes.txt", false, "", "", false},
		{"5.gif", false, "", "", false},
		{"__MACOSX/1.png", false, "", "", false},
		{"frames/__MACOSX/2.png", false, "", "", false},
		{"._3.png", false, "", "", false},
		{"frames/._4.jpg", false, "", "", false},
		{"frames/", false, "", "", false},
	}
	for _, tc := range cases {
		info, ok := ParseEntryName(tc.entry)
		if ok != tc.ok {
			t.Errorf("ParseEntryName(%q) ok = %v, want %v", tc.entry, ok, tc.ok)
			continue
		}
		if !ok {
			continue
		}
		if info.Filename != tc.filename {
			t.Errorf("ParseEntryName(%q) filename = %q, want %q", tc.entry, info.Filename, tc.filename)
		}
		if info.BaseKey != tc.baseKey {
			t.Errorf("ParseEntryName(%q) base key = %q, want %q", tc.entry, info.BaseKey, tc.baseKey)
		}
		if info.Archivable != tc.archivable {
			t.Errorf("ParseEntryName(%q) archivable = %v, want %v", tc.entry, info.Archivable, tc.archivable)
		}
	}
}

func TestStem(t *testing.T) {
	if got := Stem("10-2.png"); got != "10-2" {
		t.Errorf("Stem(10-2.png) = %q", got)
	}
	if got := Stem("noext"); got != "noext" {
		t.Errorf("Stem(noext) = %q", got)
	}
}
