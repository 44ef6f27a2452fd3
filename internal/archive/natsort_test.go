package archive

import (
	"sort"
	"testing"
)

func TestCompareNumericRuns(t *testing.T) {
	names := []string{"10", "2", "1", "9", "11"}
	sort.Slice(names, func(i, j int) bool { return Compare(names[i], names[j]) < 0 })
	want := []string{"1", "2", "9", "10", "11"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("sorted = %v, want %v", names, want)
		}
	}
}

func TestComparePrefixSortsFirst(t *testing.T) {
	if Compare("1", "1-1") >= 0 {
		t.Error("expected \"1\" before \"1-1\"")
	}
	if Compare("abc", "abcd") >= 0 {
		t.Error("expected \"abc\" before \"abcd\"")
	}
}

func TestCompareCaseFolded(t *testing.T) {
	if Compare("A1", "a2") >= 0 {
		t.Error("expected A1 before a2")
	}
	// equal after folding, raw bytes break the tie deterministically
	if Compare("A1", "a1") == 0 {
		t.Error("expected deterministic order for A1 vs a1")
	}
}

func TestCompareLeadingZeros(t *testing.T) {
	if Compare("03", "10") >= 0 {
		t.Error("expected 03 before 10")
	}
	if Compare("03", "3") == 0 {
		t.Error("expected raw tie-break between 03 and 3")
	}
}

func TestSortItemsDocumentOrder(t *testing.T) {
	items := []WorkItem{
		{Filename: "10.png"},
		{Filename: "2.png"},
		{Filename: "1-1.png"},
		{Filename: "1.png"},
	}
	SortItems(items)
	want := []string{"1.png", "1-1.png", "2.png", "10.png"}
	for i, w := range want {
		if items[i].Filename != w {
			got := make([]string, len(items))
			for j, it := range items {
				got[j] = it.Filename
			}
			t.Fatalf("sorted = %v, want %v", got, want)
		}
	}
}

func TestSortItemsSubFrameVariants(t *testing.T) {
	items := []WorkItem{
		{Filename: "7-2.png"},
		{Filename: "7.png"},
		{Filename: "7-1.png"},
		{Filename: "8.png"},
	}
	SortItems(items)
	want := []string{"7.png", "7-1.png", "7-2.png", "8.png"}
	for i, w := range want {
		if items[i].Filename != w {
			got := make([]string, len(items))
			for j, it := range items {
				got[j] = it.Filename
			}
			t.Fatalf("sorted = %v, want %v", got, want)
		}
	}
}
