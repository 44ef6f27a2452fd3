package archive

import (
	"sort"
	"strings"
)

// Compare is a natural comparator: runs of digits compare as numeric values,
// runs of non-digits compare case-folded byte-wise, and an exhausted string
// sorts first. Frame "10" therefore lands after "9" and before "11".
func Compare(a, b string) int {
	ia, ib := 0, 0
	for ia < len(a) && ib < len(b) {
		ca, cb := a[ia], b[ib]
		if isDigit(ca) && isDigit(cb) {
			ja, jb := ia, ib
			for ja < len(a) && isDigit(a[ja]) {
				ja++
			}
			for jb < len(b) && isDigit(b[jb]) {
				jb++
			}
			na := strings.TrimLeft(a[ia:ja], "0")
			nb := strings.TrimLeft(b[ib:jb], "0")
			if len(na) != len(nb) {
				return len(na) - len(nb)
			}
			if c := strings.Compare(na, nb); c != 0 {
				return c
			}
			ia, ib = ja, jb
			continue
		}
		fa, fb := fold(ca), fold(cb)
		if fa != fb {
			return int(fa) - int(fb)
		}
		ia++
		ib++
	}
	if rem := (len(a) - ia) - (len(b) - ib); rem != 0 {
		return rem
	}
	// tie-break on the raw bytes ("03" vs "3", case differences)
	return strings.Compare(a, b)
}

// SortItems orders work items by natural comparison of the filename stem,
// tie-broken by raw lexical comparison of the full name. This is the order
// frames keep all the way into the final document.
func SortItems(items []WorkItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i].Filename, items[j].Filename
		if c := Compare(Stem(a), Stem(b)); c != 0 {
			return c < 0
		}
		return a < b
	})
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func fold(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
