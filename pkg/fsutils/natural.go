package fsutils

import (
	"strings"

	"golang.org/x/text/cases"
)

var folder = cases.Fold()

type naturalRun struct {
	text    string
	numeric bool
}

// splitNaturalRuns splits s into maximal runs of ASCII digits and non-digits.
func splitNaturalRuns(s string) []naturalRun {
	var runs []naturalRun
	start := 0
	for i := 0; i < len(s); i++ {
		isDigit := s[i] >= '0' && s[i] <= '9'
		if i > start && isDigit != (s[start] >= '0' && s[start] <= '9') {
			runs = append(runs, naturalRun{text: s[start:i], numeric: !isDigit})
			start = i
		}
	}
	if start < len(s) {
		runs = append(runs, naturalRun{text: s[start:], numeric: s[start] >= '0' && s[start] <= '9'})
	}
	return runs
}

// compareDigits compares two digit strings by integer value without
// parsing them, so arbitrarily long runs never overflow.
func compareDigits(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// CompareNatural orders names the way people read them: "img2" before
// "img10". Digit runs compare as integers, other runs compare
// case-insensitively, and a digit run sorts before a text run at the same
// position. Names that compare equal run by run fall back to byte order.
func CompareNatural(a, b string) int {
	ra, rb := splitNaturalRuns(a), splitNaturalRuns(b)
	for i := 0; i < len(ra) && i < len(rb); i++ {
		x, y := ra[i], rb[i]
		switch {
		case x.numeric && y.numeric:
			if c := compareDigits(x.text, y.text); c != 0 {
				return c
			}
		case x.numeric:
			return -1
		case y.numeric:
			return 1
		default:
			if c := strings.Compare(folder.String(x.text), folder.String(y.text)); c != 0 {
				return c
			}
		}
	}
	if len(ra) != len(rb) {
		if len(ra) < len(rb) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
