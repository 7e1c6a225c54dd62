package offers

import (
	"regexp"
	"strings"
)

var labelSeparators = regexp.MustCompile(`[\s\-_]+`)

// Canonical maps a free-text category/subcategory/difficulty label to a
// stable comparison key: trimmed, lowercased, separators collapsed to single
// spaces, with a crude de-pluralization so "Necklaces", "necklace " and
// "NECKLACE" all compare equal. The "es" suffix is only stripped after a
// sibilant stem ("boxes" -> "box", "dresses" -> "dress"); anything else just
// loses a bare trailing "s". This is a heuristic, not a stemmer: irregular
// plurals and singular nouns ending in "s" come out wrong, and that is
// accepted.
func Canonical(s string) string {
	str := strings.ToLower(strings.TrimSpace(s))
	str = labelSeparators.ReplaceAllString(str, " ")

	switch {
	case strings.HasSuffix(str, "ies"):
		str = strings.TrimSuffix(str, "ies") + "y"
	case strings.HasSuffix(str, "es") && hasSibilantStem(str):
		str = strings.TrimSuffix(str, "es")
	case strings.HasSuffix(str, "s") && !strings.HasSuffix(str, "ss"):
		str = strings.TrimSuffix(str, "s")
	}
	return str
}

func hasSibilantStem(s string) bool {
	stem := strings.TrimSuffix(s, "es")
	return strings.HasSuffix(stem, "s") ||
		strings.HasSuffix(stem, "x") ||
		strings.HasSuffix(stem, "z") ||
		strings.HasSuffix(stem, "ch") ||
		strings.HasSuffix(stem, "sh")
}
