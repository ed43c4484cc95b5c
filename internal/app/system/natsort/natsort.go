// Package natsort sorts display strings the way a person expects: locale
// aware, case and diacritic insensitive, with embedded numbers compared by
// value ("User 9" before "User 10"). Byte-wise ordering misplaces accented
// names, so rosters must never fall back to plain string comparison.
package natsort

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func newCollator() *collate.Collator {
	return collate.New(language.Und, collate.Numeric, collate.Loose)
}

// SortBy stable-sorts items by the collation order of key(item).
//
// A fresh collator is built per call: collators carry internal buffers and
// are not safe for concurrent use.
func SortBy[T any](items []T, key func(T) string) {
	c := newCollator()
	sort.SliceStable(items, func(i, j int) bool {
		return c.CompareString(key(items[i]), key(items[j])) < 0
	})
}

// Compare returns -1, 0, or +1 per the same collation order SortBy uses.
func Compare(a, b string) int {
	return newCollator().CompareString(a, b)
}
