package search

import (
	"log"
	"strings"

	"listselect/internal/domain"
	"listselect/internal/ui/services/catalog"
)

// UpdateQuery stores the raw query. It does not re-filter.
func UpdateQuery(s State, text string) (State, bool) {
	if s.Query == text {
		return s, false
	}
	s.Query = text
	return s, true
}

// Commit filters source with the stored query. Filtering always starts from
// the full source list. An empty query commits nothing; use Reset.
func Commit(s State, source catalog.Catalog) (State, catalog.Catalog, bool) {
	if s.Query == "" {
		return s, catalog.Catalog{}, false
	}

	query := strings.ToLower(s.Query)
	filtered := source.Filter(func(item domain.Item) bool {
		return Matches(item, query)
	})

	log.Printf("Search committed for '%s': %d of %d items", s.Query, filtered.Len(), source.Len())

	s.Committed = query
	s.Filtered = true
	return s, filtered, true
}

// Reset restores the full source list as the active catalog
func Reset(s State, source catalog.Catalog) (State, catalog.Catalog) {
	s.Committed = ""
	s.Filtered = false
	return s, source
}

// Matches reports whether any whitespace-delimited token of the item's
// searchable text starts with query. query must already be lower-cased.
func Matches(item domain.Item, query string) bool {
	for _, token := range strings.Fields(searchText(item)) {
		if strings.HasPrefix(strings.ToLower(token), query) {
			return true
		}
	}
	return false
}

// HighlightPrefix returns the byte length of the prefix of token that
// matches query case-insensitively, or 0 when it does not match. The length
// is measured on token itself, so lower-casing that changes byte width
// never splits a rune.
func HighlightPrefix(token, query string) int {
	lower := strings.ToLower(query)
	if lower == "" {
		return 0
	}
	var b strings.Builder
	for i, r := range token {
		if b.Len() >= len(lower) {
			if b.String() == lower {
				return i
			}
			return 0
		}
		b.WriteString(strings.ToLower(string(r)))
	}
	if b.String() == lower {
		return len(token)
	}
	return 0
}

// searchText is the text a query is matched against: the string of a
// Primitive item, the name of a Labeled one. A Labeled item shown by its
// value alone is never matched.
func searchText(item domain.Item) string {
	switch item.Kind {
	case domain.KindPrimitive:
		return item.Text
	case domain.KindLabeled:
		return item.Name
	}
	return ""
}
