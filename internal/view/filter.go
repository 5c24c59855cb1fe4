package view

import "strings"

// Searchable rows expose the fields free-text search looks at.
type Searchable interface {
	SearchFields() []string
}

// Filter keeps rows where any search field contains term, ignoring case.
// A blank term returns rows unchanged. Relative order is preserved.
func Filter[R Searchable](rows []R, term string) []R {
	q := strings.ToLower(strings.TrimSpace(term))
	if q == "" {
		return rows
	}

	out := make([]R, 0, len(rows))
	for _, r := range rows {
		for _, f := range r.SearchFields() {
			if strings.Contains(strings.ToLower(f), q) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}
