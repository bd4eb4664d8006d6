package search

import (
	"strings"

	"searchtabs/internal/domain"
)

// Match filters items by case-insensitive substring match of query against
// title and subtitle, then scopes them by tab and visibility. Catalog order is
// preserved. A selected tab whose category is hidden matches nothing.
func Match(items []domain.Item, query string, tab domain.Tab, visible map[domain.Category]bool) []domain.Item {
	lower := strings.ToLower(query)
	scoped, hasScope := tab.Category()
	if !tab.IsAll() && !hasScope {
		return []domain.Item{}
	}

	results := make([]domain.Item, 0, len(items))
	for _, item := range items {
		if !strings.Contains(strings.ToLower(item.Title), lower) &&
			!strings.Contains(strings.ToLower(item.Subtitle), lower) {
			continue
		}
		if !visible[item.Category] {
			continue
		}
		if hasScope && item.Category != scoped {
			continue
		}
		results = append(results, item)
	}
	return results
}
