package cli

import (
	"strings"

	"github.com/campusreg/lostfound/internal/client/api"
)

// filterItems narrows a listing to items whose title or location contains
// the query, case-insensitively. An empty query returns the list unchanged.
func filterItems(list []api.Item, query string) []api.Item {
	query = strings.TrimSpace(query)
	if query == "" {
		return list
	}
	q := strings.ToLower(query)

	filtered := make([]api.Item, 0, len(list))
	for _, it := range list {
		if strings.Contains(strings.ToLower(it.Title), q) ||
			strings.Contains(strings.ToLower(it.Location), q) {
			filtered = append(filtered, it)
		}
	}
	return filtered
}
