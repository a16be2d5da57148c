package naming

import (
	"sort"
	"strings"

	"prodnames/internal/model"
)

// FilterBySeason returns the sorted, de-duplicated titles of the products
// whose tag string contains season, ignoring case.
func FilterBySeason(products []model.Product, season string) []string {
	needle := strings.ToLower(season)
	seen := make(map[string]struct{})
	names := make([]string, 0)

	for _, p := range products {
		if !strings.Contains(strings.ToLower(p.Tags), needle) {
			continue
		}
		if _, ok := seen[p.Title]; ok {
			continue
		}
		seen[p.Title] = struct{}{}
		names = append(names, p.Title)
	}

	sort.Strings(names)
	return names
}
