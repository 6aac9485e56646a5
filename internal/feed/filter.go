package feed

import (
	"fmt"
	"strings"
)

type Filter string

const (
	FilterAll      Filter = "All"
	FilterArticles Filter = "Articles"
	FilterMoments  Filter = "Moments"
	FilterCurated  Filter = "Curated"
)

// Filters lists every filter in display order.
var Filters = []Filter{FilterAll, FilterArticles, FilterMoments, FilterCurated}

// ParseFilter matches s case-insensitively; empty means All.
func ParseFilter(s string) (Filter, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return FilterAll, nil
	}
	for _, f := range Filters {
		if strings.EqualFold(s, string(f)) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown feed filter %q", s)
}

// Next cycles through Filters.
func (f Filter) Next() Filter {
	for i, cand := range Filters {
		if cand == f {
			return Filters[(i+1)%len(Filters)]
		}
	}
	return FilterAll
}
