package handler

import (
	"cmp"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"lumina/internal/content"
	"lumina/internal/feed"
	"lumina/internal/i18n"
)

type FeedHandler struct {
	Store    *content.Store
	Composer feed.Composer
	PageSize int
}

type feedResp struct {
	Filter   feed.Filter `json:"filter"`
	Label    string      `json:"label"`
	Items    []feed.Item `json:"items"`
	Visible  int         `json:"visible"`
	Total    int         `json:"total"`
	HasMore  bool        `json:"hasMore"`
	Revision uint64      `json:"revision"`
}

// Feed is stateless: the client passes back visible+pageSize to load more.
func (h *FeedHandler) Feed(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter, err := feed.ParseFilter(q.Get("filter"))
	if err != nil {
		http.Error(w, "invalid filter", http.StatusBadRequest)
		return
	}

	visible := h.pageSize()
	if v := strings.TrimSpace(q.Get("visible")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "invalid visible", http.StatusBadRequest)
			return
		}
		visible = n
	}

	rev := h.Store.Revision()
	items := h.Composer.Compose(filter, feed.Snapshot(h.Store))
	shown, more := feed.VisibleSlice(items, visible)

	t := i18n.For(r.Header.Get("Accept-Language"))
	writeJSON(w, http.StatusOK, feedResp{
		Filter:   filter,
		Label:    t.T(string(filter)),
		Items:    shown,
		Visible:  len(shown),
		Total:    len(items),
		HasMore:  more,
		Revision: rev,
	})
}

func (h *FeedHandler) pageSize() int {
	if h.PageSize > 0 {
		return h.PageSize
	}
	return feed.PageSize
}

type tagDTO struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// Tags counts tags across articles, moments and shares, most used first.
// q filters by prefix, limit caps the result (default 50).
func (h *FeedHandler) Tags(w http.ResponseWriter, r *http.Request) {
	qText := strings.TrimSpace(strings.ToLower(r.URL.Query().Get("q")))

	limit := 50
	if v := strings.TrimSpace(r.URL.Query().Get("limit")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}

	counts := map[string]int{}
	count := func(tags []string) {
		for _, t := range tags {
			t = strings.ToLower(t)
			if strings.HasPrefix(t, qText) {
				counts[t]++
			}
		}
	}
	for _, a := range h.Store.Articles() {
		count(a.Tags)
	}
	for _, m := range h.Store.Moments() {
		count(m.Tags)
	}
	for _, s := range h.Store.Shares() {
		count(s.Tags)
	}

	out := make([]tagDTO, 0, len(counts))
	for t, n := range counts {
		out = append(out, tagDTO{Tag: t, Count: n})
	}
	slices.SortFunc(out, func(a, b tagDTO) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Tag, b.Tag)
	})
	if len(out) > limit {
		out = out[:limit]
	}

	writeJSON(w, http.StatusOK, out)
}
