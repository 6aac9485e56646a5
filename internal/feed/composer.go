package feed

import (
	"slices"
	"time"

	"lumina/internal/content"
)

// PageSize is the number of items one page of the feed shows.
const PageSize = 12

// Collections is the part of the store the feed reads.
type Collections struct {
	Articles []content.Article
	Moments  []content.Moment
	Shares   []content.ShareItem
}

// Source is satisfied by *content.Store.
type Source interface {
	Articles() []content.Article
	Moments() []content.Moment
	Shares() []content.ShareItem
}

// Snapshot reads the three feed collections from src.
func Snapshot(src Source) Collections {
	return Collections{
		Articles: src.Articles(),
		Moments:  src.Moments(),
		Shares:   src.Shares(),
	}
}

// Composer builds feeds. Now anchors relative date labels such as
// "2 hours ago"; nil means time.Now.
type Composer struct {
	Now func() time.Time
}

func (c Composer) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// Compose returns the feed for filter. Single-kind filters keep store order.
// All interleaves the three kinds newest first; items with equal or
// unreadable dates keep the order articles, moments, shares, and unreadable
// dates go last. The result is the same for the same input.
func (c Composer) Compose(filter Filter, in Collections) []Item {
	switch filter {
	case FilterArticles:
		return articleItems(in.Articles)
	case FilterMoments:
		return momentItems(in.Moments)
	case FilterCurated:
		return shareItems(in.Shares)
	}

	items := make([]Item, 0, len(in.Articles)+len(in.Moments)+len(in.Shares))
	items = append(items, articleItems(in.Articles)...)
	items = append(items, momentItems(in.Moments)...)
	items = append(items, shareItems(in.Shares)...)

	ref := c.now()
	type keyed struct {
		item  Item
		at    time.Time
		dated bool
	}
	ks := make([]keyed, len(items))
	for i, it := range items {
		at, ok := parseLabel(it.DateLabel(), ref)
		ks[i] = keyed{item: it, at: at, dated: ok}
	}
	slices.SortStableFunc(ks, func(a, b keyed) int {
		switch {
		case a.dated && !b.dated:
			return -1
		case !a.dated && b.dated:
			return 1
		case !a.dated:
			return 0
		}
		return b.at.Compare(a.at)
	})
	for i := range ks {
		items[i] = ks[i].item
	}
	return items
}

// VisibleSlice returns the first visible items, clamped to the feed length,
// and whether more remain.
func VisibleSlice(items []Item, visible int) ([]Item, bool) {
	n := min(max(visible, 0), len(items))
	return items[:n], visible < len(items)
}

func articleItems(list []content.Article) []Item {
	out := make([]Item, 0, len(list))
	for _, a := range list {
		out = append(out, ArticleItem(a))
	}
	return out
}

func momentItems(list []content.Moment) []Item {
	out := make([]Item, 0, len(list))
	for _, m := range list {
		out = append(out, MomentItem(m))
	}
	return out
}

func shareItems(list []content.ShareItem) []Item {
	out := make([]Item, 0, len(list))
	for _, s := range list {
		out = append(out, ShareItem(s))
	}
	return out
}
