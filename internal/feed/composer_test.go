package feed

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumina/internal/content"
)

var refTime = time.Date(2023, time.November, 15, 9, 30, 0, 0, time.UTC)

func seededStore(t *testing.T) *content.Store {
	t.Helper()
	seed, err := content.DefaultSeed()
	require.NoError(t, err)
	return content.NewStore(seed)
}

func testComposer() Composer {
	return Composer{Now: func() time.Time { return refTime }}
}

func ids(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID())
	}
	return out
}

func TestCompose_SingleKindKeepsStoreOrder(t *testing.T) {
	s := seededStore(t)
	c := testComposer()
	in := Snapshot(s)

	articles := c.Compose(FilterArticles, in)
	require.Len(t, articles, 7)
	assert.Equal(t, []string{"1", "2", "3", "5", "6", "8", "9"}, ids(articles))
	for _, it := range articles {
		assert.Equal(t, content.KindArticle, it.Kind)
		assert.NotNil(t, it.Article)
	}

	assert.Equal(t, []string{"m1", "m2", "m3", "m4"}, ids(c.Compose(FilterMoments, in)))
	assert.Equal(t, []string{"s1", "s2", "s3"}, ids(c.Compose(FilterCurated, in)))
}

func TestCompose_ArticlesScenarioClampsSlice(t *testing.T) {
	s := seededStore(t)
	full := testComposer().Compose(FilterArticles, Snapshot(s))

	shown, hasMore := VisibleSlice(full, PageSize)
	assert.Len(t, shown, 7)
	assert.False(t, hasMore)
}

func TestCompose_AllIsChronologicalAndStable(t *testing.T) {
	s := seededStore(t)
	c := testComposer()

	want := []string{"m1", "s1", "m2", "9", "s2", "m3", "8", "s3", "m4", "6", "5", "3", "2", "1"}
	first := c.Compose(FilterAll, Snapshot(s))
	if diff := cmp.Diff(want, ids(first)); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}

	for range 5 {
		assert.Equal(t, ids(first), ids(c.Compose(FilterAll, Snapshot(s))))
	}
}

func TestCompose_UndatedItemsGoLast(t *testing.T) {
	in := Collections{
		Articles: []content.Article{{ID: "a", Date: "someday"}, {ID: "b", Date: "Oct 1, 2023"}},
		Moments:  []content.Moment{{ID: "m", Date: ""}},
		Shares:   []content.ShareItem{{ID: "s", Date: "Just now"}},
	}
	got := testComposer().Compose(FilterAll, in)
	assert.Equal(t, []string{"s", "b", "a", "m"}, ids(got))
}

func TestCompose_EmptyCollections(t *testing.T) {
	got := testComposer().Compose(FilterAll, Collections{})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCompose_DoesNotMutateStore(t *testing.T) {
	s := seededStore(t)
	rev := s.Revision()
	before := s.Articles()

	_ = testComposer().Compose(FilterAll, Snapshot(s))

	assert.Equal(t, rev, s.Revision())
	assert.Equal(t, before, s.Articles())
}

func TestVisibleSlice(t *testing.T) {
	items := make([]Item, 30)
	for i := range items {
		items[i] = MomentItem(content.Moment{ID: string(rune('a' + i))})
	}

	shown, more := VisibleSlice(items, 12)
	assert.Len(t, shown, 12)
	assert.True(t, more)

	shown, more = VisibleSlice(items, 30)
	assert.Len(t, shown, 30)
	assert.False(t, more)

	shown, more = VisibleSlice(items, -1)
	assert.Empty(t, shown)
	assert.True(t, more)
}

func TestItem_MarshalJSON(t *testing.T) {
	b, err := ShareItem(content.ShareItem{ID: "s1", Title: "T", URL: "u", Domain: "d"}).MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"kind":"share","record":{"id":"s1","title":"T","description":"","url":"u","domain":"d","date":"","tags":null,"likes":0}}`,
		string(b))
}
