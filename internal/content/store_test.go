package content

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2023, time.November, 15, 9, 30, 0, 0, time.UTC)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	seed, err := DefaultSeed()
	require.NoError(t, err)

	n := 0
	return NewStore(seed,
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("gen-%d", n)
		}),
	)
}

func articleIDs(list []Article) []string {
	out := make([]string, 0, len(list))
	for _, a := range list {
		out = append(out, a.ID)
	}
	return out
}

func momentIDs(list []Moment) []string {
	out := make([]string, 0, len(list))
	for _, m := range list {
		out = append(out, m.ID)
	}
	return out
}

func TestAddArticle_PrependsAndRejectsDuplicate(t *testing.T) {
	s := newTestStore(t)
	before := len(s.Articles())

	require.NoError(t, s.AddArticle(Article{ID: "x", Title: "T"}))
	err := s.AddArticle(Article{ID: "x", Title: "again"})
	require.ErrorIs(t, err, ErrValidation)

	got := s.Articles()
	assert.Len(t, got, before+1)
	assert.Equal(t, "x", got[0].ID)
	assert.Equal(t, "T", got[0].Title)
}

func TestAdd_RejectsEmptyID(t *testing.T) {
	s := newTestStore(t)
	err := s.AddProject(Project{Title: "no id"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAddThenRemove_RestoresCollection(t *testing.T) {
	s := newTestStore(t)
	before := articleIDs(s.Articles())

	require.NoError(t, s.AddArticle(Article{ID: "tmp", Title: "temp"}))
	s.RemoveArticle("tmp")

	if diff := cmp.Diff(before, articleIDs(s.Articles())); diff != "" {
		t.Fatalf("articles changed (-before +after):\n%s", diff)
	}
}

func TestUpdate_ReplacesInPlace(t *testing.T) {
	s := newTestStore(t)
	before := s.Moments()

	edited := before[1]
	edited.Content = "edited"
	edited.Tags = []string{"x"}
	require.NoError(t, s.UpdateMoment(edited))

	after := s.Moments()
	require.Len(t, after, len(before))
	assert.Equal(t, edited, after[1])
	assert.Equal(t, momentIDs(before), momentIDs(after))
}

func TestUpdate_MissingIDReportsNotFound(t *testing.T) {
	s := newTestStore(t)
	rev := s.Revision()

	err := s.UpdateGalleryItem(GalleryItem{ID: "nope"})
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, rev, s.Revision())
}

func TestRemove_UnknownIDIsNoop(t *testing.T) {
	s := newTestStore(t)
	before := s.Moments()
	rev := s.Revision()

	assert.NotPanics(t, func() { s.RemoveMoment("does-not-exist") })

	assert.Equal(t, momentIDs(before), momentIDs(s.Moments()))
	assert.Equal(t, rev, s.Revision())
}

func TestMutation_LeavesOldSnapshotUntouched(t *testing.T) {
	s := newTestStore(t)
	snap := s.Articles()
	first := snap[0]

	s.Like(first.ID, KindArticle)
	require.True(t, s.AddComment(first.ID, KindArticle, "hi", "visitor"))
	require.NoError(t, s.AddArticle(Article{ID: "new"}))

	assert.Equal(t, first, snap[0])
	assert.NotSame(t, &snap[0], &s.Articles()[0])
}

func TestRevision_CountsOnlyEffectiveMutations(t *testing.T) {
	s := newTestStore(t)
	r0 := s.Revision()

	s.Like("m1", KindMoment)
	s.Like("missing", KindMoment)
	s.RemoveShare("missing")
	require.NoError(t, s.AddShare(ShareItem{ID: "s9", URL: "https://go.dev"}))

	assert.Equal(t, r0+2, s.Revision())
}

func TestCRUD_EveryCollection(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.AddProject(Project{ID: "p9", Title: "P"}))
	require.NoError(t, s.UpdateProject(Project{ID: "p9", Title: "P2"}))
	p, ok := s.Project("p9")
	require.True(t, ok)
	assert.Equal(t, "P2", p.Title)
	s.RemoveProject("p9")
	_, ok = s.Project("p9")
	assert.False(t, ok)

	require.NoError(t, s.AddGalleryItem(GalleryItem{ID: "g9", Type: MediaImage, URL: "u"}))
	require.NoError(t, s.UpdateGalleryItem(GalleryItem{ID: "g9", Type: MediaImage, URL: "u2"}))
	g, ok := s.GalleryItem("g9")
	require.True(t, ok)
	assert.Equal(t, "u2", g.URL)
	s.RemoveGalleryItem("g9")
	assert.Equal(t, "g1", s.Gallery()[0].ID)

	require.NoError(t, s.AddShare(ShareItem{ID: "s9", URL: "https://x.io"}))
	require.NoError(t, s.UpdateShare(ShareItem{ID: "s9", URL: "https://y.io", Domain: "x.io"}))
	sh, ok := s.Share("s9")
	require.True(t, ok)
	assert.Equal(t, "x.io", sh.Domain)
	s.RemoveShare("s9")
	assert.Len(t, s.Shares(), 3)
}

func TestAddShare_DerivesDomain(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.AddShare(ShareItem{ID: "s10", URL: "https://example.org/x"}))
	require.NoError(t, s.AddShare(ShareItem{ID: "s11", URL: "https://example.org/x", Domain: "custom"}))

	got, _ := s.Share("s10")
	assert.Equal(t, "example.org", got.Domain)
	got, _ = s.Share("s11")
	assert.Equal(t, "custom", got.Domain)
}

func TestUpdateShare_KeepsDomainWhenBlank(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.AddShare(ShareItem{ID: "s10", URL: "https://example.org/x"}))
	require.NoError(t, s.UpdateShare(ShareItem{ID: "s10", Title: "Moved", URL: "https://other.net/y"}))

	got, ok := s.Share("s10")
	require.True(t, ok)
	assert.Equal(t, "Moved", got.Title)
	assert.Equal(t, "example.org", got.Domain)
}

func TestNewStore_CopiesSeed(t *testing.T) {
	seed, err := DefaultSeed()
	require.NoError(t, err)
	s := NewStore(seed)

	seed.Articles[0].Title = "mutated"
	a, _ := s.Article("1")
	assert.Equal(t, "Sunday Morning Rituals", a.Title)
}

func TestNewStore_EmptySeedHasNonNilCollections(t *testing.T) {
	s := NewStore(Seed{})
	assert.NotNil(t, s.Articles())
	assert.NotNil(t, s.Moments())
	assert.NotNil(t, s.Shares())
	assert.NotNil(t, s.Projects())
	assert.NotNil(t, s.Gallery())
	assert.NotNil(t, s.Skills())
	assert.NotNil(t, s.HeroImages())
	assert.Empty(t, s.Articles())
}
