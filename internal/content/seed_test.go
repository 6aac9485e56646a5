package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSeed_Counts(t *testing.T) {
	seed, err := DefaultSeed()
	require.NoError(t, err)

	assert.Len(t, seed.Articles, 7)
	assert.Len(t, seed.Moments, 4)
	assert.Len(t, seed.Shares, 3)
	assert.Len(t, seed.Projects, 3)
	assert.Len(t, seed.Gallery, 6)
	assert.Len(t, seed.HeroImages, 12)
	assert.Len(t, seed.Skills, 4)
	assert.Len(t, seed.Movies, 6)

	assert.Equal(t, 15, seed.Moments[0].Likes)
	assert.Equal(t, MediaVideo, seed.Gallery[1].Type)
	assert.NotEmpty(t, seed.Gallery[1].Thumbnail)
	require.NotNil(t, seed.Gallery[0].Exif)
	assert.Equal(t, "100", seed.Gallery[0].Exif.ISO)
	assert.Equal(t, 1.5, seed.Routine[3].Value)
}

func TestLoadSeed_RejectsDuplicates(t *testing.T) {
	const doc = `
moments:
  - {id: m1, content: a, date: x, tags: [], likes: 0, comments: []}
  - {id: m1, content: b, date: y, tags: [], likes: 0, comments: []}
`
	_, err := LoadSeed(strings.NewReader(doc))
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "moments")
}

func TestLoadSeed_RejectsUnknownFields(t *testing.T) {
	_, err := LoadSeed(strings.NewReader("articles:\n  - {id: a, bogus: 1}\n"))
	assert.Error(t, err)
}

func TestLoadSeed_Minimal(t *testing.T) {
	seed, err := LoadSeed(strings.NewReader("heroImages: [a.jpg]\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a.jpg"}, seed.HeroImages)
	assert.Empty(t, seed.Articles)
}
