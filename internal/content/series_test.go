package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceSkills(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.ReplaceSkills([]Skill{{Name: "Go", Level: 90}}))
	assert.Equal(t, []Skill{{Name: "Go", Level: 90}}, s.Skills())

	err := s.ReplaceSkills([]Skill{{Name: "ok", Level: 10}, {Name: "bad", Level: 101}})
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, []Skill{{Name: "Go", Level: 90}}, s.Skills())
}

func TestReplace_NilStoresEmpty(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.ReplaceMovies(nil))
	s.ReplaceHeroImages(nil)

	assert.NotNil(t, s.Movies())
	assert.Empty(t, s.Movies())
	assert.NotNil(t, s.HeroImages())
	assert.Empty(t, s.HeroImages())
}

func TestReplace_RejectsNegativeValues(t *testing.T) {
	s := newTestStore(t)

	assert.ErrorIs(t, s.ReplaceSteps([]StepCount{{Day: "Mon", Steps: -1}}), ErrValidation)
	assert.ErrorIs(t, s.ReplacePhotoStats([]PhotoCount{{Day: "Mon", Count: -2}}), ErrValidation)
	assert.ErrorIs(t, s.ReplaceRoutine([]RoutineSlot{{Name: "x", Value: -0.5}}), ErrValidation)
	assert.ErrorIs(t, s.ReplaceGameGenres([]GameGenre{{Subject: "x", Hours: -1}}), ErrValidation)
	assert.ErrorIs(t, s.ReplaceMovies([]MovieCount{{Month: "Jan", Series: -1}}), ErrValidation)

	assert.Len(t, s.Steps(), 7)
	assert.Len(t, s.GameGenres(), 6)
}

func TestReplace_CopiesInput(t *testing.T) {
	s := newTestStore(t)
	in := []string{"a", "b"}
	s.ReplaceHeroImages(in)
	in[0] = "z"

	assert.Equal(t, []string{"a", "b"}, s.HeroImages())
}

func TestSummarize(t *testing.T) {
	s := newTestStore(t)
	sum := s.Summarize()

	assert.Equal(t, 472, sum.TotalPhotos)
	assert.Equal(t, 60000, sum.TotalSteps)
	require.Len(t, sum.RecentMovies, 4)
	assert.Equal(t, "Mar", sum.RecentMovies[0].Month)
	require.NotNil(t, sum.TopSkill)
	assert.Equal(t, "Product Vision", sum.TopSkill.Name)

	require.NoError(t, s.ReplaceMovies([]MovieCount{{Month: "Jan", Movies: 1}}))
	require.NoError(t, s.ReplaceSkills(nil))
	sum = s.Summarize()
	assert.Len(t, sum.RecentMovies, 1)
	assert.Nil(t, sum.TopSkill)
}
