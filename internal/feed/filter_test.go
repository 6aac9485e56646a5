package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilter(t *testing.T) {
	f, err := ParseFilter("curated")
	require.NoError(t, err)
	assert.Equal(t, FilterCurated, f)

	f, err = ParseFilter("")
	require.NoError(t, err)
	assert.Equal(t, FilterAll, f)

	_, err = ParseFilter("projects")
	assert.Error(t, err)
}

func TestFilterNext(t *testing.T) {
	assert.Equal(t, FilterArticles, FilterAll.Next())
	assert.Equal(t, FilterAll, FilterCurated.Next())
	assert.Equal(t, FilterAll, Filter("bogus").Next())
}
