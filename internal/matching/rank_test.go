package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenslink/lenslink/model"
)

func testPool() []model.Candidate {
	priced := func(id string, price float64, styles ...string) model.Candidate {
		c := candidate(id)
		c.MinProjectBudgetUSD = floatPtr(price)
		c.Styles = styles
		return c
	}

	return []model.Candidate{
		priced("c-wedding", 500, "wedding", "portrait"),
		priced("c-street", 800, "street"),
		priced("c-expensive", 1500, "wedding"),
		candidate("c-bare"),
	}
}

func TestRankExcludesHardFilterFailures(t *testing.T) {
	f := model.QueryFilters{
		BudgetMin: floatPtr(100),
		BudgetMax: floatPtr(1000),
	}

	ranked := Rank(testPool(), f)

	require.Len(t, ranked, 3, "only the over-budget candidate should drop")
	for _, r := range ranked {
		assert.True(t, r.PassesHardFilters)
		assert.NotEqual(t, "c-expensive", r.ID)
	}
}

func TestRankOrdersByScoreDescending(t *testing.T) {
	f := model.QueryFilters{Styles: []string{"wedding", "portrait"}}

	ranked := Rank(testPool(), f)

	require.NotEmpty(t, ranked)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].MatchScore, ranked[i].MatchScore,
			"adjacent pair out of order: %s before %s", ranked[i-1].ID, ranked[i].ID)
	}
	assert.Equal(t, "c-wedding", ranked[0].ID)
}

func TestRankScoresStayInBounds(t *testing.T) {
	filters := []model.QueryFilters{
		{},
		{Styles: []string{"wedding"}},
		{BudgetMin: floatPtr(0), BudgetMax: floatPtr(2000)},
	}

	for _, f := range filters {
		for _, r := range Rank(testPool(), f) {
			assert.GreaterOrEqual(t, r.MatchScore, 0)
			assert.LessOrEqual(t, r.MatchScore, 100)
		}
	}
}

func TestRankBreaksTiesByCreatorID(t *testing.T) {
	// Identical candidates always tie on score.
	a := candidate("b-second")
	b := candidate("a-first")
	c := candidate("c-third")

	ranked := Rank([]model.Candidate{a, b, c}, model.QueryFilters{})

	require.Len(t, ranked, 3)
	assert.Equal(t, "a-first", ranked[0].ID)
	assert.Equal(t, "b-second", ranked[1].ID)
	assert.Equal(t, "c-third", ranked[2].ID)
}

func TestRankIsDeterministic(t *testing.T) {
	pool := testPool()
	f := model.QueryFilters{
		Styles:    []string{"wedding"},
		BudgetMin: floatPtr(100),
		BudgetMax: floatPtr(1000),
	}

	first := Rank(pool, f)
	second := Rank(pool, f)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, first[i].MatchScore, second[i].MatchScore)
	}
}

func TestRankEmptyPool(t *testing.T) {
	ranked := Rank(nil, model.QueryFilters{})
	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)
}
