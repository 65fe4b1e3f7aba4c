package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankFromInt(t *testing.T) {
	assert.Equal(t, RankUnranked, RankFromInt(0))
	assert.Equal(t, Rank("copper v"), RankFromInt(1))
	assert.Equal(t, Rank("copper i"), RankFromInt(5))
	assert.Equal(t, Rank("diamond i"), RankFromInt(35))
	assert.Equal(t, RankChampion, RankFromInt(36))

	assert.Equal(t, RankUnranked, RankFromInt(-1))
	assert.Equal(t, RankUnranked, RankFromInt(37))
}

func TestRankRoundTrip(t *testing.T) {
	for code := 1; code <= 35; code++ {
		r := RankFromInt(code)
		assert.Equal(t, r, r.Next().Previous(), "code %d", code)
	}
}

func TestRankBoundaries(t *testing.T) {
	assert.Equal(t, RankUnranked, RankUnranked.Previous())
	assert.Equal(t, RankChampion, RankChampion.Next())
	assert.Equal(t, Rank("copper v"), RankUnranked.Next())
	assert.Equal(t, Rank("diamond i"), RankChampion.Previous())
}

func TestNextRankPoints(t *testing.T) {
	assert.Equal(t, 1100, NextRankPoints(0))
	assert.Equal(t, 1100, NextRankPoints(1000))
	assert.Equal(t, 1200, NextRankPoints(1100))
	assert.Equal(t, 1200, NextRankPoints(1150))
	assert.Equal(t, 4400, NextRankPoints(4350))
	assert.Equal(t, 4400, NextRankPoints(4400))
	assert.Equal(t, 4750, NextRankPoints(4750))
}

func TestRankPointProgress(t *testing.T) {
	assert.Equal(t, 0.0, RankPointProgress(1100))
	assert.Equal(t, 0.45, RankPointProgress(2345))
	assert.Equal(t, 1.00, RankPointProgress(4400))
	assert.Equal(t, 1.00, RankPointProgress(5000))
}
