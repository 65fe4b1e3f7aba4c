package domain

// Rank is one of the 37 named ranked tiers, unranked included.
type Rank string

const (
	RankUnranked Rank = "unranked"
	RankChampion Rank = "champion"
)

// rankTable is the total order of ranked tiers. Index is the integer rank
// code Ubisoft reports: 0 is unranked, 36 is champion, with seven metal
// tiers of five sub-tiers in between.
var rankTable = [37]Rank{
	RankUnranked,
	"copper v", "copper iv", "copper iii", "copper ii", "copper i",
	"bronze v", "bronze iv", "bronze iii", "bronze ii", "bronze i",
	"silver v", "silver iv", "silver iii", "silver ii", "silver i",
	"gold v", "gold iv", "gold iii", "gold ii", "gold i",
	"platinum v", "platinum iv", "platinum iii", "platinum ii", "platinum i",
	"emerald v", "emerald iv", "emerald iii", "emerald ii", "emerald i",
	"diamond v", "diamond iv", "diamond iii", "diamond ii", "diamond i",
	RankChampion,
}

var rankIndex = func() map[Rank]int {
	m := make(map[Rank]int, len(rankTable))
	for i, r := range rankTable {
		m[r] = i
	}
	return m
}()

// RankFromInt translates an integer rank code to its named rank. Codes
// outside the table map to unranked.
func RankFromInt(code int) Rank {
	if code < 0 || code >= len(rankTable) {
		return RankUnranked
	}
	return rankTable[code]
}

// Next returns the rank one tier above. Champion has no next rank and
// returns itself.
func (r Rank) Next() Rank {
	i, ok := rankIndex[r]
	if !ok || i+1 >= len(rankTable) {
		return r
	}
	return rankTable[i+1]
}

// Previous returns the rank one tier below. Unranked has no previous rank
// and returns itself.
func (r Rank) Previous() Rank {
	i, ok := rankIndex[r]
	if !ok || i == 0 {
		return r
	}
	return rankTable[i-1]
}

const (
	firstRankThreshold = 1100
	maxRankThreshold   = 4400
)

// NextRankPoints returns the rank-point threshold of the next tier, in
// 100-point steps from 1100 up to 4400. At or above 4400 there is no next
// tier and the input is returned unchanged.
func NextRankPoints(points int) int {
	if points >= maxRankThreshold {
		return points
	}
	next := points/100*100 + 100
	if next < firstRankThreshold {
		next = firstRankThreshold
	}
	return next
}

// RankPointProgress returns the fraction of progress toward the next
// 100-point threshold, or 1.00 at or above the top threshold.
func RankPointProgress(points int) float64 {
	if points >= maxRankThreshold {
		return 1.00
	}
	return float64(points%100) / 100
}
