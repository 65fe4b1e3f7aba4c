package service

import (
	"context"
	"math"
	"strings"

	"r6-tracker/internal/api"
	"r6-tracker/internal/auth"
	"r6-tracker/internal/constants"
	"r6-tracker/internal/domain"
)

// fetchOperators returns one account's per-operator statistics across all
// game modes, or nil when the fetch fails.
func (s *ProfileService) fetchOperators(ctx context.Context, acc domain.Account, cred *auth.Credential) *domain.Operators {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	resp, err := s.ubi.OperatorStats(apiCtx, acc.UserID, acc.Platform, s.seasonCodes, cred)
	if err != nil {
		s.logger.Error().Err(err).Str("profile_id", acc.ProfileID).Msg("operators fetch failed")
		return nil
	}
	return normalizeOperators(resp, acc.Platform)
}

// normalizeOperators flattens the playerstats operators view into the
// per-mode, per-role operator maps. An account with no data for the
// queried platform yields the empty default buckets, not a failure.
func normalizeOperators(resp *api.PlayerStatsResponse, platform domain.Platform) *domain.Operators {
	ops := &domain.Operators{
		Casual:   emptyGamemode(),
		Overall:  emptyGamemode(),
		Ranked:   emptyGamemode(),
		Unranked: emptyGamemode(),
	}

	for _, profileData := range resp.ProfileData {
		platformStats := profileData.Platforms.ByName(platform.StatsName())
		if platformStats == nil {
			continue
		}

		collectGamemode(&ops.Overall, platformStats.GameModes.All)
		collectGamemode(&ops.Casual, platformStats.GameModes.Casual)
		collectGamemode(&ops.Ranked, platformStats.GameModes.Ranked)
		collectGamemode(&ops.Unranked, platformStats.GameModes.Unranked)
	}

	return ops
}

func emptyGamemode() domain.OperatorsGamemode {
	return domain.OperatorsGamemode{
		Attackers: make(map[string]domain.OperatorStats),
		Defenders: make(map[string]domain.OperatorStats),
	}
}

func collectGamemode(dst *domain.OperatorsGamemode, mode *api.GameMode) {
	if mode == nil {
		return
	}
	for _, entry := range mode.TeamRoles.Attackers() {
		stats := operatorFromEntry(entry)
		dst.Attackers[stats.Operator] = stats
	}
	for _, entry := range mode.TeamRoles.Defenders() {
		stats := operatorFromEntry(entry)
		dst.Defenders[stats.Operator] = stats
	}
}

// operatorFromEntry derives one operator's stats. Ace and clutch counts
// are reported upstream as per-round rates, so the count is the rate
// scaled by rounds played, rounded.
func operatorFromEntry(entry api.StatsEntry) domain.OperatorStats {
	aces := int(math.Round(entry.RoundsWithAnAce.Value * float64(entry.RoundsPlayed)))
	clutches := int(math.Round(entry.RoundsWithClutch.Value * float64(entry.RoundsPlayed)))

	return domain.OperatorStats{
		Aces:          aces,
		Clutches:      clutches,
		Deaths:        entry.Death,
		KDRatio:       domain.Ratio(float64(entry.Kills), float64(entry.Death)),
		Kills:         entry.Kills,
		Losses:        entry.RoundsLost,
		MinutesPlayed: entry.MinutesPlayed,
		Operator:      strings.ToLower(entry.StatsDetail),
		WinPercent:    domain.Percent(float64(entry.RoundsWon), float64(entry.RoundsLost)),
		Wins:          entry.RoundsWon,
	}
}
