package service

import (
	"context"
	"math"

	"r6-tracker/internal/api"
	"r6-tracker/internal/auth"
	"r6-tracker/internal/constants"
	"r6-tracker/internal/domain"
)

// fetchLifetime returns one account's lifetime aggregates, or nil when
// the fetch fails.
func (s *ProfileService) fetchLifetime(ctx context.Context, acc domain.Account, cred *auth.Credential) *domain.Lifetime {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	resp, err := s.ubi.SummaryStats(apiCtx, acc.UserID, acc.Platform, s.seasonCodes, cred)
	if err != nil {
		s.logger.Error().Err(err).Str("profile_id", acc.ProfileID).Msg("lifetime fetch failed")
		return nil
	}
	return normalizeLifetime(resp, acc.Platform)
}

// normalizeLifetime sums every per-season summary entry into one running
// total per game-mode bucket. Each bucket sources only its own gamemode's
// entries; ratios are recomputed once after all entries are summed.
func normalizeLifetime(resp *api.PlayerStatsResponse, platform domain.Platform) *domain.Lifetime {
	lifetime := &domain.Lifetime{}

	for _, profileData := range resp.ProfileData {
		platformStats := profileData.Platforms.ByName(platform.StatsName())
		if platformStats == nil {
			continue
		}

		accumulateLifetime(&lifetime.Overall, platformStats.GameModes.All)
		accumulateLifetime(&lifetime.Casual, platformStats.GameModes.Casual)
		accumulateLifetime(&lifetime.Ranked, platformStats.GameModes.Ranked)
		accumulateLifetime(&lifetime.Unranked, platformStats.GameModes.Unranked)
	}

	finalizeLifetime(&lifetime.Overall)
	finalizeLifetime(&lifetime.Casual)
	finalizeLifetime(&lifetime.Ranked)
	finalizeLifetime(&lifetime.Unranked)

	return lifetime
}

func accumulateLifetime(dst *domain.LifetimeStats, mode *api.GameMode) {
	if mode == nil {
		return
	}
	for _, entry := range mode.TeamRoles.All {
		dst.Aces += int(math.Round(entry.RoundsWithAnAce.Value * float64(entry.RoundsPlayed)))
		dst.Assists += entry.Assists
		dst.Clutches += int(math.Round(entry.RoundsWithClutch.Value * float64(entry.RoundsPlayed)))
		dst.Deaths += entry.Death
		dst.Headshots += entry.Headshots
		dst.Kills += entry.Kills
		dst.KillTrades += entry.Trades
		dst.Losses += entry.MatchesLost
		dst.MinutesPlayed += entry.MinutesPlayed
		dst.Revives += entry.Revives
		dst.TeamKills += entry.TeamKills
		dst.Wins += entry.MatchesWon
	}
}

func finalizeLifetime(dst *domain.LifetimeStats) {
	dst.KDRatio = domain.Ratio(float64(dst.Kills), float64(dst.Deaths))
	dst.WinPercent = domain.Percent(float64(dst.Wins), float64(dst.Losses))
}
