package service

import (
	"context"

	"r6-tracker/internal/api"
	"r6-tracker/internal/auth"
	"r6-tracker/internal/constants"
	"r6-tracker/internal/domain"
)

// fetchSeason fetches current-season statistics for one platform family
// in batched calls of up to 50 user ids, and returns the merged records
// keyed by profile id. A failed batch degrades only its own accounts.
func (s *ProfileService) fetchSeason(ctx context.Context, family domain.PlatformFamily, accounts []domain.Account, cred *auth.Credential) map[string]*domain.Season {
	byUserID := make(map[string]domain.Account, len(accounts))
	userIDs := make([]string, 0, len(accounts))
	for _, acc := range accounts {
		byUserID[acc.UserID] = acc
		userIDs = append(userIDs, acc.UserID)
	}

	result := make(map[string]*domain.Season)
	for start := 0; start < len(userIDs); start += constants.SeasonBatchSize {
		end := min(start+constants.SeasonBatchSize, len(userIDs))

		apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
		resp, err := s.ubi.SeasonProfiles(apiCtx, userIDs[start:end], cred)
		cancel()
		if err != nil {
			s.logger.Error().Err(err).Str("family", string(family)).Msg("season fetch failed")
			continue
		}

		applySeasonResponse(result, resp, family, byUserID)
	}
	return result
}

// applySeasonResponse walks the family → board → player grouping of one
// skill response. The upstream mixes both families in one payload, so
// entries from the wrong family are discarded even when they name a
// requested player. Only the ranked and casual boards map; event and
// warmup boards are ignored.
func applySeasonResponse(result map[string]*domain.Season, resp *api.SeasonResponse, family domain.PlatformFamily, byUserID map[string]domain.Account) {
	for _, familyProfiles := range resp.PlatformFamilies {
		if domain.PlatformFamily(familyProfiles.PlatformFamily) != family {
			continue
		}

		for _, board := range familyProfiles.Boards {
			for _, fullProfile := range board.FullProfiles {
				acc, ok := byUserID[fullProfile.Profile.ID]
				if !ok || acc.Platform.Family() != family {
					continue
				}

				season := result[acc.ProfileID]
				if season == nil {
					season = &domain.Season{}
					result[acc.ProfileID] = season
				}

				switch board.BoardID {
				case "ranked":
					season.Ranked = rankedFromSeasonProfile(fullProfile)
				case "casual":
					season.Casual = casualFromSeasonProfile(fullProfile)
				}
			}
		}
	}
}

func rankedFromSeasonProfile(fullProfile api.SeasonFullProfile) *domain.SeasonRankedStats {
	rank := domain.RankFromInt(fullProfile.Profile.Rank)
	maxRank := domain.RankFromInt(fullProfile.Profile.MaxRank)
	stats := fullProfile.SeasonStatistics
	outcomes := stats.MatchOutcomes

	return &domain.SeasonRankedStats{
		Abandons:           outcomes.Abandons,
		ChampionNumber:     fullProfile.Profile.TopRankPosition,
		Deaths:             stats.Deaths,
		KDRatio:            domain.Ratio(float64(stats.Kills), float64(stats.Deaths)),
		Kills:              stats.Kills,
		Losses:             outcomes.Losses,
		MaxRank:            maxRank,
		MaxRankPoints:      fullProfile.Profile.MaxRankPoints,
		NextRank:           rank.Next(),
		NextRankByMaxRank:  maxRank.Next(),
		NextRankRankPoints: domain.NextRankPoints(fullProfile.Profile.RankPoints),
		PreviousRank:       rank.Previous(),
		Rank:               rank,
		RankPointProgress:  domain.RankPointProgress(fullProfile.Profile.RankPoints),
		RankPoints:         fullProfile.Profile.RankPoints,
		WinPercent:         domain.Percent(float64(outcomes.Wins), float64(outcomes.Losses)),
		Wins:               outcomes.Wins,
	}
}

func casualFromSeasonProfile(fullProfile api.SeasonFullProfile) *domain.SeasonCasualStats {
	stats := fullProfile.SeasonStatistics
	outcomes := stats.MatchOutcomes

	return &domain.SeasonCasualStats{
		Abandons:   outcomes.Abandons,
		Deaths:     stats.Deaths,
		KDRatio:    domain.Ratio(float64(stats.Kills), float64(stats.Deaths)),
		Kills:      stats.Kills,
		Losses:     outcomes.Losses,
		WinPercent: domain.Percent(float64(outcomes.Wins), float64(outcomes.Losses)),
		Wins:       outcomes.Wins,
	}
}
