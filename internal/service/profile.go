package service

import (
	"context"
	"fmt"
	"time"

	"r6-tracker/internal/api"
	"r6-tracker/internal/auth"
	"r6-tracker/internal/config"
	"r6-tracker/internal/constants"
	"r6-tracker/internal/domain"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ubiAPI is the slice of the Ubisoft client the aggregation needs.
type ubiAPI interface {
	ProfilesByUsername(ctx context.Context, usernames string, platform domain.Platform, cred *auth.Credential) (*api.ProfilesResponse, error)
	ProfilesByID(ctx context.Context, profileIDs string, cred *auth.Credential) (*api.ProfilesResponse, error)
	Level(ctx context.Context, userID string, cred *auth.Credential) (*api.LevelResponse, error)
	OperatorStats(ctx context.Context, userID string, platform domain.Platform, seasonCodes string, cred *auth.Credential) (*api.PlayerStatsResponse, error)
	SummaryStats(ctx context.Context, userID string, platform domain.Platform, seasonCodes string, cred *auth.Credential) (*api.PlayerStatsResponse, error)
	SeasonProfiles(ctx context.Context, userIDs []string, cred *auth.Credential) (*api.SeasonResponse, error)
}

// ProfileService aggregates the level, operator, lifetime and season
// resources into unified profiles.
type ProfileService struct {
	ubi         ubiAPI
	creds       auth.Supplier
	seasonCodes string
	logger      zerolog.Logger
}

func NewProfileService(ubi *api.UbiClient, creds *auth.Manager, cfg *config.Config, logger zerolog.Logger) *ProfileService {
	return &ProfileService{
		ubi:         ubi,
		creds:       creds,
		seasonCodes: AllSeasonCodes(cfg.CurrentSeason),
		logger:      logger,
	}
}

// GetFullProfiles resolves the requested subjects and fans out every
// per-endpoint fetch, then merges the results keyed by profile id.
//
// Missing credentials and identity-resolution failures are fatal: nothing
// downstream has valid keys without them. Every other fetch failure only
// degrades its own field, so the returned set always carries one entry
// per resolved account.
func (s *ProfileService) GetFullProfiles(ctx context.Context, platform domain.Platform, subjects string) (*domain.FullProfileSet, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	credV2, err := s.creds.Credential(ctx, auth.VersionV2)
	if err != nil {
		return nil, fmt.Errorf("v2 credential: %w", err)
	}
	credV3, err := s.creds.Credential(ctx, auth.VersionV3)
	if err != nil {
		return nil, fmt.Errorf("v3 credential: %w", err)
	}

	accounts, err := s.resolveAccounts(ctx, platform, subjects, credV2)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int("accounts", len(accounts)).
		Str("platform", string(platform)).
		Msg("aggregating full profiles")

	levels := make([]int, len(accounts))
	operators := make([]*domain.Operators, len(accounts))
	lifetimes := make([]*domain.Lifetime, len(accounts))

	families := make(map[domain.PlatformFamily][]domain.Account)
	for _, acc := range accounts {
		families[acc.Platform.Family()] = append(families[acc.Platform.Family()], acc)
	}
	famList := make([]domain.PlatformFamily, 0, len(families))
	for fam := range families {
		famList = append(famList, fam)
	}
	seasonMaps := make([]map[string]*domain.Season, len(famList))

	// No ordering between fetches; each goroutine writes only its own
	// slot. Fetch failures degrade to the zero value and never abort
	// the group.
	g := new(errgroup.Group)
	for i, acc := range accounts {
		i, acc := i, acc
		g.Go(func() error {
			levels[i] = s.fetchLevel(ctx, acc, credV3)
			return nil
		})
		g.Go(func() error {
			operators[i] = s.fetchOperators(ctx, acc, credV2)
			return nil
		})
		g.Go(func() error {
			lifetimes[i] = s.fetchLifetime(ctx, acc, credV2)
			return nil
		})
	}
	for j, fam := range famList {
		j, fam := j, fam
		g.Go(func() error {
			seasonMaps[j] = s.fetchSeason(ctx, fam, families[fam], credV3)
			return nil
		})
	}
	_ = g.Wait()

	seasons := make(map[string]*domain.Season)
	for _, m := range seasonMaps {
		for profileID, season := range m {
			seasons[profileID] = season
		}
	}

	now := time.Now().Unix()
	set := &domain.FullProfileSet{
		Code:     200,
		Profiles: make(map[string]*domain.FullProfile, len(accounts)),
	}
	for i, acc := range accounts {
		set.Profiles[acc.ProfileID] = &domain.FullProfile{
			CurrentSeason: seasons[acc.ProfileID],
			Level:         levels[i],
			Lifetime:      lifetimes[i],
			Modified:      now,
			Operators:     operators[i],
			Platform:      acc.Platform.Raw(),
			ProfileID:     acc.ProfileID,
		}
	}

	s.logger.Info().Int("profiles", len(set.Profiles)).Msg("aggregation complete")
	return set, nil
}
