package service

import (
	"context"
	"fmt"

	"r6-tracker/internal/api"
	"r6-tracker/internal/auth"
	"r6-tracker/internal/constants"
	"r6-tracker/internal/domain"
)

// resolveAccounts turns a comma-separated subject list into account
// identities. The whole batch is one upstream call; a failed call or an
// unmappable raw platform fails the batch.
func (s *ProfileService) resolveAccounts(ctx context.Context, platform domain.Platform, subjects string, cred *auth.Credential) ([]domain.Account, error) {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	var resp *api.ProfilesResponse
	var err error
	if platform == domain.PlatformID {
		resp, err = s.ubi.ProfilesByID(apiCtx, subjects, cred)
	} else {
		resp, err = s.ubi.ProfilesByUsername(apiCtx, subjects, platform, cred)
	}
	if err != nil {
		return nil, fmt.Errorf("resolve profiles: %w", err)
	}
	if len(resp.Profiles) == 0 {
		return nil, fmt.Errorf("resolve profiles: no profiles found")
	}

	accounts := make([]domain.Account, 0, len(resp.Profiles))
	for _, p := range resp.Profiles {
		pl, err := domain.PlatformFromRaw(p.PlatformType)
		if err != nil {
			return nil, fmt.Errorf("resolve profiles: %w", err)
		}
		accounts = append(accounts, domain.Account{
			Username:  p.NameOnPlatform,
			Platform:  pl,
			ProfileID: p.ProfileID,
			UserID:    p.UserID,
		})
	}
	return accounts, nil
}
