package service

import (
	"context"

	"r6-tracker/internal/auth"
	"r6-tracker/internal/constants"
	"r6-tracker/internal/domain"
)

// fetchLevel returns one account's level, or 0 when the fetch fails. A
// missing level never fails the aggregation.
func (s *ProfileService) fetchLevel(ctx context.Context, acc domain.Account, cred *auth.Credential) int {
	apiCtx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	resp, err := s.ubi.Level(apiCtx, acc.UserID, cred)
	if err != nil {
		s.logger.Error().Err(err).Str("profile_id", acc.ProfileID).Msg("level fetch failed")
		return 0
	}
	return resp.Level
}
