package server

import (
	"fmt"
	"regexp"
	"strings"

	"r6-tracker/internal/apierrors"
	"r6-tracker/internal/constants"
	"r6-tracker/internal/domain"

	"github.com/google/uuid"
)

// Username character sets differ per platform: Ubisoft names allow dots,
// PSN names do not, Xbox gamertags may contain spaces.
var usernamePatterns = map[domain.Platform]*regexp.Regexp{
	domain.PlatformPC:   regexp.MustCompile(`^[a-zA-Z0-9\-_.]+$`),
	domain.PlatformPSN:  regexp.MustCompile(`^[a-zA-Z0-9\-_]+$`),
	domain.PlatformXbox: regexp.MustCompile(`^[a-zA-Z0-9\-_ ]+$`),
}

func validateSubjects(platform domain.Platform, subjects string) *apierrors.APIError {
	parts := strings.Split(subjects, ",")
	if len(parts) > constants.MaxSubjectsPerRequest {
		return apierrors.BadRequest(fmt.Sprintf("A maximum of %d profiles may be requested at once.", constants.MaxSubjectsPerRequest))
	}

	if platform == domain.PlatformID {
		for _, id := range parts {
			if !guidIsValid(id) {
				return apierrors.BadRequest("Profile ID(s) do not conform to the GUID format.")
			}
		}
		return nil
	}

	pattern := usernamePatterns[platform]
	for _, name := range parts {
		if !pattern.MatchString(name) {
			return apierrors.BadRequest("Username contains invalid characters.")
		}
	}
	return nil
}

// guidIsValid accepts only the canonical 8-4-4-4-12 text form.
func guidIsValid(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}
