package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"r6-tracker/internal/auth"
	"r6-tracker/internal/config"
	"r6-tracker/internal/domain"

	"github.com/valyala/fasthttp"
)

const (
	rewardsSpaceID = "0d2ae42d-4c27-4cb7-af6c-2099062302bb"
	statsSpaceID   = "05bfb3f7-6c21-4c42-be1f-97a33fb5cf66"
)

// UbiClient wraps the Ubisoft statistics endpoints. Three hosts are
// involved: the profiles host for identity lookups, the public host for
// level and season skill data, and the datadev host for per-operator and
// summary aggregations.
type UbiClient struct {
	userAgent string
	client    *fasthttp.Client

	// Overridable in tests.
	profilesURL string
	publicURL   string
	statsURL    string
}

func NewUbiClient(cfg *config.Config) *UbiClient {
	return &UbiClient{
		userAgent: cfg.UserAgent,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
		profilesURL: "https://api-ubiservices.ubi.com",
		publicURL:   "https://public-ubiservices.ubi.com",
		statsURL:    "https://prod.datadev.ubisoft.com",
	}
}

// ProfilesByUsername resolves up to 50 comma-separated usernames on one
// platform.
func (c *UbiClient) ProfilesByUsername(ctx context.Context, usernames string, platform domain.Platform, cred *auth.Credential) (*ProfilesResponse, error) {
	url := fmt.Sprintf("%s/v3/profiles?nameOnPlatform=%s&platformType=%s", c.profilesURL, usernames, platform.Raw())
	return doRequest[ProfilesResponse](ctx, c, url, cred, auth.VersionV2, false)
}

// ProfilesByID resolves up to 50 comma-separated profile ids.
func (c *UbiClient) ProfilesByID(ctx context.Context, profileIDs string, cred *auth.Credential) (*ProfilesResponse, error) {
	url := fmt.Sprintf("%s/v3/profiles?profileId=%s", c.profilesURL, profileIDs)
	return doRequest[ProfilesResponse](ctx, c, url, cred, auth.VersionV2, false)
}

// Level fetches one account's level from the rewards profile.
func (c *UbiClient) Level(ctx context.Context, userID string, cred *auth.Credential) (*LevelResponse, error) {
	url := fmt.Sprintf("%s/v1/spaces/%s/title/r6s/rewards/public_profile?profile_id=%s", c.publicURL, rewardsSpaceID, userID)
	return doRequest[LevelResponse](ctx, c, url, cred, auth.VersionV3, true)
}

// OperatorStats fetches the per-operator seasonal aggregation for one
// account across every game mode and both team roles.
func (c *UbiClient) OperatorStats(ctx context.Context, userID string, platform domain.Platform, seasonCodes string, cred *auth.Credential) (*PlayerStatsResponse, error) {
	url := c.playerStatsURL(userID, platform, "operators", "Attacker,Defender", seasonCodes)
	return doRequest[PlayerStatsResponse](ctx, c, url, cred, auth.VersionV2, true)
}

// SummaryStats fetches the per-season summary aggregation for one
// account, with team roles collapsed into the "all" role.
func (c *UbiClient) SummaryStats(ctx context.Context, userID string, platform domain.Platform, seasonCodes string, cred *auth.Credential) (*PlayerStatsResponse, error) {
	url := c.playerStatsURL(userID, platform, "summary", "all", seasonCodes)
	return doRequest[PlayerStatsResponse](ctx, c, url, cred, auth.VersionV2, true)
}

func (c *UbiClient) playerStatsURL(userID string, platform domain.Platform, aggregation, teamRole, seasonCodes string) string {
	return fmt.Sprintf(
		"%s/v1/users/%s/playerstats?spaceId=%s&view=seasonal&aggregation=%s&gameMode=all,ranked,casual,unranked&platform=%s&teamRole=%s&seasons=%s",
		c.statsURL, userID, statsSpaceID, aggregation, platform.StatsName(), teamRole, seasonCodes,
	)
}

// SeasonProfiles fetches current-season skill data for up to 50 user ids
// in one call. The response mixes both platform families; filtering is
// the caller's job.
func (c *UbiClient) SeasonProfiles(ctx context.Context, userIDs []string, cred *auth.Credential) (*SeasonResponse, error) {
	url := fmt.Sprintf(
		"%s/v2/spaces/%s/title/r6s/skill/full_profiles?platform_families=pc,console&profile_ids=%s",
		c.publicURL, rewardsSpaceID, strings.Join(userIDs, ","),
	)
	return doRequest[SeasonResponse](ctx, c, url, cred, auth.VersionV3, true)
}

func doRequest[T any](ctx context.Context, c *UbiClient, url string, cred *auth.Credential, version auth.Version, withSession bool) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Authorization", "ubi_v1 t="+cred.Ticket)
	req.Header.Set("Ubi-AppId", version.AppID())
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Connection", "Keep-Alive")
	if withSession {
		req.Header.Set("Ubi-SessionId", cred.SessionID)
		req.Header.Set("Expiration", cred.Expiration)
	}

	var err error
	if deadline, ok := ctx.Deadline(); ok {
		err = c.client.DoDeadline(req, resp, deadline)
	} else {
		err = c.client.Do(req, resp)
	}
	if err != nil {
		return nil, err
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("ubisoft API error: %d", resp.StatusCode())
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}
