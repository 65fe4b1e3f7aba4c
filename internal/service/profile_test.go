package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"r6-tracker/internal/api"
	"r6-tracker/internal/auth"
	"r6-tracker/internal/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSupplier struct {
	missing map[auth.Version]bool
}

func (f *fakeSupplier) Credential(ctx context.Context, v auth.Version) (*auth.Credential, error) {
	if f.missing[v] {
		return nil, auth.ErrCredentialAbsent
	}
	return &auth.Credential{Ticket: "t-" + string(v), Expiration: "2030-01-01T00:00:00Z", SessionID: "s"}, nil
}

type fakeUbi struct {
	profiles    *api.ProfilesResponse
	profilesErr error

	levels      map[string]int
	operators   map[string]*api.PlayerStatsResponse
	summaries   map[string]*api.PlayerStatsResponse
	failLevel   map[string]bool
	failOps     map[string]bool
	failSummary map[string]bool
	season      *api.SeasonResponse
	seasonErr   error

	// The orchestrator calls the per-account and per-family fetchers from
	// concurrent goroutines, so call bookkeeping is mutex-guarded.
	mu            sync.Mutex
	seasonCalls   int
	seasonBatch   [][]string
	operatorCalls int
}

func (f *fakeUbi) stats() (operatorCalls, seasonCalls int, seasonBatch [][]string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.operatorCalls, f.seasonCalls, f.seasonBatch
}

func (f *fakeUbi) ProfilesByUsername(ctx context.Context, usernames string, platform domain.Platform, cred *auth.Credential) (*api.ProfilesResponse, error) {
	return f.profiles, f.profilesErr
}

func (f *fakeUbi) ProfilesByID(ctx context.Context, ids string, cred *auth.Credential) (*api.ProfilesResponse, error) {
	return f.profiles, f.profilesErr
}

func (f *fakeUbi) Level(ctx context.Context, userID string, cred *auth.Credential) (*api.LevelResponse, error) {
	if f.failLevel[userID] {
		return nil, errors.New("level unavailable")
	}
	return &api.LevelResponse{Level: f.levels[userID]}, nil
}

func (f *fakeUbi) OperatorStats(ctx context.Context, userID string, platform domain.Platform, seasonCodes string, cred *auth.Credential) (*api.PlayerStatsResponse, error) {
	f.mu.Lock()
	f.operatorCalls++
	f.mu.Unlock()
	if f.failOps[userID] {
		return nil, errors.New("operators unavailable")
	}
	if resp, ok := f.operators[userID]; ok {
		return resp, nil
	}
	return &api.PlayerStatsResponse{}, nil
}

func (f *fakeUbi) SummaryStats(ctx context.Context, userID string, platform domain.Platform, seasonCodes string, cred *auth.Credential) (*api.PlayerStatsResponse, error) {
	if f.failSummary[userID] {
		return nil, errors.New("summary unavailable")
	}
	if resp, ok := f.summaries[userID]; ok {
		return resp, nil
	}
	return &api.PlayerStatsResponse{}, nil
}

func (f *fakeUbi) SeasonProfiles(ctx context.Context, userIDs []string, cred *auth.Credential) (*api.SeasonResponse, error) {
	f.mu.Lock()
	f.seasonCalls++
	f.seasonBatch = append(f.seasonBatch, userIDs)
	f.mu.Unlock()
	if f.seasonErr != nil {
		return nil, f.seasonErr
	}
	if f.season != nil {
		return f.season, nil
	}
	return &api.SeasonResponse{}, nil
}

func newTestService(ubi ubiAPI, creds auth.Supplier) *ProfileService {
	return &ProfileService{
		ubi:         ubi,
		creds:       creds,
		seasonCodes: AllSeasonCodes("Y2S1"),
		logger:      zerolog.Nop(),
	}
}

func pcProfile(n string) api.Profile {
	return api.Profile{ProfileID: "p-" + n, UserID: "u-" + n, PlatformType: "uplay", NameOnPlatform: "player" + n}
}

func TestGetFullProfilesAllFetchesSucceed(t *testing.T) {
	ubi := &fakeUbi{
		profiles: &api.ProfilesResponse{Profiles: []api.Profile{pcProfile("1")}},
		levels:   map[string]int{"u-1": 150},
		operators: map[string]*api.PlayerStatsResponse{
			"u-1": {
				ProfileData: map[string]api.ProfileStats{
					"u-1": {Platforms: api.StatsPlatforms{PC: &api.PlatformStats{
						GameModes: api.GameModes{All: &api.GameMode{TeamRoles: api.TeamRoles{
							AttackerUpper: []api.StatsEntry{operatorEntry("Ash", 10, 5, 6, 4, 10, 0, 0)},
						}}},
					}}},
				},
			},
		},
		summaries: map[string]*api.PlayerStatsResponse{
			"u-1": {
				ProfileData: map[string]api.ProfileStats{
					"u-1": {Platforms: api.StatsPlatforms{PC: &api.PlatformStats{
						GameModes: api.GameModes{All: summaryMode(summaryEntry(30, 10, 6, 4, 20, 0.1))},
					}}},
				},
			},
		},
		season: &api.SeasonResponse{
			PlatformFamilies: []api.SeasonPlatformFamily{{
				PlatformFamily: "pc",
				Boards: []api.SeasonBoard{
					{BoardID: "ranked", FullProfiles: []api.SeasonFullProfile{seasonEntry("u-1", 17, 19, 2345, 100, 50, 30, 20)}},
					{BoardID: "casual", FullProfiles: []api.SeasonFullProfile{seasonEntry("u-1", 0, 0, 0, 10, 10, 5, 5)}},
				},
			}},
		},
	}

	svc := newTestService(ubi, &fakeSupplier{})
	set, err := svc.GetFullProfiles(context.Background(), domain.PlatformPC, "player1")
	require.NoError(t, err)

	require.Len(t, set.Profiles, 1)
	profile := set.Profiles["p-1"]
	require.NotNil(t, profile)

	assert.Equal(t, 200, set.Code)
	assert.Equal(t, 150, profile.Level)
	assert.Equal(t, "uplay", profile.Platform)
	require.NotNil(t, profile.Operators)
	assert.Contains(t, profile.Operators.Overall.Attackers, "ash")
	require.NotNil(t, profile.Lifetime)
	assert.Equal(t, 30, profile.Lifetime.Overall.Kills)
	require.NotNil(t, profile.CurrentSeason)
	require.NotNil(t, profile.CurrentSeason.Ranked)
	require.NotNil(t, profile.CurrentSeason.Casual)
	assert.InDelta(t, time.Now().Unix(), profile.Modified, 5)
}

func TestGetFullProfilesDegradesFailedFields(t *testing.T) {
	ubi := &fakeUbi{
		profiles: &api.ProfilesResponse{Profiles: []api.Profile{pcProfile("1"), pcProfile("2")}},
		levels:   map[string]int{"u-1": 80, "u-2": 90},
		failOps:  map[string]bool{"u-1": true},
		failLevel: map[string]bool{
			"u-2": true,
		},
	}

	svc := newTestService(ubi, &fakeSupplier{})
	set, err := svc.GetFullProfiles(context.Background(), domain.PlatformPC, "player1,player2")
	require.NoError(t, err)

	// Both requested players survive even though fetches failed.
	require.Len(t, set.Profiles, 2)

	p1 := set.Profiles["p-1"]
	require.NotNil(t, p1)
	assert.Nil(t, p1.Operators, "failed operators fetch degrades to nil")
	assert.Equal(t, 80, p1.Level)
	assert.NotNil(t, p1.Lifetime)

	p2 := set.Profiles["p-2"]
	require.NotNil(t, p2)
	assert.Equal(t, 0, p2.Level, "failed level fetch degrades to 0")
	assert.NotNil(t, p2.Operators)
}

func TestGetFullProfilesSeasonBatchedPerFamily(t *testing.T) {
	psn := api.Profile{ProfileID: "p-3", UserID: "u-3", PlatformType: "psn", NameOnPlatform: "player3"}
	xbox := api.Profile{ProfileID: "p-4", UserID: "u-4", PlatformType: "xbl", NameOnPlatform: "player4"}
	ubi := &fakeUbi{
		profiles: &api.ProfilesResponse{Profiles: []api.Profile{pcProfile("1"), psn, xbox}},
		levels:   map[string]int{},
	}

	svc := newTestService(ubi, &fakeSupplier{})
	set, err := svc.GetFullProfiles(context.Background(), domain.PlatformPC, "ignored")
	require.NoError(t, err)
	require.Len(t, set.Profiles, 3)

	operatorCalls, seasonCalls, seasonBatch := ubi.stats()

	// Operators are still fetched once per account, but season stats get
	// one batched call per platform family: pc gets u-1, console gets
	// u-3 and u-4 together.
	assert.Equal(t, 3, operatorCalls)
	assert.Equal(t, 2, seasonCalls)
	var consoleBatch []string
	for _, batch := range seasonBatch {
		if len(batch) == 2 {
			consoleBatch = batch
		}
	}
	assert.ElementsMatch(t, []string{"u-3", "u-4"}, consoleBatch)
}

func TestGetFullProfilesCredentialAbsentIsFatal(t *testing.T) {
	svc := newTestService(&fakeUbi{}, &fakeSupplier{missing: map[auth.Version]bool{auth.VersionV3: true}})

	set, err := svc.GetFullProfiles(context.Background(), domain.PlatformPC, "player1")
	require.Error(t, err)
	assert.ErrorIs(t, err, auth.ErrCredentialAbsent)
	assert.Nil(t, set)
}

func TestGetFullProfilesIdentityFailureIsFatal(t *testing.T) {
	ubi := &fakeUbi{profilesErr: errors.New("upstream 502")}
	svc := newTestService(ubi, &fakeSupplier{})

	set, err := svc.GetFullProfiles(context.Background(), domain.PlatformPC, "player1")
	require.Error(t, err)
	assert.Nil(t, set)
}

func TestGetFullProfilesUnknownRawPlatformIsFatal(t *testing.T) {
	ubi := &fakeUbi{
		profiles: &api.ProfilesResponse{Profiles: []api.Profile{
			{ProfileID: "p-1", UserID: "u-1", PlatformType: "stadia", NameOnPlatform: "player1"},
		}},
	}
	svc := newTestService(ubi, &fakeSupplier{})

	_, err := svc.GetFullProfiles(context.Background(), domain.PlatformPC, "player1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stadia")
}

func TestGetFullProfilesSeasonFailureDegrades(t *testing.T) {
	ubi := &fakeUbi{
		profiles:  &api.ProfilesResponse{Profiles: []api.Profile{pcProfile("1")}},
		levels:    map[string]int{"u-1": 10},
		seasonErr: errors.New("skill endpoint down"),
	}

	svc := newTestService(ubi, &fakeSupplier{})
	set, err := svc.GetFullProfiles(context.Background(), domain.PlatformPC, "player1")
	require.NoError(t, err)

	profile := set.Profiles["p-1"]
	require.NotNil(t, profile)
	assert.Nil(t, profile.CurrentSeason)
	assert.Equal(t, 10, profile.Level)
}
