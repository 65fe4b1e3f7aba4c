package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"r6-tracker/internal/domain"
	"r6-tracker/internal/middleware"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAggregator struct {
	set *domain.FullProfileSet
	err error

	gotPlatform domain.Platform
	gotSubjects string
}

func (f *fakeAggregator) GetFullProfiles(ctx context.Context, platform domain.Platform, subjects string) (*domain.FullProfileSet, error) {
	f.gotPlatform = platform
	f.gotSubjects = subjects
	return f.set, f.err
}

func testRouter(agg *fakeAggregator) http.Handler {
	s := &Server{profiles: agg, logger: zerolog.Nop()}
	return NewRouter(s, middleware.NewRateLimiter(1000), zerolog.Nop())
}

func doRequest(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestProfilesSuccess(t *testing.T) {
	agg := &fakeAggregator{
		set: &domain.FullProfileSet{
			Code: 200,
			Profiles: map[string]*domain.FullProfile{
				"p-1": {ProfileID: "p-1", Platform: "uplay", Level: 42, Modified: time.Now().Unix()},
			},
		},
	}

	rec := doRequest(t, testRouter(agg), "/r6/profiles/pc/Player.One")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.PlatformPC, agg.gotPlatform)
	assert.Equal(t, "Player.One", agg.gotSubjects)

	var set domain.FullProfileSet
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &set))
	require.Contains(t, set.Profiles, "p-1")
	assert.Equal(t, 42, set.Profiles["p-1"].Level)
}

func TestProfilesInvalidPlatform(t *testing.T) {
	rec := doRequest(t, testRouter(&fakeAggregator{}), "/r6/profiles/wii/Player")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Incorrect URL path")
}

func TestProfilesInvalidUsername(t *testing.T) {
	rec := doRequest(t, testRouter(&fakeAggregator{}), "/r6/profiles/psn/bad.name!")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid characters")
}

func TestProfilesInvalidGUID(t *testing.T) {
	rec := doRequest(t, testRouter(&fakeAggregator{}), "/r6/profiles/id/not-a-guid")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "GUID format")
}

func TestProfilesValidGUID(t *testing.T) {
	agg := &fakeAggregator{set: &domain.FullProfileSet{Code: 200, Profiles: map[string]*domain.FullProfile{}}}
	rec := doRequest(t, testRouter(agg), "/r6/profiles/id/9a2b3c4d-1e2f-4a5b-8c7d-0e1f2a3b4c5d")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.PlatformID, agg.gotPlatform)
}

func TestProfilesTooManySubjects(t *testing.T) {
	names := strings.Repeat("player,", 50) + "player"
	rec := doRequest(t, testRouter(&fakeAggregator{}), "/r6/profiles/pc/"+names)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "maximum of 50")
}

func TestProfilesAggregationFailure(t *testing.T) {
	agg := &fakeAggregator{err: errors.New("credential absent")}
	rec := doRequest(t, testRouter(agg), "/r6/profiles/pc/Player")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal Server Error")
	// Upstream detail must not leak to clients.
	assert.NotContains(t, rec.Body.String(), "credential")
}

func TestNotFoundRoute(t *testing.T) {
	rec := doRequest(t, testRouter(&fakeAggregator{}), "/r6/unknown")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not found")
}

func TestHealth(t *testing.T) {
	rec := doRequest(t, testRouter(&fakeAggregator{}), "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
}
