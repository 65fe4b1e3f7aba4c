package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"r6-tracker/internal/apierrors"
	"r6-tracker/internal/domain"
	"r6-tracker/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

type profileAggregator interface {
	GetFullProfiles(ctx context.Context, platform domain.Platform, subjects string) (*domain.FullProfileSet, error)
}

type Server struct {
	profiles profileAggregator
	logger   zerolog.Logger
}

func New(profiles *service.ProfileService, logger zerolog.Logger) *Server {
	return &Server{profiles: profiles, logger: logger}
}

// Profiles handles GET /r6/profiles/{platform}/{username}, where username
// is 1-50 comma-separated usernames, or profile ids when platform is id.
func (s *Server) Profiles(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	platform := domain.Platform(strings.ToLower(vars["platform"]))
	subjects := vars["username"]

	switch platform {
	case domain.PlatformID, domain.PlatformPC, domain.PlatformPSN, domain.PlatformXbox:
	default:
		apierrors.Write(w, apierrors.BadRequest(
			"Incorrect URL path. Use /r6/profiles/{PC||PSN||XBOX}/{USERNAME} or /r6/profiles/id/{PROFILE_ID}"))
		return
	}

	if apiErr := validateSubjects(platform, subjects); apiErr != nil {
		apierrors.Write(w, apiErr)
		return
	}

	set, err := s.profiles.GetFullProfiles(r.Context(), platform, subjects)
	if err != nil {
		s.logger.Error().Err(err).Str("platform", string(platform)).Msg("full profile aggregation failed")
		apierrors.Write(w, apierrors.Internal())
		return
	}

	writeJSON(w, http.StatusOK, set)
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) NotFound(w http.ResponseWriter, r *http.Request) {
	apierrors.Write(w, apierrors.NotFound(fmt.Sprintf("%s not found.", r.URL.Path)))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
