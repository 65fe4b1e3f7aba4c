package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"r6-tracker/internal/config"
	"r6-tracker/internal/constants"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-retry"
)

// Manager owns the credential lifecycle: it logs in for both app id
// versions, persists the tickets to disk, and refreshes them on a timer.
// Aggregation calls only see it through the Supplier interface.
type Manager struct {
	store  *FileStore
	login  *LoginClient
	logger zerolog.Logger

	mu    sync.RWMutex
	creds map[Version]*Credential

	done chan struct{}
}

func NewManager(cfg *config.Config, logger zerolog.Logger) *Manager {
	return &Manager{
		store:  NewFileStore(cfg.TokenDir),
		login:  NewLoginClient(cfg.UbiEmail, cfg.UbiPassword, cfg.UserAgent),
		logger: logger,
		creds:  make(map[Version]*Credential),
	}
}

// Credential returns the cached credential of the requested version,
// falling back to the on-disk copy. Missing or expired credentials yield
// ErrCredentialAbsent; the manager does not log in inline, refresh is the
// timer's job.
func (m *Manager) Credential(ctx context.Context, v Version) (*Credential, error) {
	m.mu.RLock()
	cred := m.creds[v]
	m.mu.RUnlock()

	if cred != nil && !cred.Expired(time.Now()) {
		return cred, nil
	}

	cred, err := m.store.Load(v)
	if err != nil || cred.Expired(time.Now()) {
		return nil, fmt.Errorf("%w: version %s", ErrCredentialAbsent, v)
	}

	m.mu.Lock()
	m.creds[v] = cred
	m.mu.Unlock()
	return cred, nil
}

// Refresh logs in for both credential versions, retrying transient
// failures with capped exponential backoff, and persists the results.
func (m *Manager) Refresh(ctx context.Context) error {
	for _, v := range []Version{VersionV2, VersionV3} {
		cred, err := m.loginWithRetry(ctx, v)
		if err != nil {
			return fmt.Errorf("refresh %s credential: %w", v, err)
		}

		if err := m.store.Save(v, cred); err != nil {
			m.logger.Warn().Err(err).Str("version", string(v)).Msg("failed to persist credential")
		}

		m.mu.Lock()
		m.creds[v] = cred
		m.mu.Unlock()

		m.logger.Info().
			Str("version", string(v)).
			Str("expiration", cred.Expiration).
			Msg("credential refreshed")
	}
	return nil
}

func (m *Manager) loginWithRetry(ctx context.Context, v Version) (*Credential, error) {
	backoff := retry.WithMaxRetries(3, retry.NewExponential(2*time.Second))

	var cred *Credential
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		cred, err = m.login.Login(ctx, v)
		if err == nil {
			return nil
		}
		// Account and captcha failures need operator intervention.
		if errors.Is(err, ErrAccountNotFound) || errors.Is(err, ErrCaptchaRequired) {
			return err
		}
		return retry.RetryableError(err)
	})
	if err != nil {
		return nil, err
	}
	return cred, nil
}

// Start performs an initial refresh and begins the periodic re-login
// loop. A failed initial refresh is logged, not fatal: credentials loaded
// from disk may still be usable.
func (m *Manager) Start(ctx context.Context) error {
	if err := m.Refresh(ctx); err != nil {
		m.logger.Error().Err(err).Msg("initial credential refresh failed")
	}

	m.done = make(chan struct{})
	go m.loop()
	return nil
}

func (m *Manager) Stop() {
	if m.done != nil {
		close(m.done)
	}
}

func (m *Manager) loop() {
	ticker := time.NewTicker(constants.TokenRefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), constants.TokenRefreshTimeout)
			if err := m.Refresh(ctx); err != nil {
				m.logger.Error().Err(err).Msg("scheduled credential refresh failed")
			}
			cancel()
		case <-m.done:
			return
		}
	}
}
