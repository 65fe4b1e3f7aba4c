package auth

import (
	"context"
	"errors"
	"time"
)

// Version selects which Ubisoft application a credential was issued for.
// The v2 and v3 app ids are not interchangeable: the datadev and profile
// endpoints want v2, the rewards and skill endpoints want v3.
type Version string

const (
	VersionV2 Version = "v2"
	VersionV3 Version = "v3"
)

const (
	appIDV2 = "3587dcbb-7f81-457c-9781-0e3f29f6f56a"
	appIDV3 = "e3d5ea9e-50bd-43b7-88bf-39794f4e3d40"
)

// AppID returns the Ubi-AppId header value for this credential version.
func (v Version) AppID() string {
	if v == VersionV3 {
		return appIDV3
	}
	return appIDV2
}

// Credential is one opaque bearer ticket with its session and expiry, as
// returned by the Ubisoft sessions endpoint.
type Credential struct {
	Ticket     string `json:"ticket"`
	Expiration string `json:"expiration"`
	SessionID  string `json:"sessionId"`
}

// Expired reports whether the credential's expiration has passed.
// Credentials with an unparseable expiration are treated as expired.
func (c *Credential) Expired(now time.Time) bool {
	exp, err := time.Parse(time.RFC3339, c.Expiration)
	if err != nil {
		return true
	}
	return !now.Before(exp)
}

// ErrCredentialAbsent is returned when no usable credential of the
// requested version exists. The aggregation treats it as fatal.
var ErrCredentialAbsent = errors.New("credential absent")

// Supplier hands out current bearer credentials. The aggregation core only
// consumes this interface; obtaining and refreshing credentials belongs to
// the Manager.
type Supplier interface {
	Credential(ctx context.Context, v Version) (*Credential, error)
}
