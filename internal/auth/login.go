package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/valyala/fasthttp"
)

const sessionsURL = "https://public-ubiservices.ubi.com/v3/profiles/sessions"

// Login failures that a retry cannot fix.
var (
	ErrAccountNotFound = errors.New("ubisoft account does not exist")
	ErrCaptchaRequired = errors.New("ubisoft login requires a captcha")
	ErrRateLimited     = errors.New("ubisoft login rate limited")
)

// LoginClient logs into a Ubisoft account and produces bearer credentials.
// Each call authenticates against one app id, so a full refresh logs in
// twice, once per credential version.
type LoginClient struct {
	email     string
	password  string
	userAgent string
	client    *fasthttp.Client
}

func NewLoginClient(email, password, userAgent string) *LoginClient {
	return &LoginClient{
		email:     email,
		password:  password,
		userAgent: userAgent,
		client: &fasthttp.Client{
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
	}
}

// Login requests a new session for the given credential version.
func (c *LoginClient) Login(ctx context.Context, v Version) (*Credential, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	basic := base64.StdEncoding.EncodeToString([]byte(c.email + ":" + c.password))

	req.SetRequestURI(sessionsURL)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.Set("Authorization", "Basic "+basic)
	req.Header.Set("Ubi-AppId", v.AppID())
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.SetContentType("application/json")
	req.SetBodyString(`{"rememberMe":true}`)

	var err error
	if deadline, ok := ctx.Deadline(); ok {
		err = c.client.DoDeadline(req, resp, deadline)
	} else {
		err = c.client.Do(req, resp)
	}
	if err != nil {
		return nil, fmt.Errorf("login request: %w", err)
	}

	switch resp.StatusCode() {
	case fasthttp.StatusOK:
	case fasthttp.StatusUnauthorized:
		return nil, ErrAccountNotFound
	case fasthttp.StatusConflict:
		return nil, ErrCaptchaRequired
	case fasthttp.StatusTooManyRequests:
		return nil, ErrRateLimited
	default:
		return nil, fmt.Errorf("login failed: status %d", resp.StatusCode())
	}

	var cred Credential
	if err := json.Unmarshal(resp.Body(), &cred); err != nil {
		return nil, fmt.Errorf("parse login response: %w", err)
	}
	if cred.Ticket == "" {
		return nil, fmt.Errorf("login response missing ticket")
	}
	return &cred, nil
}
