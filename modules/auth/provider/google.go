package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"weav-api/core/config"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	ScopeEmail    = "https://www.googleapis.com/auth/userinfo.email"
	ScopeProfile  = "https://www.googleapis.com/auth/userinfo.profile"
	ScopeCalendar = "https://www.googleapis.com/auth/calendar.readonly"

	DefaultUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
)

// UserInfo is the Google profile of the signed-in account.
type UserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`

	// CalendarGranted is set when the consent included calendar read access.
	CalendarGranted bool `json:"-"`
}

type IdentityProvider interface {
	Configured() bool
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*UserInfo, error)
}

type Google struct {
	oauth       *oauth2.Config
	userInfoURL string
}

func NewGoogle(cfg config.GoogleAPIConfig) *Google {
	return newGoogle(cfg, google.Endpoint, DefaultUserInfoURL)
}

func newGoogle(cfg config.GoogleAPIConfig, endpoint oauth2.Endpoint, userInfoURL string) *Google {
	return &Google{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       []string{ScopeEmail, ScopeProfile, ScopeCalendar},
			Endpoint:     endpoint,
		},
		userInfoURL: userInfoURL,
	}
}

func (g *Google) Configured() bool {
	return g.oauth.ClientID != "" && g.oauth.ClientSecret != "" && g.oauth.RedirectURL != ""
}

func (g *Google) AuthCodeURL(state string) string {
	return g.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// Exchange trades the authorization code for a token and fetches the profile with it.
func (g *Google) Exchange(ctx context.Context, code string) (*UserInfo, error) {
	token, err := g.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("google: exchange code: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.userInfoURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := g.oauth.Client(ctx, token).Do(req)
	if err != nil {
		return nil, fmt.Errorf("google: userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("google: userinfo status %d: %s", resp.StatusCode, string(body))
	}

	var info UserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("google: decode userinfo: %w", err)
	}

	if scope, ok := token.Extra("scope").(string); ok {
		info.CalendarGranted = strings.Contains(scope, ScopeCalendar)
	}
	return &info, nil
}
