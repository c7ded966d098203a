package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"weav-api/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func fakeGoogle(t *testing.T, scope string) *Google {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil || r.Form.Get("code") != "good-code" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"g-access","token_type":"Bearer","expires_in":3600,"scope":"` + scope + `"}`))
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer g-access" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"42","email":"ana@example.com","verified_email":true,"given_name":"Ana","family_name":"Lima","picture":"https://img/ana.png"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	cfg := config.GoogleAPIConfig{ClientID: "cid", ClientSecret: "secret", RedirectURI: "http://localhost/cb"}
	endpoint := oauth2.Endpoint{AuthURL: srv.URL + "/auth", TokenURL: srv.URL + "/token", AuthStyle: oauth2.AuthStyleInParams}
	return newGoogle(cfg, endpoint, srv.URL+"/userinfo")
}

func TestAuthCodeURL(t *testing.T) {
	g := fakeGoogle(t, "")

	u, err := url.Parse(g.AuthCodeURL("st4te"))
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "st4te", q.Get("state"))
	assert.Equal(t, "cid", q.Get("client_id"))
	assert.Equal(t, "offline", q.Get("access_type"))
	assert.Contains(t, q.Get("scope"), ScopeCalendar)
	assert.True(t, g.Configured())
}

func TestExchange(t *testing.T) {
	g := fakeGoogle(t, ScopeEmail+" "+ScopeCalendar)

	info, err := g.Exchange(context.Background(), "good-code")
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", info.Email)
	assert.Equal(t, "Ana", info.GivenName)
	assert.True(t, info.CalendarGranted)
}

func TestExchangeWithoutCalendar(t *testing.T) {
	g := fakeGoogle(t, ScopeEmail)

	info, err := g.Exchange(context.Background(), "good-code")
	require.NoError(t, err)
	assert.False(t, info.CalendarGranted)
}

func TestExchangeBadCode(t *testing.T) {
	g := fakeGoogle(t, ScopeEmail)

	_, err := g.Exchange(context.Background(), "stale")
	assert.Error(t, err)
}

func TestNotConfigured(t *testing.T) {
	assert.False(t, NewGoogle(config.GoogleAPIConfig{ClientID: "x"}).Configured())
}
