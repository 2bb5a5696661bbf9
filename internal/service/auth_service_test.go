package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"evalassist-be/internal/dto"
	"evalassist-be/internal/pkg/logger"
	"evalassist-be/pkg/session"
	"evalassist-be/pkg/valtool"

	"github.com/stretchr/testify/assert"
)

func upstreamStub(t *testing.T, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			http.Error(w, "nope", status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"waivUser": map[string]interface{}{
				"meta": map[string]interface{}{"token": "auth-token", "test_token": "test-token"},
				"data": map[string]interface{}{"name": "Jordan Smith", "email": "jordan@example.com", "phone": "555-0100"},
			},
			"waivOrgs": map[string]interface{}{
				"data": []map[string]interface{}{{"name": "Acme Valuations"}},
			},
		})
	}))
}

func newAuthService(upstreamURL string) (IAuthService, *session.Store) {
	store := session.NewStore(time.Minute)
	svc := NewAuthService(valtool.NewClient(upstreamURL), store, "test-secret", time.Minute, logger.Nop{})
	return svc, store
}

func TestLoginCreatesSession(t *testing.T) {
	srv := upstreamStub(t, http.StatusOK)
	defer srv.Close()

	svc, store := newAuthService(srv.URL)
	res, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "jordan@example.com", Password: "pw"})

	assert.NoError(t, err)
	assert.Equal(t, "auth-token", res.AuthToken)
	assert.Equal(t, "test-token", res.TestToken)
	assert.Equal(t, "Jordan Smith", res.UserName)
	assert.Equal(t, []string{"Acme Valuations"}, res.Organizations)
	assert.NotEmpty(t, res.SessionToken)

	// the issued token resolves back to a stored session
	sessionID, err := svc.ParseSessionToken(res.SessionToken)
	assert.NoError(t, err)
	sess, ok := store.Get(sessionID)
	assert.True(t, ok)
	assert.Equal(t, "jordan@example.com", sess.Profile.Email)
}

func TestLoginUpstreamRejection(t *testing.T) {
	srv := upstreamStub(t, http.StatusUnauthorized)
	defer srv.Close()

	svc, _ := newAuthService(srv.URL)
	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "a@b.c", Password: "wrong"})

	assert.ErrorIs(t, err, ErrAuthRejected)
}

func TestLoginUpstreamDown(t *testing.T) {
	srv := upstreamStub(t, http.StatusOK)
	srv.Close() // connection refused

	svc, _ := newAuthService(srv.URL)
	_, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "a@b.c", Password: "pw"})

	assert.ErrorIs(t, err, ErrAuthUnavailable)
}

func TestProfileAndLogout(t *testing.T) {
	srv := upstreamStub(t, http.StatusOK)
	defer srv.Close()

	svc, _ := newAuthService(srv.URL)
	res, err := svc.Login(context.Background(), &dto.LoginRequest{Email: "jordan@example.com", Password: "pw"})
	assert.NoError(t, err)

	sessionID, err := svc.ParseSessionToken(res.SessionToken)
	assert.NoError(t, err)

	profile, err := svc.Profile(context.Background(), sessionID)
	assert.NoError(t, err)
	assert.Equal(t, "Jordan Smith", profile.UserName)

	assert.NoError(t, svc.Logout(context.Background(), sessionID))

	_, err = svc.Profile(context.Background(), sessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestParseSessionTokenRejectsGarbage(t *testing.T) {
	svc, _ := newAuthService("http://localhost:0")

	_, err := svc.ParseSessionToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// token signed with a different secret
	other := NewAuthService(valtool.NewClient("http://localhost:0"), session.NewStore(time.Minute), "other-secret", time.Minute, logger.Nop{})
	otherImpl := other.(*authService)
	tokenStr, err := otherImpl.signSessionToken("some-session")
	assert.NoError(t, err)

	_, err = svc.ParseSessionToken(tokenStr)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
