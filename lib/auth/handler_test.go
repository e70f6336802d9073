package authhandler

import (
	"interview-scheduler/config"
	authapimodels "interview-scheduler/models/api/auth"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	config.Conf = new(config.Configuration)
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 60
	h := impl{login: "admin", password: "pwd", now: time.Now}

	t.Run(`valid credentials`, func(t *testing.T) {
		resp, err := h.Login(authapimodels.LoginRequest{Login: "admin", Password: "pwd"})
		require.NoError(t, err)
		require.NotEmpty(t, resp.Token)
		require.NotEmpty(t, resp.RefreshToken)
		require.WithinDuration(t, time.Now().Add(time.Minute), resp.ExpiresAt, 5*time.Second)

		refreshed, err := h.Refresh(authapimodels.JWTRefreshRequest{RefreshToken: resp.RefreshToken})
		require.NoError(t, err)
		require.NotEmpty(t, refreshed.Token)
	})

	t.Run(`wrong password`, func(t *testing.T) {
		_, err := h.Login(authapimodels.LoginRequest{Login: "admin", Password: "bad"})
		require.ErrorIs(t, err, ErrBadCredentials)
	})

	t.Run(`empty configured password rejects login`, func(t *testing.T) {
		empty := impl{login: "admin", now: time.Now}
		_, err := empty.Login(authapimodels.LoginRequest{Login: "admin", Password: ""})
		require.ErrorIs(t, err, ErrBadCredentials)
	})

	t.Run(`refresh with access token fails`, func(t *testing.T) {
		resp, err := h.Login(authapimodels.LoginRequest{Login: "admin", Password: "pwd"})
		require.NoError(t, err)
		_, err = h.Refresh(authapimodels.JWTRefreshRequest{RefreshToken: resp.Token})
		require.ErrorIs(t, err, ErrBadRefreshToken)
	})
}
