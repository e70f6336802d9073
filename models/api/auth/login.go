package authapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if strings.TrimSpace(r.Login) == "" {
		return errors.New("не указан логин")
	}
	if r.Password == "" {
		return errors.New("не указан пароль")
	}
	return nil
}

// JWTResponse пара токенов, выдаваемая при входе и обновлении
type JWTResponse struct {
	Token        string    `json:"token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"` // окончание действия token
}

type JWTRefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r JWTRefreshRequest) Validate() error {
	if strings.TrimSpace(r.RefreshToken) == "" {
		return errors.New("не указан refresh token")
	}
	return nil
}
