package authhandler

import (
	"crypto/subtle"
	"interview-scheduler/config"
	authutils "interview-scheduler/lib/utils/auth-utils"
	authapimodels "interview-scheduler/models/api/auth"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Login(request authapimodels.LoginRequest) (response authapimodels.JWTResponse, err error)
	Refresh(request authapimodels.JWTRefreshRequest) (response authapimodels.JWTResponse, err error)
}

var Instance Provider

var (
	ErrBadCredentials  = errors.New("неверный логин или пароль")
	ErrBadRefreshToken = errors.New("недействительный refresh token")
)

func NewHandler() {
	Instance = impl{
		login:    config.Conf.Auth.AdminLogin,
		password: config.Conf.Auth.AdminPassword,
		now:      time.Now,
	}
}

type impl struct {
	login    string
	password string
	now      func() time.Time
}

func (i impl) Login(request authapimodels.LoginRequest) (response authapimodels.JWTResponse, err error) {
	logger := log.WithField("login", request.Login)
	if i.password == "" {
		logger.Warn("вход отклонен, пароль администратора не задан")
		return authapimodels.JWTResponse{}, ErrBadCredentials
	}
	loginOk := subtle.ConstantTimeCompare([]byte(request.Login), []byte(i.login)) == 1
	passwordOk := subtle.ConstantTimeCompare([]byte(request.Password), []byte(i.password)) == 1
	if !loginOk || !passwordOk {
		logger.Debug("пользователь не прошел проверку пароля")
		return authapimodels.JWTResponse{}, ErrBadCredentials
	}
	return i.issue(request.Login)
}

func (i impl) Refresh(request authapimodels.JWTRefreshRequest) (response authapimodels.JWTResponse, err error) {
	login, err := authutils.ParseRefreshToken(request.RefreshToken)
	if err != nil {
		log.WithError(err).Debug("refresh token отклонен")
		return authapimodels.JWTResponse{}, ErrBadRefreshToken
	}
	if login != i.login {
		return authapimodels.JWTResponse{}, ErrBadRefreshToken
	}
	return i.issue(login)
}

func (i impl) issue(login string) (response authapimodels.JWTResponse, err error) {
	now := i.now()
	token, err := authutils.GetToken(login, now)
	if err != nil {
		log.WithError(err).Error("ошибка генерации JWT")
		return authapimodels.JWTResponse{}, err
	}
	refreshToken, err := authutils.GetRefreshToken(login, now)
	if err != nil {
		log.WithError(err).Error("ошибка генерации refresh JWT")
		return authapimodels.JWTResponse{}, err
	}
	return authapimodels.JWTResponse{
		Token:        token,
		RefreshToken: refreshToken,
		ExpiresAt:    now.Add(time.Duration(config.Conf.Auth.JWTExpireInSec) * time.Second),
	}, nil
}
