package usecase

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"jobhunter/internal/pkg/jwt"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrInternal            = errors.New("internal error")
)

type AuthUsecase interface {
	Login(password string) (string, string, error)
	Refresh(refreshToken string) (string, string, error)
}

// Auth authenticates the single owner account against a bcrypt hash
// loaded from the environment. There is no user table.
type Auth struct {
	passwordHash string
	jwt          jwt.Service
}

func NewAuthUsecase(passwordHash string, jwtSvc jwt.Service) *Auth {
	return &Auth{passwordHash: passwordHash, jwt: jwtSvc}
}

func (u *Auth) Login(password string) (string, string, error) {
	if password == "" {
		return "", "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)); err != nil {
		return "", "", ErrInvalidCredentials
	}
	return u.issuePair()
}

func (u *Auth) Refresh(refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrInvalidRefreshToken
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) {
		return "", "", ErrInvalidRefreshToken
	}

	return u.issuePair()
}

func (u *Auth) issuePair() (string, string, error) {
	access, err := u.jwt.GenerateAccessToken()
	if err != nil {
		return "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken()
	if err != nil {
		return "", "", ErrInternal
	}
	return access, refresh, nil
}
