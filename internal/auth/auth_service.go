package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	autherrors "github.com/BaoDuy1703/Ecommerce/internal/auth/errors"
	"github.com/BaoDuy1703/Ecommerce/internal/commerce"
	"github.com/BaoDuy1703/Ecommerce/internal/pkg/apperror"
	"github.com/BaoDuy1703/Ecommerce/internal/session"
)

type CommerceAPI interface {
	Login(ctx context.Context, email, password string) (commerce.AuthResult, error)
	Register(ctx context.Context, email, name, password string) (commerce.AuthResult, error)
}

type SessionStore interface {
	Save(ctx context.Context, id string, sess session.Session) error
	Delete(ctx context.Context, id string) error
}

type Service interface {
	// Login exchanges credentials for an upstream token, stores it in a
	// server-side session and returns a signed cookie token for it.
	Login(ctx context.Context, req LoginRequest) (string, AuthResponse, error)
	Register(ctx context.Context, req RegisterRequest) (string, AuthResponse, error)
	Logout(ctx context.Context, sessionID string) error
}

type service struct {
	api      CommerceAPI
	sessions SessionStore
	secret   []byte
	ttl      time.Duration
	logger   *zap.Logger
}

func NewService(api CommerceAPI, sessions SessionStore, secret string, ttl time.Duration, logger *zap.Logger) Service {
	if api == nil {
		panic("auth: commerce api is required")
	}
	if sessions == nil {
		panic("auth: session store is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		api:      api,
		sessions: sessions,
		secret:   []byte(secret),
		ttl:      ttl,
		logger:   logger.Named("auth.service"),
	}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (string, AuthResponse, error) {
	result, err := s.api.Login(ctx, req.Email, req.Password)
	if err != nil {
		if apperror.Is(err, apperror.CodeUnauthorized) || apperror.Is(err, apperror.CodeNotFound) {
			return "", AuthResponse{}, autherrors.ErrInvalidCredentials
		}
		return "", AuthResponse{}, err
	}
	return s.establish(ctx, result)
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (string, AuthResponse, error) {
	result, err := s.api.Register(ctx, req.Email, req.Name, req.Password)
	if err != nil {
		return "", AuthResponse{}, err
	}
	return s.establish(ctx, result)
}

func (s *service) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

func (s *service) establish(ctx context.Context, result commerce.AuthResult) (string, AuthResponse, error) {
	sid := uuid.New().String()

	err := s.sessions.Save(ctx, sid, session.Session{
		UserID: result.User.ID,
		Email:  result.User.Email,
		Role:   result.User.Role,
		Token:  result.AccessToken,
	})
	if err != nil {
		s.logger.Error("failed to persist session", zap.Error(err))
		return "", AuthResponse{}, err
	}

	token, err := s.signToken(sid, result.User)
	if err != nil {
		return "", AuthResponse{}, err
	}

	return token, AuthResponse{
		ID:    result.User.ID,
		Email: result.User.Email,
		Name:  result.User.Name,
		Role:  result.User.Role,
	}, nil
}

func (s *service) signToken(sid string, user commerce.User) (string, error) {
	claims := jwt.MapClaims{
		"sid":     sid,
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(s.ttl).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
