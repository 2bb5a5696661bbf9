package service

import (
	"context"
	"errors"
	"time"

	"evalassist-be/internal/dto"
	"evalassist-be/internal/pkg/logger"
	"evalassist-be/pkg/session"
	"evalassist-be/pkg/valtool"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrAuthRejected is an upstream credential rejection (HTTP-classified).
	ErrAuthRejected = errors.New("authentication failed")
	// ErrAuthUnavailable is any other login failure; no token detail leaks.
	ErrAuthUnavailable = errors.New("authentication service unavailable")
	// ErrSessionNotFound means the session expired or was logged out.
	ErrSessionNotFound = errors.New("session not found")
)

type IAuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Profile(ctx context.Context, sessionID string) (*dto.ProfileResponse, error)
	Logout(ctx context.Context, sessionID string) error
	ParseSessionToken(tokenStr string) (string, error)
}

type authService struct {
	client     *valtool.Client
	sessions   *session.Store
	jwtSecret  []byte
	sessionTTL time.Duration
	log        logger.ILogger
}

func NewAuthService(client *valtool.Client, sessions *session.Store, jwtSecret string, sessionTTL time.Duration, log logger.ILogger) IAuthService {
	return &authService{
		client:     client,
		sessions:   sessions,
		jwtSecret:  []byte(jwtSecret),
		sessionTTL: sessionTTL,
		log:        log,
	}
}

// Login authenticates against the upstream account service, stores the
// profile in the in-memory session store, and returns a signed session
// token alongside the profile. No partial session survives a failure.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	result, err := s.client.Login(ctx, req.Email, req.Password)
	if err != nil {
		var httpErr *valtool.HTTPError
		if errors.As(err, &httpErr) {
			s.log.Warn("auth", "login rejected by upstream", map[string]interface{}{
				"email":  req.Email,
				"status": httpErr.StatusCode,
			})
			return nil, ErrAuthRejected
		}
		s.log.Error("auth", "login failed", map[string]interface{}{
			"email": req.Email,
			"error": err.Error(),
		})
		return nil, ErrAuthUnavailable
	}

	sess := &session.Session{
		ID: uuid.NewString(),
		Profile: session.Profile{
			AuthToken:     result.AuthToken,
			TestToken:     result.TestToken,
			UserName:      result.UserName,
			Email:         result.Email,
			Phone:         result.Phone,
			Organizations: result.Organizations,
		},
		CreatedAt: time.Now(),
	}
	s.sessions.Save(sess)

	tokenStr, err := s.signSessionToken(sess.ID)
	if err != nil {
		s.sessions.Delete(sess.ID)
		s.log.Error("auth", "session token signing failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, ErrAuthUnavailable
	}

	s.log.Info("auth", "user authenticated", map[string]interface{}{
		"email": result.Email,
	})

	return &dto.LoginResponse{
		SessionToken:  tokenStr,
		AuthToken:     result.AuthToken,
		TestToken:     result.TestToken,
		UserName:      result.UserName,
		Email:         result.Email,
		Phone:         result.Phone,
		Organizations: result.Organizations,
	}, nil
}

func (s *authService) Profile(_ context.Context, sessionID string) (*dto.ProfileResponse, error) {
	sess, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &dto.ProfileResponse{
		UserName:      sess.Profile.UserName,
		Email:         sess.Profile.Email,
		Phone:         sess.Profile.Phone,
		Organizations: sess.Profile.Organizations,
	}, nil
}

func (s *authService) Logout(_ context.Context, sessionID string) error {
	s.sessions.Delete(sessionID)
	return nil
}

func (s *authService) signSessionToken(sessionID string) (string, error) {
	claims := jwt.MapClaims{
		"session_id": sessionID,
		"exp":        time.Now().Add(s.sessionTTL).Unix(),
		"iat":        time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ParseSessionToken validates a session JWT and returns the session id.
func (s *authService) ParseSessionToken(tokenStr string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrSessionNotFound
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrSessionNotFound
	}
	sessionID, _ := claims["session_id"].(string)
	if sessionID == "" {
		return "", ErrSessionNotFound
	}
	return sessionID, nil
}
