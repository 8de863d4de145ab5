package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"quizportal/cache"
	"quizportal/models"
	"quizportal/repositories"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNotAuthenticated   = errors.New("not authenticated")
)

//go:generate mockgen -source=./auth_service.go -package=svcmocks -destination=./mocks/session_store.mock.go SessionStore
type SessionStore interface {
	Save(ctx context.Context, sessionID string, userID uint, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (uint, error)
	Delete(ctx context.Context, sessionID string) error
}

// AuthService answers the one question the quiz screens need: is there a
// logged-in user behind this session token.
type AuthService struct {
	users      repositories.UserRepository
	sessions   SessionStore
	jwtSecret  []byte
	sessionTTL time.Duration
}

func NewAuthService(users repositories.UserRepository, sessions SessionStore, jwtSecret string, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		users:      users,
		sessions:   sessions,
		jwtSecret:  []byte(jwtSecret),
		sessionTTL: sessionTTL,
	}
}

func (s *AuthService) Register(ctx context.Context, email, password string) (models.User, error) {
	email = normalizeEmail(email)
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return models.User{}, ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{Email: email, PasswordHash: string(hash)}
	if err := s.users.Create(ctx, &user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, err
	}
	return user, nil
}

// Login checks the password, opens a session and returns its signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	sessionID := uuid.NewString()
	if err := s.sessions.Save(ctx, sessionID, user.ID, s.sessionTTL); err != nil {
		return "", err
	}
	return s.signToken(sessionID, user.ID)
}

// Logout ends the session behind token. Unknown or malformed tokens are ignored.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.parseToken(token)
	if err != nil {
		return nil
	}
	return s.sessions.Delete(ctx, claims.ID)
}

// Authenticate returns the user id behind a live session token.
func (s *AuthService) Authenticate(ctx context.Context, token string) (uint, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return 0, ErrNotAuthenticated
	}

	userID, err := s.sessions.Get(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, cache.ErrSessionNotFound) {
			return 0, ErrNotAuthenticated
		}
		return 0, err
	}
	if strconv.FormatUint(uint64(userID), 10) != claims.Subject {
		return 0, ErrNotAuthenticated
	}
	return userID, nil
}

func (s *AuthService) signToken(sessionID string, userID uint) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        sessionID,
		Subject:   strconv.FormatUint(uint64(userID), 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) parseToken(tokenString string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.ID == "" {
		return nil, errors.New("token has no session id")
	}
	return claims, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
