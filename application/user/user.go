package user

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/fw-development/cmd/config"
	"github.com/muhammadheryan/fw-development/constant"
	"github.com/muhammadheryan/fw-development/model"
	redisrepo "github.com/muhammadheryan/fw-development/repository/redis"
	"github.com/muhammadheryan/fw-development/utils/errors"
	"github.com/muhammadheryan/fw-development/utils/logger"
	validatorx "github.com/muhammadheryan/fw-development/utils/validator"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserApp authenticates the single back-office admin configured through ADMIN_* variables.
type UserApp interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*model.Session, error)
	Logout(ctx context.Context, sessionID string) error
}

type UserAppImpl struct {
	config    *config.Config
	redisRepo redisrepo.Repository
}

func NewUserApp(config *config.Config, redisRepo redisrepo.Repository) UserApp {
	return &UserAppImpl{
		config:    config,
		redisRepo: redisRepo,
	}
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	if req == nil {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.SetCustomError(constant.ErrMissingFields)
	}

	auth := s.config.Auth
	if auth.AdminPasswordHash == "" {
		logger.Error("[Login] admin password hash is not configured")
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	if subtle.ConstantTimeCompare([]byte(req.Username), []byte(auth.AdminUsername)) != 1 {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	// Verify password
	err := bcrypt.CompareHashAndPassword([]byte(auth.AdminPasswordHash), []byte(req.Password))
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	token, claims, err := s.generateJWT(auth.AdminUsername)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	session := &model.Session{
		ID:        claims.ID,
		Username:  auth.AdminUsername,
		Name:      auth.AdminName,
		Role:      constant.RoleAdmin,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	err = s.redisRepo.SetSession(ctx, session, s.config.Auth.SessionExpTime)
	if err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		Username:  session.Username,
		Name:      session.Name,
		Token:     token,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (*model.Session, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid claims")
	}

	jti := claims.ID
	if jti == "" {
		return nil, fmt.Errorf("token missing jti")
	}

	session, err := s.redisRepo.GetSession(ctx, jti)
	if err != nil {
		return nil, fmt.Errorf("invalid or expired session")
	}

	if session.Username != claims.Subject {
		return nil, fmt.Errorf("token does not match session")
	}

	return session, nil
}

func (s *UserAppImpl) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}
	if err := s.redisRepo.ClearSession(ctx, sessionID); err != nil {
		logger.Error("[Logout] err ClearSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// generateJWT creates an HS256 token whose jti is the session id
func (s *UserAppImpl) generateJWT(username string) (string, *jwt.RegisteredClaims, error) {
	newUUID, err := uuid.NewRandom()
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate jti: %w", err)
	}
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims, nil
}
