package services

import (
	"context"
	"fmt"
	"time"

	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/validation"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AuthService handles login and session token verification.
type AuthService struct {
	userRepo   repositories.UserRepository
	validate   *validation.Validator
	jwtSecret  []byte
	tokenDurat time.Duration // Duration for which JWT is valid
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository, validate *validation.Validator, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		validate:   validate,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: tokenTTL,
		logger:     logger.With().Str("service", "auth").Logger(),
	}
}

// Login looks the user up by email and issues a session token.
//
// The password is required but not compared against the stored hash: login is a
// stub that trusts any caller who knows a registered email.
func (s *AuthService) Login(ctx context.Context, input models.LoginInput) (*models.AuthResponse, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		s.logger.Info().Msg("login for unknown email")
		return nil, models.ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		User:  user.Public(),
		Token: token,
	}, nil
}

// issueToken signs a JWT for user. The random jti makes every token unique.
func (s *AuthService) issueToken(user *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"jti":     uuid.New().String(),
		"iat":     now.Unix(),
		"exp":     now.Add(s.tokenDurat).Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a JWT token, returning the session it carries.
func (s *AuthService) ValidateToken(tokenString string) (*models.Session, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	userID, ok := claims["user_id"].(float64)
	if !ok || userID <= 0 {
		return nil, fmt.Errorf("invalid token: missing user_id")
	}
	email, _ := claims["email"].(string)
	tokenID, _ := claims["jti"].(string)

	return &models.Session{
		UserID:  int64(userID),
		Email:   email,
		TokenID: tokenID,
	}, nil
}
