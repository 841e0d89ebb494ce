package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"catalog/internal/models"
	"catalog/internal/services"
	"catalog/internal/validation"

	"github.com/dgrijalva/jwt-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUserRepository is a mock implementation of repositories.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

const testJWTSecret = "test_jwt_secret"

func newAuthService(repo *MockUserRepository) *services.AuthService {
	return services.NewAuthService(repo, validation.New(), testJWTSecret, time.Hour, zerolog.Nop())
}

func TestAuthService_Login(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo)

	user := &models.User{
		ID:           1,
		Email:        "a@b.com",
		Name:         "Alice",
		PasswordHash: "$2a$10$not-checked",
		CreatedAt:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	// Any password is accepted for a known email.
	mockRepo.On("GetByEmail", mock.Anything, "a@b.com").Return(user, nil).Twice()

	first, err := authService.Login(context.Background(), models.LoginInput{Email: "a@b.com", Password: "anything"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.User.ID)
	assert.Equal(t, "a@b.com", first.User.Email)
	assert.Equal(t, "Alice", first.User.Name)
	assert.NotEmpty(t, first.Token)

	second, err := authService.Login(context.Background(), models.LoginInput{Email: "a@b.com", Password: "something else"})
	require.NoError(t, err)
	assert.NotEqual(t, first.Token, second.Token)

	// Validate the token structure
	parsedToken, err := jwt.Parse(first.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	assert.True(t, ok)
	assert.Equal(t, float64(1), claims["user_id"])
	assert.Equal(t, "a@b.com", claims["email"])
	assert.NotEmpty(t, claims["jti"])
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo)

	mockRepo.On("GetByEmail", mock.Anything, "nobody@x.com").Return(nil, nil).Once()

	resp, err := authService.Login(context.Background(), models.LoginInput{Email: "nobody@x.com", Password: "p"})
	assert.Nil(t, resp)
	var authErr *models.AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "invalid credentials", err.Error())
	mockRepo.AssertExpectations(t)
}

func TestAuthService_Login_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input models.LoginInput
		field string
		rule  string
	}{
		{"missing email", models.LoginInput{Password: "p"}, "email", "required"},
		{"malformed email", models.LoginInput{Email: "not-an-email", Password: "p"}, "email", "email"},
		{"missing password", models.LoginInput{Email: "a@b.com"}, "password", "required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			authService := newAuthService(mockRepo)

			_, err := authService.Login(context.Background(), tt.input)
			var verr *models.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.True(t, verr.Has(tt.field, tt.rule))
			mockRepo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
		})
	}
}

func TestAuthService_Login_StorageFailure(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo)

	mockRepo.On("GetByEmail", mock.Anything, "a@b.com").
		Return(nil, models.NewPersistenceError("get user by email", errors.New("connection reset"))).Once()

	_, err := authService.Login(context.Background(), models.LoginInput{Email: "a@b.com", Password: "p"})
	var perr *models.PersistenceError
	assert.ErrorAs(t, err, &perr)
	mockRepo.AssertExpectations(t)
}

func TestAuthService_ValidateToken(t *testing.T) {
	authService := newAuthService(new(MockUserRepository))

	sign := func(method jwt.SigningMethod, secret []byte, claims jwt.MapClaims) string {
		token, err := jwt.NewWithClaims(method, claims).SignedString(secret)
		require.NoError(t, err)
		return token
	}

	// Test valid token
	valid := sign(jwt.SigningMethodHS256, []byte(testJWTSecret), jwt.MapClaims{
		"user_id": 7,
		"email":   "a@b.com",
		"jti":     "token-1",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	session, err := authService.ValidateToken(valid)
	require.NoError(t, err)
	assert.Equal(t, int64(7), session.UserID)
	assert.Equal(t, "a@b.com", session.Email)
	assert.Equal(t, "token-1", session.TokenID)

	// Test garbage token
	_, err = authService.ValidateToken("invalid.token.string")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")

	// Test expired token
	expired := sign(jwt.SigningMethodHS256, []byte(testJWTSecret), jwt.MapClaims{
		"user_id": 7,
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})
	_, err = authService.ValidateToken(expired)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid token")

	// Test wrong secret
	forged := sign(jwt.SigningMethodHS256, []byte("other_secret"), jwt.MapClaims{
		"user_id": 7,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	_, err = authService.ValidateToken(forged)
	assert.Error(t, err)

	// Test missing user_id
	anonymous := sign(jwt.SigningMethodHS256, []byte(testJWTSecret), jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	_, err = authService.ValidateToken(anonymous)
	assert.Error(t, err)
}

func TestAuthService_LoginTokenRoundTrip(t *testing.T) {
	mockRepo := new(MockUserRepository)
	authService := newAuthService(mockRepo)

	mockRepo.On("GetByEmail", mock.Anything, "a@b.com").Return(&models.User{ID: 3, Email: "a@b.com"}, nil).Once()

	resp, err := authService.Login(context.Background(), models.LoginInput{Email: "a@b.com", Password: "p"})
	require.NoError(t, err)

	session, err := authService.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(3), session.UserID)
	assert.Equal(t, "a@b.com", session.Email)
	assert.NotEmpty(t, session.TokenID)
}
