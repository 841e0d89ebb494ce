package seed

import (
	"context"
	"testing"

	"catalog/internal/repositories"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestDemo(t *testing.T) {
	ctx := context.Background()
	users := repositories.NewMemoryUserRepository()
	products := repositories.NewMemoryProductRepository()
	opts := Options{Email: "user@example.com", Name: "Demo User", Password: "secret", Products: true}

	result, err := Demo(ctx, users, products, opts, zerolog.Nop())
	require.NoError(t, err)
	assert.True(t, result.UserCreated)
	assert.Equal(t, len(SampleProducts()), result.ProductsCreated)

	// Only the hash is stored.
	stored, err := users.GetByEmail(ctx, "user@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret")))

	// Running again changes nothing.
	again, err := Demo(ctx, users, products, opts, zerolog.Nop())
	require.NoError(t, err)
	assert.False(t, again.UserCreated)
	assert.Equal(t, 0, again.ProductsCreated)
	assert.Equal(t, stored.ID, again.User.ID)

	all, err := products.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(SampleProducts()))
}

func TestDemo_RequiresCredentials(t *testing.T) {
	_, err := Demo(context.Background(), repositories.NewMemoryUserRepository(), nil, Options{Email: "a@b.com"}, zerolog.Nop())
	assert.Error(t, err)
}
