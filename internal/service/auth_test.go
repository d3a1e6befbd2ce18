package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ricettario/backend/internal/model"
)

func setupAuthTest(t *testing.T) *AuthService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}))
	return NewAuthService(db, "test-secret")
}

func TestRegisterAndValidateToken(t *testing.T) {
	svc := setupAuthTest(t)
	ctx := context.Background()

	token, err := svc.Register(ctx, "Mario Rossi", "mario@example.com", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "Mario Rossi", claims.Name)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", claims.UserID.String())
}

func TestRegisterDuplicate(t *testing.T) {
	svc := setupAuthTest(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Mario Rossi", "mario@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Other", "mario@example.com", "password456")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestLogin(t *testing.T) {
	svc := setupAuthTest(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Mario Rossi", "mario@example.com", "password123")
	require.NoError(t, err)

	token, err := svc.Login(ctx, "mario@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = svc.Login(ctx, "mario@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := setupAuthTest(t)

	_, err := svc.ValidateToken("not-a-jwt")
	assert.Error(t, err)
}

func TestValidateTokenRejectsForeignSecret(t *testing.T) {
	svc := setupAuthTest(t)
	other := setupAuthTest(t)
	other.jwtSecret = "different-secret"

	token, err := other.Register(context.Background(), "Eve", "eve@example.com", "password123")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
