package service

import (
	"testing"
	"time"

	"finlit_backend/internal/config"
	"finlit_backend/internal/model"
	"finlit_backend/internal/repository"
	"finlit_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuth(t *testing.T) *AuthService {
	t.Helper()
	db := newTestDB(t)
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpireTime = 24 * time.Hour
	return NewAuthService(repository.NewUserRepository(db), cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	auth := newTestAuth(t)

	user := &model.User{Name: "alice", Email: "alice@example.com", Password: "s3cret"}
	require.NoError(t, auth.Register(user))

	// 明文密码不落库
	stored, err := auth.UserRepo.FindByEmail("alice@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", stored.Password)

	token, err := auth.Login("alice@example.com", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := util.ParseJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, stored.ID, claims.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	auth := newTestAuth(t)

	require.NoError(t, auth.Register(&model.User{Name: "bob", Email: "bob@example.com", Password: "x"}))

	err := auth.Register(&model.User{Name: "bob2", Email: "bob@example.com", Password: "y"})
	assert.ErrorIs(t, err, util.ErrEmailRegistered)
}

func TestLoginWrongPassword(t *testing.T) {
	auth := newTestAuth(t)

	require.NoError(t, auth.Register(&model.User{Name: "carol", Email: "carol@example.com", Password: "right"}))

	_, err := auth.Login("carol@example.com", "wrong")
	assert.Error(t, err)

	_, err = auth.Login("nobody@example.com", "right")
	assert.Error(t, err)
}
