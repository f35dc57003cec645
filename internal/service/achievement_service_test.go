package service

import (
	"fmt"
	"testing"

	"finlit_backend/internal/catalog"
	"finlit_backend/internal/model"
	"finlit_backend/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestAchievement(t *testing.T, db *gorm.DB) *AchievementService {
	t.Helper()
	return NewAchievementService(
		repository.NewAchievementRepository(db),
		repository.NewUserRepository(db),
		catalog.Default(),
		nil,
	)
}

func seedUser(t *testing.T, db *gorm.DB, name string) *model.User {
	t.Helper()
	user := &model.User{
		Name:     name,
		Email:    fmt.Sprintf("%s@example.com", name),
		Password: "hashed",
	}
	require.NoError(t, repository.NewUserRepository(db).Create(user))
	return user
}

// 重复授予同一成就是空操作，经验值只发一次
func TestAwardIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAchievement(t, db)
	user := seedUser(t, db, "alice")

	require.NoError(t, svc.Award(user.ID, catalog.AchFirstPass))
	require.NoError(t, svc.Award(user.ID, catalog.AchFirstPass))
	require.NoError(t, svc.Award(user.ID, catalog.AchFirstPass))

	achievements, err := svc.GetUserAchievements(user.ID)
	require.NoError(t, err)
	require.Len(t, achievements, 1)
	assert.Equal(t, catalog.AchFirstPass, achievements[0].Code)

	def, ok := svc.Catalog.Achievement(catalog.AchFirstPass)
	require.True(t, ok)

	reloaded, err := repository.NewUserRepository(db).FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, def.XP, reloaded.XP)
}

func TestAwardUnknownCodeIsNoop(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAchievement(t, db)
	user := seedUser(t, db, "bob")

	require.NoError(t, svc.Award(user.ID, "no-such-code"))

	achievements, err := svc.GetUserAchievements(user.ID)
	require.NoError(t, err)
	assert.Empty(t, achievements)
}

func TestAwardAccumulatesXP(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAchievement(t, db)
	user := seedUser(t, db, "carol")

	require.NoError(t, svc.Award(user.ID, catalog.AchFirstPass))
	require.NoError(t, svc.Award(user.ID, catalog.AchStreak3))

	first, _ := svc.Catalog.Achievement(catalog.AchFirstPass)
	streak, _ := svc.Catalog.Achievement(catalog.AchStreak3)

	reloaded, err := repository.NewUserRepository(db).FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, first.XP+streak.XP, reloaded.XP)
}

func TestLeaderboardRanksByXP(t *testing.T) {
	db := newTestDB(t)
	svc := newTestAchievement(t, db)

	low := seedUser(t, db, "low")
	high := seedUser(t, db, "high")
	mid := seedUser(t, db, "mid")

	userRepo := repository.NewUserRepository(db)
	require.NoError(t, userRepo.AddXP(low.ID, 10))
	require.NoError(t, userRepo.AddXP(high.ID, 300))
	require.NoError(t, userRepo.AddXP(mid.ID, 100))

	leaderboard, err := svc.GetLeaderboard(10)
	require.NoError(t, err)
	require.Len(t, leaderboard, 3)
	assert.Equal(t, "high", leaderboard[0].User)
	assert.Equal(t, 1, leaderboard[0].Rank)
	assert.Equal(t, "mid", leaderboard[1].User)
	assert.Equal(t, "low", leaderboard[2].User)
}
