package service

import (
	"context"
	"encoding/json"
	"time"

	"finlit_backend/internal/catalog"
	"finlit_backend/internal/model"
	"finlit_backend/internal/repository"
	"finlit_backend/internal/util"
	"finlit_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const leaderboardCacheKey = "leaderboard"

// AchievementService 成就授予与排行榜。授予是追加式且幂等：
// 重复授予同一成就是空操作，经验值只发一次
type AchievementService struct {
	AchievementRepo *repository.AchievementRepository
	UserRepo        *repository.UserRepository
	Catalog         *catalog.Catalog
	Redis           *redis.Client
}

func NewAchievementService(
	achievementRepo *repository.AchievementRepository,
	userRepo *repository.UserRepository,
	cat *catalog.Catalog,
	rdb *redis.Client,
) *AchievementService {
	return &AchievementService{
		AchievementRepo: achievementRepo,
		UserRepo:        userRepo,
		Catalog:         cat,
		Redis:           rdb,
	}
}

// Award 按目录定义授予成就。目录外的 code 视为编程错误，只记日志
func (s *AchievementService) Award(userID uint, code string) error {
	def, ok := s.Catalog.Achievement(code)
	if !ok {
		logger.Log.Error("unknown achievement code", zap.String("code", code))
		return nil
	}

	added, err := s.AchievementRepo.Add(&model.Achievement{
		UserID:   userID,
		Code:     def.Code,
		Name:     def.Name,
		Icon:     def.Icon,
		EarnedXP: def.XP,
	})
	if err != nil {
		return err
	}
	if !added {
		return nil
	}

	if err := s.UserRepo.AddXP(userID, def.XP); err != nil {
		return err
	}

	s.invalidateCaches(userID)

	logger.Log.Info("achievement awarded",
		zap.Uint("userID", userID), zap.String("code", code), zap.Int("xp", def.XP))
	return nil
}

// GetUserAchievements 学员已获得的成就列表
func (s *AchievementService) GetUserAchievements(userID uint) ([]model.Achievement, error) {
	return s.AchievementRepo.FindByUserID(userID)
}

// LeaderboardEntry 排行榜条目
type LeaderboardEntry struct {
	Rank   int    `json:"rank"`
	User   string `json:"user"`
	XP     int    `json:"xp"`
	Avatar string `json:"avatar,omitempty"`
}

// GetLeaderboard 按经验值排名，短暂缓存在 Redis
func (s *AchievementService) GetLeaderboard(limit int) ([]LeaderboardEntry, error) {
	ctx := context.Background()

	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, leaderboardCacheKey).Result(); err == nil {
			var leaderboard []LeaderboardEntry
			if err := json.Unmarshal([]byte(cached), &leaderboard); err == nil && len(leaderboard) >= limit {
				return leaderboard[:limit], nil
			}
		}
	}

	users, err := s.UserRepo.FindTopByXP(limit)
	if err != nil {
		return nil, err
	}

	leaderboard := make([]LeaderboardEntry, len(users))
	for i, user := range users {
		leaderboard[i] = LeaderboardEntry{
			Rank:   i + 1,
			User:   user.Name,
			XP:     user.XP,
			Avatar: user.Avatar,
		}
	}

	if s.Redis != nil {
		if data, err := json.Marshal(leaderboard); err == nil {
			s.Redis.Set(ctx, leaderboardCacheKey, data, util.LeaderboardCacheTTL*time.Second)
		}
	}

	return leaderboard, nil
}

func (s *AchievementService) invalidateCaches(userID uint) {
	if s.Redis == nil {
		return
	}
	ctx := context.Background()
	s.Redis.Del(ctx, progressCacheKey(userID))
	s.Redis.Del(ctx, leaderboardCacheKey)
}
