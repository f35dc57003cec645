package service

import (
	"time"

	"finlit_backend/internal/catalog"
	"finlit_backend/internal/model"
	"finlit_backend/internal/repository"
	"finlit_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StreakService 每日连续活跃计算。同一自然日内重复调用幂等：
// 第二次调用返回相同的连续天数且 incrementedToday=false
type StreakService struct {
	CheckinRepo *repository.CheckinRepository
	Achievement *AchievementService
}

func NewStreakService(checkinRepo *repository.CheckinRepository, achievement *AchievementService) *StreakService {
	return &StreakService{
		CheckinRepo: checkinRepo,
		Achievement: achievement,
	}
}

// StreakResult 一次连续天数计算的结果
type StreakResult struct {
	Streak           int  `json:"streak"`
	IncrementedToday bool `json:"incrementedToday"`
}

// CalculateDailyStreak 会话开始时调用。
// 当天已签到：不变；昨天签到过：+1；出现断档或首次活跃：重置为 1
func (s *StreakService) CalculateDailyStreak(userID uint) (*StreakResult, error) {
	return s.calculateAt(userID, time.Now())
}

// calculateAt 以注入的"今天"执行计算，测试用
func (s *StreakService) calculateAt(userID uint, now time.Time) (*StreakResult, error) {
	if existing, err := s.CheckinRepo.FindByUserAndDate(userID, now); err == nil {
		return &StreakResult{Streak: existing.StreakDays, IncrementedToday: false}, nil
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	streak := 1
	if latest, err := s.CheckinRepo.FindLatestByUser(userID); err == nil {
		streak = NextStreakDays(latest.CheckinAt, now, latest.StreakDays)
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	checkin := &model.Checkin{
		UserID:     userID,
		CheckinAt:  truncateToDay(now),
		StreakDays: streak,
	}
	if err := s.CheckinRepo.Create(checkin); err != nil {
		return nil, err
	}

	s.awardStreakAchievements(userID, streak)

	return &StreakResult{Streak: streak, IncrementedToday: true}, nil
}

// NextStreakDays 纯函数：根据上次活跃日决定连续天数如何演进。
// 恰好相隔一个自然日则 +1，断档（含时钟回拨等异常间隔）重置为 1
func NextStreakDays(lastActive, now time.Time, lastStreak int) int {
	last := truncateToDay(lastActive)
	today := truncateToDay(now)

	if last.AddDate(0, 0, 1).Equal(today) {
		return lastStreak + 1
	}
	return 1
}

func (s *StreakService) awardStreakAchievements(userID uint, streak int) {
	if s.Achievement == nil {
		return
	}

	milestones := map[int]string{
		3:  catalog.AchStreak3,
		7:  catalog.AchStreak7,
		30: catalog.AchStreak30,
	}
	if code, ok := milestones[streak]; ok {
		if err := s.Achievement.Award(userID, code); err != nil {
			logger.Log.Warn("failed to award streak achievement",
				zap.Uint("userID", userID), zap.Int("streak", streak), zap.Error(err))
		}
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
