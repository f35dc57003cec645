package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"finlit_backend/internal/catalog"
	"finlit_backend/internal/model"
	"finlit_backend/internal/repository"
	"finlit_backend/internal/util"
	"finlit_backend/pkg/logger"
	"finlit_backend/pkg/monitoring"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProgressService 模块成绩与进度引擎：判定单次提交是否通过、
// 计算第几次尝试、并决定落库。判定规则固定为 100% 及格线，
// 低及格线模块由调用方预先换算（见 catalog.ModuleDefinition.PassPercent）
type ProgressService struct {
	ProgressRepo    *repository.ProgressRepository
	CheckinRepo     *repository.CheckinRepository
	AchievementRepo *repository.AchievementRepository
	Catalog         *catalog.Catalog
	Achievement     *AchievementService
	Redis           *redis.Client
}

func NewProgressService(
	progressRepo *repository.ProgressRepository,
	checkinRepo *repository.CheckinRepository,
	achievementRepo *repository.AchievementRepository,
	cat *catalog.Catalog,
	achievement *AchievementService,
	rdb *redis.Client,
) *ProgressService {
	return &ProgressService{
		ProgressRepo:    progressRepo,
		CheckinRepo:     checkinRepo,
		AchievementRepo: achievementRepo,
		Catalog:         cat,
		Achievement:     achievement,
		Redis:           rdb,
	}
}

// SubmitResult 单次成绩提交的判定结果
type SubmitResult struct {
	ModuleID      string `json:"moduleId"`
	Passed        bool   `json:"passed"`
	AttemptNumber int    `json:"attemptNumber"`
	Score         int    `json:"score"`
	MaxScore      int    `json:"maxScore"`
}

// StudentProgress 学员进度快照，模块挂载时一次性读出
type StudentProgress struct {
	ModuleScores []model.ModuleScore `json:"moduleScores"`
	Streak       int                 `json:"streak"`
	Achievements []model.Achievement `json:"achievements"`
}

// SubmitScore 提交一次模块成绩。
// 未知模块返回 util.ErrModuleNotFound；存储层错误原样向上传递，
// 调用方保留内存中的测验结果供学员手动重试。
// 存储策略是"最近一次覆盖"：后提交的低分会覆盖先前的通过记录
func (s *ProgressService) SubmitScore(userID uint, moduleID string, score, maxScore int) (*SubmitResult, error) {
	def, err := s.Catalog.Module(moduleID)
	if err != nil {
		return nil, err
	}

	if maxScore <= 0 {
		maxScore = util.DefaultMaxScore
	}

	percentage := float64(score) / float64(maxScore) * 100
	passed := percentage >= util.PassThresholdPercent

	attemptNumber := 1
	prev, err := s.ProgressRepo.FindModuleScore(userID, moduleID)
	if err == nil {
		attemptNumber = prev.AttemptNumber + 1
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	record := &model.ModuleScore{
		UserID:        userID,
		ModuleID:      moduleID,
		ModuleName:    def.Name,
		Score:         score,
		MaxScore:      maxScore,
		Passed:        passed,
		AttemptNumber: attemptNumber,
		CompletedAt:   time.Now(),
	}

	if err := s.ProgressRepo.PutModuleScore(record); err != nil {
		return nil, err
	}

	s.invalidateCache(userID)

	monitoring.ScoreSubmissions.WithLabelValues(moduleID, strconv.FormatBool(passed)).Inc()
	logger.Log.Info("module score submitted",
		zap.Uint("userID", userID),
		zap.String("moduleID", moduleID),
		zap.Int("score", score),
		zap.Int("attempt", attemptNumber),
		zap.Bool("passed", passed),
	)

	if passed {
		s.awardPassAchievements(userID)
	}

	return &SubmitResult{
		ModuleID:      moduleID,
		Passed:        passed,
		AttemptNumber: attemptNumber,
		Score:         score,
		MaxScore:      maxScore,
	}, nil
}

// IsModulePassed 对进度快照的只读查询，无记录视为未通过
func (s *ProgressService) IsModulePassed(userID uint, moduleID string) (bool, error) {
	if _, err := s.Catalog.Module(moduleID); err != nil {
		return false, err
	}

	progress, err := s.GetProgress(userID)
	if err != nil {
		return false, err
	}

	for _, ms := range progress.ModuleScores {
		if ms.ModuleID == moduleID {
			return ms.Passed, nil
		}
	}
	return false, nil
}

// ResetModule 整条删除成绩记录，模块回到"未尝试"。重复重置是空操作
func (s *ProgressService) ResetModule(userID uint, moduleID string) error {
	if _, err := s.Catalog.Module(moduleID); err != nil {
		return err
	}

	if err := s.ProgressRepo.DeleteModuleScore(userID, moduleID); err != nil {
		return err
	}

	s.invalidateCache(userID)
	return nil
}

// GetProgress 读取学员进度快照，优先走 Redis 缓存
func (s *ProgressService) GetProgress(userID uint) (*StudentProgress, error) {
	ctx := context.Background()
	key := progressCacheKey(userID)

	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, key).Result(); err == nil {
			var progress StudentProgress
			if err := json.Unmarshal([]byte(cached), &progress); err == nil {
				return &progress, nil
			}
		}
	}

	scores, err := s.ProgressRepo.FindModuleScores(userID)
	if err != nil {
		return nil, err
	}

	streak := 0
	if latest, err := s.CheckinRepo.FindLatestByUser(userID); err == nil {
		streak = latest.StreakDays
	}

	achievements, err := s.AchievementRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	progress := &StudentProgress{
		ModuleScores: scores,
		Streak:       streak,
		Achievements: achievements,
	}

	if s.Redis != nil {
		if data, err := json.Marshal(progress); err == nil {
			s.Redis.Set(ctx, key, data, util.ProgressCacheTTL*time.Second)
		}
	}

	return progress, nil
}

func (s *ProgressService) invalidateCache(userID uint) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(context.Background(), progressCacheKey(userID)).Err(); err != nil {
		logger.Log.Warn("failed to invalidate progress cache", zap.Uint("userID", userID), zap.Error(err))
	}
}

// awardPassAchievements 通关后的成就钩子。成就授予失败不影响成绩提交，
// 只记日志
func (s *ProgressService) awardPassAchievements(userID uint) {
	if s.Achievement == nil {
		return
	}

	if err := s.Achievement.Award(userID, catalog.AchFirstPass); err != nil {
		logger.Log.Warn("failed to award achievement", zap.Error(err))
	}

	passed, err := s.ProgressRepo.CountPassed(userID)
	if err != nil {
		logger.Log.Warn("failed to count passed modules", zap.Error(err))
		return
	}
	if int(passed) >= s.Catalog.ModuleCount() {
		if err := s.Achievement.Award(userID, catalog.AchAllModules); err != nil {
			logger.Log.Warn("failed to award achievement", zap.Error(err))
		}
	}
}

func progressCacheKey(userID uint) string {
	return fmt.Sprintf("progress:%d", userID)
}
