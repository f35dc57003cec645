package repository

import (
	"finlit_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProgressRepository 成绩记录存储。每个(学员, 模块)至多一条活跃记录，
// 写入总是整条覆盖，重试次数由上层计算后随记录一并落库
type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// FindModuleScore 查找学员在某模块的当前记录，无记录返回 gorm.ErrRecordNotFound
func (r *ProgressRepository) FindModuleScore(userID uint, moduleID string) (*model.ModuleScore, error) {
	var score model.ModuleScore
	err := r.DB.Where("user_id = ? AND module_id = ?", userID, moduleID).First(&score).Error
	if err != nil {
		return nil, err
	}
	return &score, nil
}

// FindModuleScores 学员全部模块记录，按完成时间排列
func (r *ProgressRepository) FindModuleScores(userID uint) ([]model.ModuleScore, error) {
	var scores []model.ModuleScore
	err := r.DB.Where("user_id = ?", userID).Order("completed_at ASC").Find(&scores).Error
	if err != nil {
		return nil, err
	}
	return scores, nil
}

// PutModuleScore 覆盖式写入：存在则整条更新，不存在则创建
func (r *ProgressRepository) PutModuleScore(score *model.ModuleScore) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "module_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"module_name", "score", "max_score", "passed", "attempt_number", "completed_at", "updated_at",
		}),
	}).Create(score).Error
}

// DeleteModuleScore 整条删除，使模块回到"未尝试"状态。重复删除不报错
func (r *ProgressRepository) DeleteModuleScore(userID uint, moduleID string) error {
	return r.DB.Unscoped().
		Where("user_id = ? AND module_id = ?", userID, moduleID).
		Delete(&model.ModuleScore{}).Error
}

// CountPassed 学员已通关的模块数，用于"全部通关"成就判定
func (r *ProgressRepository) CountPassed(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.ModuleScore{}).
		Where("user_id = ? AND passed = ?", userID, true).Count(&count).Error
	return count, err
}
