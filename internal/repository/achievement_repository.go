package repository

import (
	"finlit_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AchievementRepository struct {
	DB *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{DB: db}
}

func (r *AchievementRepository) FindByUserID(userID uint) ([]model.Achievement, error) {
	var achievements []model.Achievement
	err := r.DB.Where("user_id = ?", userID).Order("created_at ASC").Find(&achievements).Error
	if err != nil {
		return nil, err
	}
	return achievements, nil
}

// Add 幂等授予：已有同 code 成就时不插入、不报错。
// 返回是否产生了新记录，调用方据此决定是否发放经验值
func (r *AchievementRepository) Add(achievement *model.Achievement) (bool, error) {
	result := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "code"}},
		DoNothing: true,
	}).Create(achievement)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
