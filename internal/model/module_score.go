package model

import (
	"time"
)

// ModuleScore 每个(学员, 课程模块)最多一条记录，最近一次提交覆盖之前的记录。
// AttemptNumber 是重试历史的唯一痕迹：每次提交都会加一，无论结果好坏。
type ModuleScore struct {
	BaseModel
	UserID        uint      `gorm:"uniqueIndex:idx_user_module;not null" json:"userId"`
	ModuleID      string    `gorm:"size:64;uniqueIndex:idx_user_module;not null" json:"moduleId"`
	ModuleName    string    `gorm:"size:128" json:"moduleName"`
	Score         int       `gorm:"not null" json:"score"`
	MaxScore      int       `gorm:"not null" json:"maxScore"`
	Passed        bool      `gorm:"default:false" json:"passed"`
	AttemptNumber int       `gorm:"default:1" json:"attemptNumber"`
	CompletedAt   time.Time `json:"completedAt"`
}

func (ModuleScore) TableName() string {
	return "module_scores"
}
