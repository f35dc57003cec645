package model

import (
	"time"
)

// Checkin 记录学员每日活跃签到，连续天数随签到推进。
// 同一天重复签到不会产生第二条记录（按天幂等）。
type Checkin struct {
	BaseModel
	UserID     uint      `gorm:"index:idx_user_checkin_date,unique;not null"`
	CheckinAt  time.Time `gorm:"index:idx_user_checkin_date,unique;not null"` // 截断到当天零点
	StreakDays int       `gorm:"default:1"` // 连续活跃天数
}

func (Checkin) TableName() string {
	return "checkins"
}
