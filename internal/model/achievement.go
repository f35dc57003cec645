package model

// Achievement 学员已获得的成就。(UserID, Code) 唯一，重复授予是幂等空操作。
type Achievement struct {
	BaseModel
	UserID   uint   `gorm:"uniqueIndex:idx_user_achievement;not null" json:"userId"`
	Code     string `gorm:"size:64;uniqueIndex:idx_user_achievement;not null" json:"code"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Icon     string `gorm:"size:255" json:"icon"`
	EarnedXP int    `gorm:"default:0" json:"earnedXp"`
}

func (Achievement) TableName() string {
	return "achievements"
}
