package util

// PassThresholdPercent 共享进度引擎的及格线（百分比）。
// 低于 100% 及格线的课程模块（如 80%）由调用方在提交前自行换算，
// 引擎本身始终按 100% 判定。
const PassThresholdPercent = 100.0

// PriceFloor 模拟行情的价格下限，任何扰动或事件冲击后价格不得低于该值
const PriceFloor = 0.01

// DefaultStartingCash 模拟账户默认初始资金。初始资金必须为正，
// 否则完成结算的总值占比没有意义
const DefaultStartingCash = 10000.0

const (
	// DefaultMaxScore 默认满分
	DefaultMaxScore = 100

	// ProgressCacheTTL 进度快照在 Redis 中的缓存时长（秒）
	ProgressCacheTTL = 300

	// LeaderboardCacheTTL 排行榜缓存时长（秒）
	LeaderboardCacheTTL = 60
)
