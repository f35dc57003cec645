package catalog

// AchievementDefinition 可授予的成就及其奖励经验值
type AchievementDefinition struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Icon string `json:"icon"`
	XP   int    `json:"xp"`
}

const (
	AchFirstPass    = "first-pass"
	AchAllModules   = "all-modules"
	AchStreak3      = "streak-3"
	AchStreak7      = "streak-7"
	AchStreak30     = "streak-30"
	AchFirstTrade   = "first-trade"
	AchMarketProfit = "market-profit"
)

var defaultAchievements = []AchievementDefinition{
	{Code: AchFirstPass, Name: "首战告捷", Icon: "🎯", XP: 50},
	{Code: AchAllModules, Name: "全部通关", Icon: "🏆", XP: 500},
	{Code: AchStreak3, Name: "三日连胜", Icon: "🔥", XP: 30},
	{Code: AchStreak7, Name: "七日不辍", Icon: "⚡", XP: 100},
	{Code: AchStreak30, Name: "三十而立", Icon: "👑", XP: 300},
	{Code: AchFirstTrade, Name: "初入股海", Icon: "📈", XP: 20},
	{Code: AchMarketProfit, Name: "落袋为安", Icon: "💰", XP: 80},
}

// Achievement 按 code 查找成就定义，未定义返回 false
func (c *Catalog) Achievement(code string) (AchievementDefinition, bool) {
	for _, a := range c.Achievements {
		if a.Code == code {
			return a, true
		}
	}
	return AchievementDefinition{}, false
}
