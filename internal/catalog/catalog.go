package catalog

import "finlit_backend/internal/util"

// ModuleDefinition 一个课程模块（课程+测验单元）的静态定义。
// ID 是对外契约：改动会使学员的历史成绩记录成为孤儿。
type ModuleDefinition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	// PassPercent 该模块自身的及格线。低于 100 的模块在提交共享引擎前
	// 由测验服务预先换算成满分，引擎始终按 100% 判定
	PassPercent float64    `json:"passPercent"`
	Questions   []Question `json:"questions"`
}

// Question 测验题目，CorrectIndex 指向 Options 中的正确项
type Question struct {
	ID           string   `json:"id"`
	Prompt       string   `json:"prompt"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"-"`
	Explanation  string   `json:"-"`
}

// Catalog 启动时构建一次的不可变配置表：课程模块、成就、
// 行情模拟的标的和事件。注入到各服务，便于测试时替换成假目录
type Catalog struct {
	modules      map[string]ModuleDefinition
	order        []string
	Achievements []AchievementDefinition
	Instruments  []InstrumentSeed
	Events       map[string]MarketEvent
}

// New 从模块定义列表构建目录，保留声明顺序
func New(defs []ModuleDefinition, achievements []AchievementDefinition, instruments []InstrumentSeed, events []MarketEvent) *Catalog {
	c := &Catalog{
		modules:      make(map[string]ModuleDefinition, len(defs)),
		Achievements: achievements,
		Instruments:  instruments,
		Events:       make(map[string]MarketEvent, len(events)),
	}
	for _, d := range defs {
		c.modules[d.ID] = d
		c.order = append(c.order, d.ID)
	}
	for _, e := range events {
		c.Events[e.ID] = e
	}
	return c
}

// Module 按 ID 查找模块定义，未知 ID 返回 ErrModuleNotFound
func (c *Catalog) Module(id string) (ModuleDefinition, error) {
	def, ok := c.modules[id]
	if !ok {
		return ModuleDefinition{}, util.ErrModuleNotFound
	}
	return def, nil
}

// Modules 按声明顺序返回全部模块定义
func (c *Catalog) Modules() []ModuleDefinition {
	out := make([]ModuleDefinition, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.modules[id])
	}
	return out
}

// ModuleCount 模块总数，用于"全部通关"成就判定
func (c *Catalog) ModuleCount() int {
	return len(c.order)
}

// Event 按 ID 查找行情事件
func (c *Catalog) Event(id string) (MarketEvent, error) {
	e, ok := c.Events[id]
	if !ok {
		return MarketEvent{}, util.ErrEventUnknown
	}
	return e, nil
}

// Default 返回线上使用的完整目录
func Default() *Catalog {
	return New(defaultModules, defaultAchievements, defaultInstruments, defaultEvents)
}
