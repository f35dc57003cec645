package service

import (
	"math/rand"
	"sync"
	"time"

	"finlit_backend/internal/catalog"
	"finlit_backend/internal/util"
	"finlit_backend/pkg/logger"
	"finlit_backend/pkg/monitoring"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Instrument 模拟行情中的一只可交易标的，随每次刷新原地变价
type Instrument struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Sector     string  `json:"sector"`
	Price      float64 `json:"price"`
	Volatility float64 `json:"volatility"`
}

// Position 持仓：股数与加权平均成本
type Position struct {
	Shares  int     `json:"shares"`
	AvgCost float64 `json:"avgCost"`
}

// Portfolio 模拟账户。AvgCost 在买入时按加权平均更新，
// 卖出只减少股数并落袋已实现利润，不改变剩余持仓的成本
type Portfolio struct {
	Cash      float64              `json:"cash"`
	Positions map[string]*Position `json:"positions"`
	Realized  float64              `json:"realized"`
}

// ActiveEvent 正在展示横幅的事件。横幅到期只影响展示，
// 价格冲击在注入时已一次性生效且不会回退
type ActiveEvent struct {
	Event     catalog.MarketEvent `json:"event"`
	ExpiresAt time.Time           `json:"expiresAt"`
}

// Simulation 一个学员的行情模拟会话，纯内存
type Simulation struct {
	ID           string
	UserID       uint
	StartingCash float64

	mu           sync.Mutex
	instruments  map[string]*Instrument
	order        []string
	portfolio    *Portfolio
	paused       bool
	activeEvents []ActiveEvent
	rnd          *rand.Rand
	stop         chan struct{}
}

// MarketService 行情模拟服务：每个学员至多一个活跃模拟，
// 固定间隔的后台刷新 + 离散事件注入。只影响内存中的组合估值，
// 直到学员显式提交完成成绩才触达成绩存储
type MarketService struct {
	Catalog     *catalog.Catalog
	Progress    *ProgressService
	Achievement *AchievementService

	mu   sync.RWMutex
	sims map[uint]*Simulation

	tickInterval time.Duration
	startingCash float64
}

func NewMarketService(cat *catalog.Catalog, progress *ProgressService, achievement *AchievementService, tickInterval time.Duration, startingCash float64) *MarketService {
	// 初始资金非正会让完成结算除零，这里兜底而不是只依赖配置层校验
	if startingCash <= 0 {
		startingCash = util.DefaultStartingCash
	}
	return &MarketService{
		Catalog:      cat,
		Progress:     progress,
		Achievement:  achievement,
		sims:         make(map[uint]*Simulation),
		tickInterval: tickInterval,
		startingCash: startingCash,
	}
}

// StartSimulation 以目录种子数据新建模拟。已有模拟被终止替换。
// tickInterval > 0 时启动后台刷新协程
func (s *MarketService) StartSimulation(userID uint) *Simulation {
	sim := &Simulation{
		ID:           uuid.New().String(),
		UserID:       userID,
		StartingCash: s.startingCash,
		instruments:  make(map[string]*Instrument, len(s.Catalog.Instruments)),
		portfolio: &Portfolio{
			Cash:      s.startingCash,
			Positions: make(map[string]*Position),
		},
		rnd:  rand.New(rand.NewSource(time.Now().UnixNano())),
		stop: make(chan struct{}),
	}
	for _, seed := range s.Catalog.Instruments {
		sim.instruments[seed.ID] = &Instrument{
			ID:         seed.ID,
			Name:       seed.Name,
			Sector:     seed.Sector,
			Price:      seed.Price,
			Volatility: seed.Volatility,
		}
		sim.order = append(sim.order, seed.ID)
	}

	s.mu.Lock()
	if old, ok := s.sims[userID]; ok {
		close(old.stop)
	}
	s.sims[userID] = sim
	s.mu.Unlock()

	if s.tickInterval > 0 {
		go s.runTicker(sim)
	}

	logger.Log.Info("market simulation started", zap.Uint("userID", userID), zap.String("simID", sim.ID))
	return sim
}

func (s *MarketService) runTicker(sim *Simulation) {
	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			sim.Tick()
		case <-sim.stop:
			return
		}
	}
}

// Simulation 取学员的活跃模拟
func (s *MarketService) Simulation(userID uint) (*Simulation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sim, ok := s.sims[userID]
	if !ok {
		return nil, util.ErrSessionNotFound
	}
	return sim, nil
}

// End 终止并丢弃模拟会话
func (s *MarketService) End(userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sim, ok := s.sims[userID]; ok {
		close(sim.stop)
		delete(s.sims, userID)
	}
}

// Tick 对每只标的施加一次有界随机扰动。暂停状态不产生任何更新。
// 扰动按波动率缩放、乘法作用于价格，结果钳制在严格正的下限之上
func (sim *Simulation) Tick() {
	sim.mu.Lock()
	defer sim.mu.Unlock()

	if sim.paused {
		return
	}

	for _, inst := range sim.instruments {
		// [-volatility, +volatility] 上的均匀扰动
		perturbation := (sim.rnd.Float64()*2 - 1) * inst.Volatility
		inst.Price = clampPrice(inst.Price * (1 + perturbation))
	}

	monitoring.SimulationTicks.Inc()
}

// Pause 暂停行情刷新，组合与价格保持原状
func (sim *Simulation) Pause() {
	sim.mu.Lock()
	defer sim.mu.Unlock()
	sim.paused = true
}

// Resume 恢复行情刷新
func (sim *Simulation) Resume() {
	sim.mu.Lock()
	defer sim.mu.Unlock()
	sim.paused = false
}

// InjectEvent 注入目录中的一次性事件：乘数立即作用于目标标的/行业/全市场，
// 横幅按 DurationSec 记录到期时间，到期只是横幅消失，价格不会回退
func (s *MarketService) InjectEvent(userID uint, eventID string) (*ActiveEvent, error) {
	sim, err := s.Simulation(userID)
	if err != nil {
		return nil, err
	}
	event, err := s.Catalog.Event(eventID)
	if err != nil {
		return nil, err
	}

	sim.mu.Lock()
	defer sim.mu.Unlock()

	for _, inst := range sim.instruments {
		switch event.Scope {
		case catalog.ScopeInstrument:
			if inst.ID != event.Target {
				continue
			}
		case catalog.ScopeSector:
			if inst.Sector != event.Target {
				continue
			}
		case catalog.ScopeMarket:
			// 全部标的
		}
		inst.Price = clampPrice(inst.Price * event.Multiplier)
	}

	active := ActiveEvent{
		Event:     event,
		ExpiresAt: time.Now().Add(time.Duration(event.DurationSec) * time.Second),
	}
	sim.activeEvents = append(sim.activeEvents, active)

	logger.Log.Info("market event injected",
		zap.Uint("userID", userID),
		zap.String("event", eventID),
		zap.Float64("multiplier", event.Multiplier),
	)
	return &active, nil
}

// Buy 现金不足时整单拒绝、不改状态。买入按加权平均更新持仓成本
func (s *MarketService) Buy(userID uint, instrumentID string, shares int) error {
	sim, err := s.Simulation(userID)
	if err != nil {
		return err
	}

	sim.mu.Lock()
	inst, ok := sim.instruments[instrumentID]
	if !ok {
		sim.mu.Unlock()
		return util.ErrInstrumentUnknown
	}
	if shares <= 0 {
		sim.mu.Unlock()
		return util.ErrNoSelection
	}

	cost := inst.Price * float64(shares)
	if cost > sim.portfolio.Cash {
		sim.mu.Unlock()
		return util.ErrInsufficientCash
	}

	pos, held := sim.portfolio.Positions[instrumentID]
	if !held {
		pos = &Position{}
		sim.portfolio.Positions[instrumentID] = pos
	}

	// newAvg = (oldAvg*oldShares + price*bought) / (oldShares + bought)
	totalShares := pos.Shares + shares
	pos.AvgCost = (pos.AvgCost*float64(pos.Shares) + cost) / float64(totalShares)
	pos.Shares = totalShares
	sim.portfolio.Cash -= cost
	sim.mu.Unlock()

	if s.Achievement != nil {
		if err := s.Achievement.Award(userID, catalog.AchFirstTrade); err != nil {
			logger.Log.Warn("failed to award achievement", zap.Error(err))
		}
	}
	return nil
}

// Sell 超出持仓数量时整单拒绝。卖出落袋 (卖价-均价)×股数 的已实现利润，
// 剩余持仓的平均成本保持不变
func (s *MarketService) Sell(userID uint, instrumentID string, shares int) error {
	sim, err := s.Simulation(userID)
	if err != nil {
		return err
	}

	sim.mu.Lock()
	inst, ok := sim.instruments[instrumentID]
	if !ok {
		sim.mu.Unlock()
		return util.ErrInstrumentUnknown
	}
	pos := sim.portfolio.Positions[instrumentID]
	if shares <= 0 || pos == nil || shares > pos.Shares {
		sim.mu.Unlock()
		return util.ErrInsufficientShares
	}

	proceeds := inst.Price * float64(shares)
	profit := (inst.Price - pos.AvgCost) * float64(shares)

	pos.Shares -= shares
	if pos.Shares == 0 {
		delete(sim.portfolio.Positions, instrumentID)
	}
	sim.portfolio.Cash += proceeds
	sim.portfolio.Realized += profit
	sim.mu.Unlock()

	if profit > 0 && s.Achievement != nil {
		if err := s.Achievement.Award(userID, catalog.AchMarketProfit); err != nil {
			logger.Log.Warn("failed to award achievement", zap.Error(err))
		}
	}
	return nil
}

// MarketState 返回给前端的模拟快照
type MarketState struct {
	SimID            string        `json:"simId"`
	Instruments      []Instrument  `json:"instruments"`
	Portfolio        Portfolio     `json:"portfolio"`
	PortfolioValue   float64       `json:"portfolioValue"`
	UnrealizedReturn float64       `json:"unrealizedReturn"`
	Paused           bool          `json:"paused"`
	ActiveEvents     []ActiveEvent `json:"activeEvents"`
}

// State 读取模拟快照，顺带清理已过期的事件横幅
func (s *MarketService) State(userID uint) (*MarketState, error) {
	sim, err := s.Simulation(userID)
	if err != nil {
		return nil, err
	}

	sim.mu.Lock()
	defer sim.mu.Unlock()

	now := time.Now()
	remaining := sim.activeEvents[:0]
	for _, ev := range sim.activeEvents {
		if ev.ExpiresAt.After(now) {
			remaining = append(remaining, ev)
		}
	}
	sim.activeEvents = remaining

	instruments := make([]Instrument, 0, len(sim.order))
	for _, id := range sim.order {
		instruments = append(instruments, *sim.instruments[id])
	}

	positions := make(map[string]*Position, len(sim.portfolio.Positions))
	for id, pos := range sim.portfolio.Positions {
		cp := *pos
		positions[id] = &cp
	}

	return &MarketState{
		SimID:            sim.ID,
		Instruments:      instruments,
		Portfolio:        Portfolio{Cash: sim.portfolio.Cash, Positions: positions, Realized: sim.portfolio.Realized},
		PortfolioValue:   sim.portfolioValueLocked(),
		UnrealizedReturn: sim.unrealizedReturnLocked(),
		Paused:           sim.paused,
		ActiveEvents:     append([]ActiveEvent(nil), sim.activeEvents...),
	}, nil
}

// portfolioValueLocked = Σ 现价×持股数，调用方需持锁
func (sim *Simulation) portfolioValueLocked() float64 {
	value := 0.0
	for id, pos := range sim.portfolio.Positions {
		value += sim.instruments[id].Price * float64(pos.Shares)
	}
	return value
}

// unrealizedReturnLocked = Σ (现价-均价)×持股数，调用方需持锁
func (sim *Simulation) unrealizedReturnLocked() float64 {
	ret := 0.0
	for id, pos := range sim.portfolio.Positions {
		ret += (sim.instruments[id].Price - pos.AvgCost) * float64(pos.Shares)
	}
	return ret
}

// Complete 学员显式提交股市模块的完成成绩：账户总值（现金+市值）
// 不低于初始资金视为达成目标按满分提交，否则按总值占初始资金的
// 百分比提交（封顶 99，保证不会误判通过）。提交后终止模拟
func (s *MarketService) Complete(userID uint, moduleID string) (*SubmitResult, error) {
	sim, err := s.Simulation(userID)
	if err != nil {
		return nil, err
	}

	sim.mu.Lock()
	totalValue := sim.portfolio.Cash + sim.portfolioValueLocked()
	starting := sim.StartingCash
	sim.mu.Unlock()

	score := util.DefaultMaxScore
	if totalValue < starting {
		score = int(totalValue / starting * 100)
		if score > 99 {
			score = 99
		}
	}

	result, err := s.Progress.SubmitScore(userID, moduleID, score, util.DefaultMaxScore)
	if err != nil {
		// 成绩存储不可用时保留模拟现场，学员可重试提交
		return nil, err
	}

	s.End(userID)
	return result, nil
}

// clampPrice 价格永不触零或为负：钳制到严格正的下限
func clampPrice(p float64) float64 {
	if p < util.PriceFloor {
		return util.PriceFloor
	}
	return p
}
