package catalog

// InstrumentSeed 行情模拟启动时的标的初始数据。
// Volatility 取 (0,1)，控制每次刷新时随机扰动的幅度
type InstrumentSeed struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Sector     string  `json:"sector"`
	Price      float64 `json:"price"`
	Volatility float64 `json:"volatility"`
}

// EventScope 事件的作用范围
type EventScope string

const (
	ScopeInstrument EventScope = "instrument" // 单一标的
	ScopeSector     EventScope = "sector"     // 同行业全部标的
	ScopeMarket     EventScope = "market"     // 全市场
)

// MarketEvent 一次性乘数冲击。DurationSec 只决定前端横幅展示多久，
// 价格冲击在注入时一次性生效且不会随横幅消失而回退
type MarketEvent struct {
	ID          string     `json:"id"`
	Headline    string     `json:"headline"`
	Scope       EventScope `json:"scope"`
	Target      string     `json:"target"` // 标的 ID 或行业名，市场级事件为空
	Multiplier  float64    `json:"multiplier"`
	DurationSec int        `json:"durationSec"`
}

var defaultInstruments = []InstrumentSeed{
	{ID: "NOVA", Name: "Nova Robotics", Sector: "tech", Price: 120.00, Volatility: 0.06},
	{ID: "BYTE", Name: "ByteField Software", Sector: "tech", Price: 85.50, Volatility: 0.05},
	{ID: "SOLR", Name: "Solaris Energy", Sector: "energy", Price: 42.75, Volatility: 0.08},
	{ID: "PETRO", Name: "PetroNova Fuels", Sector: "energy", Price: 58.20, Volatility: 0.07},
	{ID: "VITA", Name: "VitaCare Health", Sector: "health", Price: 96.40, Volatility: 0.03},
	{ID: "BANK", Name: "Meridian Bank", Sector: "finance", Price: 64.10, Volatility: 0.04},
	{ID: "FARM", Name: "GreenField Agro", Sector: "consumer", Price: 28.90, Volatility: 0.05},
}

var defaultEvents = []MarketEvent{
	{ID: "tech-breakthrough", Headline: "芯片技术重大突破，科技股大涨", Scope: ScopeSector, Target: "tech", Multiplier: 1.15, DurationSec: 20},
	{ID: "data-breach", Headline: "Nova Robotics 曝出数据泄露事件", Scope: ScopeInstrument, Target: "NOVA", Multiplier: 0.82, DurationSec: 15},
	{ID: "oil-spike", Headline: "国际油价飙升，能源板块走强", Scope: ScopeSector, Target: "energy", Multiplier: 1.12, DurationSec: 20},
	{ID: "rate-hike", Headline: "央行宣布加息，市场整体承压", Scope: ScopeMarket, Multiplier: 0.93, DurationSec: 30},
	{ID: "drug-approval", Headline: "VitaCare 新药获批上市", Scope: ScopeInstrument, Target: "VITA", Multiplier: 1.20, DurationSec: 15},
	{ID: "bull-run", Headline: "利好政策出台，全市场普涨", Scope: ScopeMarket, Multiplier: 1.08, DurationSec: 30},
	{ID: "bank-scandal", Headline: "Meridian Bank 遭监管调查", Scope: ScopeInstrument, Target: "BANK", Multiplier: 0.78, DurationSec: 15},
	{ID: "harvest-boom", Headline: "农产品丰收，消费板块回暖", Scope: ScopeSector, Target: "consumer", Multiplier: 1.10, DurationSec: 20},
}
