package controller

import (
	"finlit_backend/internal/service"
	"finlit_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// 股市模块的固定 ID，模拟完成成绩记在该模块名下
const stockModuleID = "stock-market"

type MarketController struct {
	Market *service.MarketService
}

func NewMarketController(market *service.MarketService) *MarketController {
	return &MarketController{Market: market}
}

type tradeRequest struct {
	InstrumentID string `json:"instrumentId" binding:"required"`
	Shares       int    `json:"shares" binding:"required"`
}

type injectEventRequest struct {
	EventID string `json:"eventId" binding:"required"`
}

// @Summary 开始模拟
// @Description 以目录种子数据新建行情模拟，已有模拟被终止替换
// @Tags 股市模拟
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /market/start [post]
func (c *MarketController) Start(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	sim := c.Market.StartSimulation(user.UserID)
	state, err := c.Market.State(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"simId": sim.ID, "state": state})
}

// @Summary 模拟快照
// @Description 当前标的价格、组合估值与活跃事件横幅
// @Tags 股市模拟
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /market/state [get]
func (c *MarketController) State(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	state, err := c.Market.State(user.UserID)
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, state)
}

// @Summary 暂停模拟
// @Tags 股市模拟
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /market/pause [post]
func (c *MarketController) Pause(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	sim, err := c.Market.Simulation(user.UserID)
	if err != nil {
		util.NotFound(ctx)
		return
	}

	sim.Pause()
	util.Success(ctx, gin.H{"paused": true})
}

// @Summary 恢复模拟
// @Tags 股市模拟
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /market/resume [post]
func (c *MarketController) Resume(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	sim, err := c.Market.Simulation(user.UserID)
	if err != nil {
		util.NotFound(ctx)
		return
	}

	sim.Resume()
	util.Success(ctx, gin.H{"paused": false})
}

// @Summary 手动刷新
// @Description 立即执行一次行情刷新，暂停中的模拟不受影响
// @Tags 股市模拟
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /market/tick [post]
func (c *MarketController) Tick(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	sim, err := c.Market.Simulation(user.UserID)
	if err != nil {
		util.NotFound(ctx)
		return
	}
	sim.Tick()

	state, err := c.Market.State(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, state)
}

// @Summary 注入事件
// @Description 注入目录事件：价格冲击立即生效，横幅按时长展示
// @Tags 股市模拟
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body injectEventRequest true "事件"
// @Success 200 {object} util.Response
// @Router /market/events [post]
func (c *MarketController) InjectEvent(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req injectEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	active, err := c.Market.InjectEvent(user.UserID, req.EventID)
	if err != nil {
		switch err {
		case util.ErrSessionNotFound, util.ErrEventUnknown:
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, active)
}

// @Summary 买入
// @Description 现金不足时整单拒绝、不改任何状态
// @Tags 股市模拟
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body tradeRequest true "订单"
// @Success 200 {object} util.Response
// @Router /market/buy [post]
func (c *MarketController) Buy(ctx *gin.Context) {
	c.trade(ctx, c.Market.Buy)
}

// @Summary 卖出
// @Description 超出持仓数量时整单拒绝
// @Tags 股市模拟
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body tradeRequest true "订单"
// @Success 200 {object} util.Response
// @Router /market/sell [post]
func (c *MarketController) Sell(ctx *gin.Context) {
	c.trade(ctx, c.Market.Sell)
}

func (c *MarketController) trade(ctx *gin.Context, op func(uint, string, int) error) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req tradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := op(user.UserID, req.InstrumentID, req.Shares); err != nil {
		switch err {
		case util.ErrSessionNotFound, util.ErrInstrumentUnknown:
			util.NotFound(ctx)
		default:
			// 本地校验失败：现金或持仓不足
			util.BadRequest(ctx, err.Error())
		}
		return
	}

	state, err := c.Market.State(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, state)
}

// @Summary 提交模拟成绩
// @Description 以组合表现结算股市模块成绩并交给进度引擎
// @Tags 股市模拟
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /market/complete [post]
func (c *MarketController) Complete(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.Market.Complete(user.UserID, stockModuleID)
	if err != nil {
		if err == util.ErrSessionNotFound {
			util.NotFound(ctx)
			return
		}
		// 存储层不可用：模拟现场保留，学员可重试
		util.PersistenceError(ctx, err)
		return
	}

	util.Success(ctx, result)
}
