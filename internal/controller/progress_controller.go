package controller

import (
	"finlit_backend/internal/service"
	"finlit_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	Progress *service.ProgressService
	Streak   *service.StreakService
}

func NewProgressController(progress *service.ProgressService, streak *service.StreakService) *ProgressController {
	return &ProgressController{Progress: progress, Streak: streak}
}

type submitScoreRequest struct {
	ModuleID string `json:"moduleId" binding:"required"`
	Score    int    `json:"score"`
	MaxScore int    `json:"maxScore"`
}

// @Summary 进度快照
// @Description 学员全部模块成绩、连续天数和成就
// @Tags 进度
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /progress [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	progress, err := c.Progress.GetProgress(user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}

// @Summary 模块通关状态
// @Description 某模块是否已通过，无记录视为未通过
// @Tags 进度
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path string true "模块ID"
// @Success 200 {object} util.Response
// @Router /progress/{moduleId}/passed [get]
func (c *ProgressController) IsModulePassed(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	passed, err := c.Progress.IsModulePassed(user.UserID, ctx.Param("moduleId"))
	if err != nil {
		if err == util.ErrModuleNotFound {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"passed": passed})
}

// @Summary 直接提交成绩
// @Description 提交一次模块成绩（沉浸式模块在前端算分后调用）
// @Tags 进度
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body submitScoreRequest true "成绩"
// @Success 200 {object} util.Response
// @Router /scores [post]
func (c *ProgressController) SubmitScore(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req submitScoreRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if req.MaxScore == 0 {
		req.MaxScore = util.DefaultMaxScore
	}

	result, err := c.Progress.SubmitScore(user.UserID, req.ModuleID, req.Score, req.MaxScore)
	if err != nil {
		if err == util.ErrModuleNotFound {
			util.NotFound(ctx)
			return
		}
		util.PersistenceError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// @Summary 重置模块
// @Description 整条删除成绩记录，模块回到未尝试状态。重复重置是空操作
// @Tags 进度
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path string true "模块ID"
// @Success 200 {object} util.Response
// @Router /progress/{moduleId} [delete]
func (c *ProgressController) ResetModule(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.Progress.ResetModule(user.UserID, ctx.Param("moduleId")); err != nil {
		if err == util.ErrModuleNotFound {
			util.NotFound(ctx)
			return
		}
		util.PersistenceError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"reset": true})
}

// @Summary 每日签到
// @Description 计算并推进连续活跃天数，同一天内幂等
// @Tags 进度
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /streak [post]
func (c *ProgressController) CalculateStreak(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.Streak.CalculateDailyStreak(user.UserID)
	if err != nil {
		util.PersistenceError(ctx, err)
		return
	}

	util.Success(ctx, result)
}
