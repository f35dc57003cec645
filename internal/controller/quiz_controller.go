package controller

import (
	"finlit_backend/internal/service"
	"finlit_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

type selectOptionRequest struct {
	QuestionIndex int `json:"questionIndex"`
	OptionIndex   int `json:"optionIndex"`
}

type submitAnswerRequest struct {
	QuestionIndex int `json:"questionIndex"`
}

func sessionView(s *service.QuizSession) gin.H {
	return gin.H{
		"sessionId":    s.ID,
		"moduleId":     s.ModuleID,
		"state":        s.State,
		"currentIndex": s.CurrentIndex,
		"answered":     len(s.Answers),
		"total":        len(s.Questions),
		"score":        s.Score,
	}
}

// @Summary 开始测验
// @Description 为指定模块创建新的测验会话（已有会话被重建）
// @Tags 测验
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path string true "模块ID"
// @Success 200 {object} util.Response
// @Router /quiz/{moduleId}/start [post]
func (c *QuizController) Start(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	session, err := c.QuizService.Start(user.UserID, ctx.Param("moduleId"))
	if err != nil {
		if err == util.ErrModuleNotFound {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, sessionView(session))
}

// @Summary 选择选项
// @Description 为当前题目记录待提交的选项。已作答的题目是幂等空操作
// @Tags 测验
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path string true "模块ID"
// @Param body body selectOptionRequest true "选项"
// @Success 200 {object} util.Response
// @Router /quiz/{moduleId}/select [post]
func (c *QuizController) SelectOption(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req selectOptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.QuizService.Session(user.UserID, ctx.Param("moduleId"))
	if err != nil {
		util.NotFound(ctx)
		return
	}

	if err := session.SelectOption(req.QuestionIndex, req.OptionIndex); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, sessionView(session))
}

// @Summary 提交答案
// @Description 提交当前题目的答案并返回即时反馈
// @Tags 测验
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path string true "模块ID"
// @Param body body submitAnswerRequest true "题目下标"
// @Success 200 {object} util.Response
// @Router /quiz/{moduleId}/submit [post]
func (c *QuizController) SubmitAnswer(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req submitAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	session, err := c.QuizService.Session(user.UserID, ctx.Param("moduleId"))
	if err != nil {
		util.NotFound(ctx)
		return
	}

	feedback, err := session.SubmitAnswer(req.QuestionIndex)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, gin.H{
		"feedback": feedback,
		"session":  sessionView(session),
	})
}

// @Summary 下一题
// @Description 从反馈状态推进到下一题，最后一题后进入终态
// @Tags 测验
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path string true "模块ID"
// @Success 200 {object} util.Response
// @Router /quiz/{moduleId}/advance [post]
func (c *QuizController) Advance(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	session, err := c.QuizService.Session(user.UserID, ctx.Param("moduleId"))
	if err != nil {
		util.NotFound(ctx)
		return
	}

	if err := session.Advance(); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, sessionView(session))
}

// @Summary 重做测验
// @Description 丢弃全部答案回到第一题。不触碰已持久化的成绩
// @Tags 测验
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path string true "模块ID"
// @Success 200 {object} util.Response
// @Router /quiz/{moduleId}/reset [post]
func (c *QuizController) Reset(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	session, err := c.QuizService.Session(user.UserID, ctx.Param("moduleId"))
	if err != nil {
		util.NotFound(ctx)
		return
	}

	session.Reset()
	util.Success(ctx, sessionView(session))
}

// @Summary 完成测验
// @Description 终态会话的成绩交接给进度引擎并落库
// @Tags 测验
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path string true "模块ID"
// @Success 200 {object} util.Response
// @Router /quiz/{moduleId}/complete [post]
func (c *QuizController) Complete(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.QuizService.Complete(user.UserID, ctx.Param("moduleId"))
	if err != nil {
		switch err {
		case util.ErrSessionNotFound:
			util.NotFound(ctx)
		case util.ErrSessionNotDone:
			util.BadRequest(ctx, err.Error())
		case util.ErrModuleNotFound:
			util.NotFound(ctx)
		default:
			// 存储层不可用：会话和内存成绩保留，学员可重试
			util.PersistenceError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}
