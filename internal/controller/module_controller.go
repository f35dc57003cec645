package controller

import (
	"finlit_backend/internal/catalog"
	"finlit_backend/internal/service"
	"finlit_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ModuleController 课程目录：模块列表和题目（正确答案不出网）
type ModuleController struct {
	Catalog  *catalog.Catalog
	Progress *service.ProgressService
}

func NewModuleController(cat *catalog.Catalog, progress *service.ProgressService) *ModuleController {
	return &ModuleController{Catalog: cat, Progress: progress}
}

type moduleSummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	PassPercent float64 `json:"passPercent"`
	Questions   int     `json:"questions"`
	Passed      bool    `json:"passed"`
}

// @Summary 模块列表
// @Description 课程模块目录及当前学员的通关状态
// @Tags 课程
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /modules [get]
func (c *ModuleController) ListModules(ctx *gin.Context) {
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

	passedSet := make(map[string]bool, len(progress.ModuleScores))
	for _, ms := range progress.ModuleScores {
		passedSet[ms.ModuleID] = ms.Passed
	}

	defs := c.Catalog.Modules()
	out := make([]moduleSummary, 0, len(defs))
	for _, def := range defs {
		out = append(out, moduleSummary{
			ID:          def.ID,
			Name:        def.Name,
			Description: def.Description,
			PassPercent: def.PassPercent,
			Questions:   len(def.Questions),
			Passed:      passedSet[def.ID],
		})
	}

	util.Success(ctx, out)
}

// @Summary 模块题目
// @Description 某模块的测验题目（不含正确答案）
// @Tags 课程
// @Produce json
// @Security ApiKeyAuth
// @Param moduleId path string true "模块ID"
// @Success 200 {object} util.Response
// @Router /modules/{moduleId}/quiz [get]
func (c *ModuleController) GetModuleQuiz(ctx *gin.Context) {
	moduleID := ctx.Param("moduleId")

	def, err := c.Catalog.Module(moduleID)
	if err != nil {
		util.NotFound(ctx)
		return
	}

	util.Success(ctx, gin.H{
		"moduleId":    def.ID,
		"name":        def.Name,
		"passPercent": def.PassPercent,
		"questions":   def.Questions,
	})
}
