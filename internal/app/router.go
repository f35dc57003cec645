package app

import (
	"finlit_backend/docs"
	"finlit_backend/internal/config"
	"finlit_backend/internal/middleware"
	"finlit_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	// 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/me", c.auth.Me)
		authGroup.PUT("/me", c.user.UpdateProfile)
		authGroup.GET("/me/activity", c.user.GetActivity)

		// 课程目录
		authGroup.GET("/modules", c.module.ListModules)
		authGroup.GET("/modules/:moduleId/quiz", c.module.GetModuleQuiz)

		// 测验会话
		quiz := authGroup.Group("/quiz/:moduleId")
		{
			quiz.POST("/start", c.quiz.Start)
			quiz.POST("/select", c.quiz.SelectOption)
			quiz.POST("/submit", c.quiz.SubmitAnswer)
			quiz.POST("/advance", c.quiz.Advance)
			quiz.POST("/reset", c.quiz.Reset)
			quiz.POST("/complete", c.quiz.Complete)
		}

		// 进度与成绩
		authGroup.GET("/progress", c.progress.GetProgress)
		authGroup.GET("/progress/:moduleId/passed", c.progress.IsModulePassed)
		authGroup.DELETE("/progress/:moduleId", c.progress.ResetModule)
		authGroup.POST("/scores", c.progress.SubmitScore)
		authGroup.POST("/streak", c.progress.CalculateStreak)

		// 成就系统
		authGroup.GET("/achievements", c.achievement.GetUserAchievements)
		authGroup.GET("/achievements/leaderboard", c.achievement.GetLeaderboard)

		// 股市模拟
		market := authGroup.Group("/market")
		{
			market.POST("/start", c.market.Start)
			market.GET("/state", c.market.State)
			market.POST("/tick", c.market.Tick)
			market.POST("/pause", c.market.Pause)
			market.POST("/resume", c.market.Resume)
			market.POST("/events", c.market.InjectEvent)
			market.POST("/buy", c.market.Buy)
			market.POST("/sell", c.market.Sell)
			market.POST("/complete", c.market.Complete)
		}
	}
}
