package app

import (
	"quizkey_backend/docs"
	"quizkey_backend/internal/config"
	"quizkey_backend/internal/middleware"
	"quizkey_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, s *services, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需激活码)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/license/validate", c.license.Validate)
		public.POST("/admin/login", c.admin.Login)
	}

	// 2. 激活码保护的路由
	licensed := router.Group("/api")
	licensed.Use(middleware.LicenseMiddleware(s.license))
	{
		progress := licensed.Group("/progress")
		{
			progress.GET("", c.progress.Overview)
			progress.POST("/attempts", c.progress.RecordAttempt)
			progress.GET("/sections/:sectionId", c.progress.GetSection)
		}

		session := licensed.Group("/sections/:sectionId/session")
		{
			session.POST("", c.session.Start)
			session.GET("", c.session.Resume)
			session.POST("/answers", c.session.RecordAnswer)
			session.POST("/finish", c.session.Finish)
		}

		licensed.POST("/bookmarks", c.bookmark.Add)
		licensed.GET("/bookmarks", c.bookmark.List)
		licensed.DELETE("/bookmarks/:questionId", c.bookmark.Remove)

		licensed.POST("/wrong-answers", c.wrongAnswer.Record)
		licensed.GET("/wrong-answers", c.wrongAnswer.List)
	}

	// 3. 管理员路由
	admin := router.Group("/api/admin")
	admin.Use(middleware.AdminAuthMiddleware(cfg))
	{
		admin.PUT("/password", c.admin.ChangePassword)

		admin.POST("/licenses", c.admin.CreateLicense)
		admin.GET("/licenses", c.admin.ListLicenses)
		admin.GET("/licenses/:key", c.admin.GetLicense)
		admin.PUT("/licenses/:key", c.admin.UpdateLicense)
		admin.POST("/licenses/:key/deactivate", c.admin.DeactivateLicense)
		admin.DELETE("/licenses/:key", c.admin.DeleteLicense)

		admin.GET("/settings/:key", c.admin.GetSetting)
		admin.PUT("/settings/:key", c.admin.SetSetting)
	}
}
