package app

import (
	"course_track_backend/docs"
	"course_track_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		api.GET("/courses", c.course.ListCourses)
		api.POST("/courses", c.course.AddCourse)
		api.PUT("/courses/:id", c.course.UpdateCourse)
		api.DELETE("/courses/:id", c.course.DeleteCourse)
		api.POST("/courses/:id/toggle", c.course.ToggleStatus)

		api.POST("/courses/:id/play", c.course.PlayNext)
		api.POST("/courses/:id/progress", c.course.MarkProgress)
		api.POST("/courses/:id/play-missed", c.course.PlayMissed)
		api.POST("/courses/:id/strikes/:strikeId/redeem", c.course.RedeemStrike)

		api.GET("/courses/:id/videos", c.course.ListVideos)
		api.GET("/courses/:id/logo", c.course.Logo)

		api.GET("/settings/theme", c.settings.GetTheme)
		api.PUT("/settings/theme", c.settings.PutTheme)
	}
}
