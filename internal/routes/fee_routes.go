package routes

import (
	"github.com/gin-gonic/gin"

	"dues_tracker/internal/controllers"
	"dues_tracker/internal/middleware"
)

func FeeRoutes(r *gin.Engine, ctl *controllers.FeeController) {
	fees := r.Group("/fees")
	fees.Use(middleware.RequireAuth())
	{
		fees.POST("", ctl.Add)
		fees.GET("", ctl.List)
		fees.PUT("/:id", ctl.Update)
		fees.DELETE("/:id", ctl.Delete)
		fees.GET("/:id/assignments", ctl.Assignments)
		fees.PUT("/assignments/:id", ctl.Pay)
	}
}
