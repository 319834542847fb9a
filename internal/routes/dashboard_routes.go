package routes

import (
	"github.com/gin-gonic/gin"

	"dues_tracker/internal/controllers"
	"dues_tracker/internal/middleware"
)

func DashboardRoutes(r *gin.Engine, ctl *controllers.DashboardController) {
	r.GET("/dashboard", middleware.RequireAuth(), ctl.Summary)
}
