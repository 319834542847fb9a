package routes

import (
	"github.com/gin-gonic/gin"

	"dues_tracker/internal/controllers"
	"dues_tracker/internal/middleware"
)

func OrganizationRoutes(r *gin.Engine, ctl *controllers.OrganizationController) {
	org := r.Group("/organization")
	org.Use(middleware.RequireAuth())
	{
		org.GET("", ctl.Get)
		org.PUT("", ctl.Update)
	}
}
