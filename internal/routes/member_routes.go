package routes

import (
	"github.com/gin-gonic/gin"

	"dues_tracker/internal/controllers"
	"dues_tracker/internal/middleware"
)

func MemberRoutes(r *gin.Engine, ctl *controllers.MemberController) {
	members := r.Group("/members")
	members.Use(middleware.RequireAuth())
	{
		members.POST("", ctl.Add)
		members.GET("", ctl.List)
		members.PUT("/:id", ctl.Update)
		members.DELETE("/:id", ctl.Delete)
		members.POST("/import", ctl.Import)
	}
}
