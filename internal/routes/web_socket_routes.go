package routes

import (
	"github.com/gin-gonic/gin"

	"dues_tracker/internal/controllers"
)

func WebSocketRoutes(r *gin.Engine, ctl *controllers.FeedController) {
	// Token travels as a query parameter; see HandleTransactionFeed.
	r.GET("/ws/transactions", ctl.HandleTransactionFeed)
}
