package stats

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("/stats", handler.GetDashboardStats)
	}
}
