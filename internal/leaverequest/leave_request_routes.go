package leaverequest

import (
	"go-leavedesk/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb *redis.Client,
) {
	requests := r.Group("/leave-requests")
	{
		requests.POST("", middleware.Idempotency(rdb), handler.Create)
		requests.GET("", handler.GetAll)
		requests.GET("/:id", handler.GetById)
		requests.PATCH("/:id/status", handler.UpdateStatus)
	}
}
