package app

import (
	"database/sql"

	"go-leavedesk/internal/department"
	"go-leavedesk/internal/employee"
	"go-leavedesk/internal/leaverequest"
	"go-leavedesk/internal/messaging/kafka"
	"go-leavedesk/internal/middleware"
	"go-leavedesk/internal/position"
	"go-leavedesk/internal/stats"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveRequestRepo := leaverequest.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	positionRepo := position.NewRepository(gormDB)
	statsRepo := stats.NewRepository(gormDB)

	// --- Services ---
	departmentService := department.NewService(departmentRepo, rdb)
	leaveRequestService := leaverequest.NewServiceWithOutbox(db, leaveRequestRepo, employeeRepo, outboxRepo)
	positionService := position.NewService(positionRepo, rdb)
	statsService := stats.NewService(statsRepo)

	// --- Handlers ---
	departmentHandler := department.NewHandler(departmentService)
	leaveRequestHandler := leaverequest.NewHandlerWithRedis(leaveRequestService, rdb)
	positionHandler := position.NewHandler(positionService)
	statsHandler := stats.NewHandler(statsService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(middleware.RequestID())
	api.Use(middleware.RateLimitByIP(rate.Limit(20), 40))
	{
		department.RegisterRoutes(api, departmentHandler)
		leaverequest.RegisterRoutes(api, leaveRequestHandler, rdb)
		position.RegisterRoutes(api, positionHandler)
		stats.RegisterRoutes(api, statsHandler)
	}

	return nil
}
