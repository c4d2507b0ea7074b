package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/stevehanper/beetime-backend/config"
	"github.com/stevehanper/beetime-backend/internal/api/handler"
	"github.com/stevehanper/beetime-backend/internal/api/middleware"
	"github.com/stevehanper/beetime-backend/pkg/jwt"
	"github.com/stevehanper/beetime-backend/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimit(1 << 20)) // 1MB
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证，凭证接口限流）
		credLimit := middleware.RateLimit(rdb, 10, time.Minute)
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", credLimit, h.Auth.Signup)
			auth.POST("/login", credLimit, h.Auth.Login)
			auth.POST("/google", credLimit, h.Auth.GoogleAuth)
		}

		// 工作地点列表（公开：注册前需要选择地点）
		v1.GET("/locations", h.Location.ListLocations)

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 认证模块（需要认证）
			authorized.PUT("/auth/update-user-info", h.Auth.UpdateUserInfo)
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.GetCurrentUser)

			// 考勤模块
			timeEntries := authorized.Group("/time-entries")
			{
				timeEntries.POST("", h.TimeEntry.CreateTimeEntry)
				timeEntries.GET("", h.TimeEntry.ListTimeEntries)
				timeEntries.GET("/export", h.TimeEntry.ExportTimesheet)
				timeEntries.GET("/calendar", h.TimeEntry.ExportCalendar)
				timeEntries.PATCH("/:id", h.TimeEntry.UpdateTimeEntry)
			}
		}
	}

	return r
}
