package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/siamvision/helmet-reports-backend-go/internal/config"
	"github.com/siamvision/helmet-reports-backend-go/internal/handler"
	"github.com/siamvision/helmet-reports-backend-go/internal/middleware"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, reportHandler *handler.ReportHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Helmet Reports API is running",
		})
	})

	// API 路由组
	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(60, time.Minute))
	if cfg.JWTSecret != "" {
		api.Use(middleware.Auth(cfg.JWTSecret))
	}
	{
		reports := api.Group("/reports")
		{
			reports.GET("/daily", reportHandler.GetDailyReport)
			reports.GET("/by-area", reportHandler.GetAreaReport)
			reports.GET("/by-contractor", reportHandler.GetContractorReport)
			reports.GET("/monthly", reportHandler.GetMonthlyReport)
			reports.GET("/records", reportHandler.GetRecords)
		}

		meta := api.Group("/meta")
		{
			meta.GET("/filters", reportHandler.GetFilterOptions)
		}
	}

	return r
}
