package routes

import (
	"time"

	"printshop_ops/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func setMiddlewares(router *gin.Engine, httpMetrics *metrics.HTTPMetrics, logger *zap.Logger) {
	router.Use(requestLogger(logger))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("[http] recovered from panic",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
		)
		c.AbortWithStatus(500)
	}))
	router.Use(httpMetrics.Middleware())
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "/metrics" {
			return
		}
		logger.Info("[http] request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("route", route),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
