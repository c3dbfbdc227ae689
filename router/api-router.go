package router

import (
	"github.com/backbenchers/image-api/controller"
	"github.com/backbenchers/image-api/middleware"
	"github.com/backbenchers/image-api/monitor"
	"github.com/backbenchers/image-api/relay/util"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func SetApiRouter(router *gin.Engine, meta *util.RelayMeta) {
	apiRouter := router.Group("/api")
	apiRouter.Use(gzip.Gzip(gzip.DefaultCompression))
	apiRouter.Use(middleware.RelayPanicRecover())
	{
		apiRouter.POST("/generate", controller.GenerateImage(meta))
		apiRouter.GET("/status", controller.GetStatus(meta))
		apiRouter.GET("/monitor/health", controller.GetHealth)
	}
}

func SetMetricRouter(router *gin.Engine) {
	router.GET("/metrics", gin.WrapH(monitor.Handler()))
}
