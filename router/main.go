package router

import (
	"fmt"
	"io/fs"

	"github.com/backbenchers/image-api/common/config"
	"github.com/backbenchers/image-api/common/logger"
	"github.com/backbenchers/image-api/middleware"
	"github.com/backbenchers/image-api/relay/util"
	"github.com/gin-gonic/gin"
)

func SetRouter(router *gin.Engine, webFS fs.FS, meta *util.RelayMeta) {
	// engine level so preflight requests, which match no route, still get answered
	router.Use(middleware.CORS())
	SetApiRouter(router, meta)
	if config.EnableMetric {
		SetMetricRouter(router)
		logger.SysLog("metrics enabled at /metrics")
	}
	SetSwaggerRouter(router)
	logger.SysLog(fmt.Sprintf("Swagger UI enabled at /swagger/index.html (doc: %s)", config.SwaggerJSONURL))
	SetWebRouter(router, webFS)
}
