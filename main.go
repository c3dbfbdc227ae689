package main

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/backbenchers/image-api/common"
	"github.com/backbenchers/image-api/common/config"
	"github.com/backbenchers/image-api/common/logger"
	"github.com/backbenchers/image-api/middleware"
	"github.com/backbenchers/image-api/monitor"
	"github.com/backbenchers/image-api/relay/util"
	"github.com/backbenchers/image-api/router"
	"github.com/gin-gonic/gin"
)

//go:embed web/*
var buildFS embed.FS

func main() {
	logger.SetupLogger()
	logger.SysLog(fmt.Sprintf("%s image API %s started", config.SystemName, config.Version))
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	if config.DebugEnabled {
		logger.SysLog("running in debug mode")
	}

	meta, err := util.GetRelayMeta()
	if err != nil {
		logger.FatalLog("failed to initialize image provider: " + err.Error())
	}
	logger.SysLog(fmt.Sprintf("using image provider %s", meta.ProviderName()))
	if meta.APIKey == "" {
		// requests fail with a configuration error until the key is set
		logger.SysError(fmt.Sprintf("%s is not set, image generation requests will be rejected", meta.CredentialName))
	}

	go monitor.MonitorGoroutines(30 * time.Second)

	webFS, err := fs.Sub(buildFS, "web")
	if err != nil {
		logger.FatalLog("failed to load web assets: " + err.Error())
	}

	// Initialize HTTP server
	server := gin.New()
	server.Use(gin.Recovery())
	server.Use(middleware.RequestId())
	middleware.SetUpLogger(server)
	if config.EnableMetric {
		server.Use(middleware.Metrics())
	}

	router.SetRouter(server, webFS, meta)

	var port = os.Getenv("PORT")
	if port == "" {
		port = strconv.Itoa(*common.Port)
	}
	logger.SysLog("server listening on port " + port)
	err = server.Run(":" + port)
	if err != nil {
		logger.FatalLog("failed to start HTTP server: " + err.Error())
	}
}
