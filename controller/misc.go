package controller

import (
	"net/http"

	"github.com/backbenchers/image-api/common/config"
	"github.com/backbenchers/image-api/monitor"
	"github.com/backbenchers/image-api/relay/util"
	"github.com/gin-gonic/gin"
)

func GetStatus(meta *util.RelayMeta) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "",
			"data": gin.H{
				"version":     config.Version,
				"start_time":  config.StartTime,
				"system_name": config.SystemName,
				"provider":    meta.ProviderName(),
				// only whether the credential is set, never its value
				"credential_configured": meta.APIKey != "",
				"metric_enabled":        config.EnableMetric,
			},
		})
	}
}

func GetHealth(c *gin.Context) {
	stats := monitor.GetRuntimeStats()
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"goroutines": stats.Goroutines,
		"memory": gin.H{
			"alloc_mb":       stats.Memory.AllocMB,
			"total_alloc_mb": stats.Memory.TotalAllocMB,
			"sys_mb":         stats.Memory.SysMB,
			"num_gc":         stats.Memory.NumGC,
		},
	})
}
