package monitor

import (
	"fmt"
	"runtime"
	"time"

	"github.com/backbenchers/image-api/common/config"
	"github.com/backbenchers/image-api/common/logger"
)

type MemoryStats struct {
	AllocMB      uint64 `json:"alloc_mb"`
	TotalAllocMB uint64 `json:"total_alloc_mb"`
	SysMB        uint64 `json:"sys_mb"`
	NumGC        uint32 `json:"num_gc"`
}

type RuntimeStats struct {
	Goroutines int         `json:"goroutines"`
	Memory     MemoryStats `json:"memory"`
}

func GetRuntimeStats() RuntimeStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return RuntimeStats{
		Goroutines: runtime.NumGoroutine(),
		Memory: MemoryStats{
			AllocMB:      m.Alloc / 1024 / 1024,
			TotalAllocMB: m.TotalAlloc / 1024 / 1024,
			SysMB:        m.Sys / 1024 / 1024,
			NumGC:        m.NumGC,
		},
	}
}

// MonitorGoroutines logs goroutine and memory usage every interval. It never returns.
func MonitorGoroutines(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		stats := GetRuntimeStats()
		if stats.Goroutines > 5000 {
			logger.SysError(fmt.Sprintf("high goroutine count detected: %d", stats.Goroutines))
		} else if stats.Goroutines > 2000 {
			logger.SysLog(fmt.Sprintf("goroutine count elevated: %d", stats.Goroutines))
		} else if config.DebugEnabled {
			logger.SysLog(fmt.Sprintf("goroutine count: %d", stats.Goroutines))
		}
		if config.DebugEnabled {
			logger.SysLog(fmt.Sprintf("memory: Alloc=%dMB, TotalAlloc=%dMB, Sys=%dMB, NumGC=%d",
				stats.Memory.AllocMB, stats.Memory.TotalAllocMB, stats.Memory.SysMB, stats.Memory.NumGC))
		}
	}
}
