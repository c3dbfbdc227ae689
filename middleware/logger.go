package middleware

import (
	"encoding/json"
	"time"

	"github.com/backbenchers/image-api/common/config"
	"github.com/backbenchers/image-api/common/logger"
	"github.com/gin-gonic/gin"
)

// AccessLogEntry is one JSON access log line.
type AccessLogEntry struct {
	Ts        string `json:"ts"`
	Level     string `json:"level"`
	RequestId string `json:"request_id"`
	Status    int    `json:"status"`
	LatencyMs int64  `json:"latency_ms"`
	ClientIP  string `json:"client_ip"`
	Method    string `json:"method"`
	Path      string `json:"path"`
	Service   string `json:"service"`
	Instance  string `json:"instance"`
}

func SetUpLogger(server *gin.Engine) {
	server.Use(gin.LoggerWithFormatter(formatAccessLog))
}

// formatAccessLog only reports non-200 responses.
func formatAccessLog(param gin.LogFormatterParams) string {
	if param.StatusCode == 200 {
		return ""
	}

	var requestID string
	if param.Keys != nil {
		if v, ok := param.Keys[logger.RequestIdKey]; ok {
			requestID, _ = v.(string)
		}
	}

	level := "info"
	if param.StatusCode >= 500 {
		level = "error"
	} else if param.StatusCode >= 400 {
		level = "warn"
	}

	entry := AccessLogEntry{
		Ts:        param.TimeStamp.Format(time.RFC3339Nano),
		Level:     level,
		RequestId: requestID,
		Status:    param.StatusCode,
		LatencyMs: param.Latency.Milliseconds(),
		ClientIP:  param.ClientIP,
		Method:    param.Method,
		Path:      param.Path,
		Service:   config.ServiceName,
		Instance:  config.InstanceId,
	}

	jsonBytes, err := json.Marshal(entry)
	if err != nil {
		return `{"level":"error","msg":"access log marshal error"}` + "\n"
	}
	return string(jsonBytes) + "\n"
}
