package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/backbenchers/image-api/common/logger"
	"github.com/gin-gonic/gin"
)

func RelayPanicRecover() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error(c.Request.Context(), fmt.Sprintf("panic detected: %v", err))
				logger.Error(c.Request.Context(), fmt.Sprintf("stacktrace from panic: %s", string(debug.Stack())))
				abortWithMessage(c, http.StatusInternalServerError, "An unexpected error occurred")
			}
		}()
		c.Next()
	}
}
