package middleware

import (
	"github.com/backbenchers/image-api/common/helper"
	"github.com/backbenchers/image-api/common/logger"
	"github.com/backbenchers/image-api/relay/model"
	"github.com/gin-gonic/gin"
)

func abortWithMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, model.ImageResponse{
		Success: false,
		Message: helper.MessageWithRequestId(message, c.GetString(logger.RequestIdKey)),
	})
	c.Abort()
	logger.Error(c.Request.Context(), message)
}
