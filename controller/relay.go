package controller

import (
	"net/http"

	"github.com/backbenchers/image-api/common/helper"
	"github.com/backbenchers/image-api/common/logger"
	relaycontroller "github.com/backbenchers/image-api/relay/controller"
	"github.com/backbenchers/image-api/relay/model"
	"github.com/backbenchers/image-api/relay/util"
	"github.com/gin-gonic/gin"
)

// GenerateImage serves POST /api/generate with the provider resolved at startup.
func GenerateImage(meta *util.RelayMeta) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		logger.Infof(ctx, "received image generation request, provider=%s", meta.ProviderName())

		errWithCode := relaycontroller.RelayImageHelper(c, meta)
		if errWithCode == nil {
			return
		}
		logger.Errorf(ctx, "image generation failed: type=%s, status=%d, message=%s",
			errWithCode.Type, errWithCode.StatusCode, errWithCode.Message)

		message := errWithCode.Message
		if errWithCode.StatusCode >= http.StatusInternalServerError {
			message = helper.MessageWithRequestId(message, c.GetString(logger.RequestIdKey))
		}
		c.JSON(errWithCode.StatusCode, model.ImageResponse{
			Success: false,
			Message: message,
		})
	}
}
