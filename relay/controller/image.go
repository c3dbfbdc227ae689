package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/backbenchers/image-api/common/logger"
	"github.com/backbenchers/image-api/relay/constant"
	"github.com/backbenchers/image-api/relay/helper"
	"github.com/backbenchers/image-api/relay/model"
	"github.com/backbenchers/image-api/relay/util"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	messageEmptyPrompt = "Prompt cannot be empty"
	messageSuccess     = "Images generated successfully"
	messagePlaceholder = " (placeholder images used as StarryAI API is not available)"
)

// RelayImageHelper handles one generation request: validate, normalize,
// check the credential, invoke the configured provider and write the
// success envelope. Any failure is returned for the caller to render.
func RelayImageHelper(c *gin.Context, meta *util.RelayMeta) *model.ErrorWithStatusCode {
	// the upstream call is bounded by the client timeout, not by the caller staying connected
	ctx := context.WithoutCancel(c.Request.Context())

	imageRequest, errWithCode := getImageRequest(c)
	if errWithCode != nil {
		return errWithCode
	}
	request := imageRequest.Normalize()
	logger.Debugf(ctx, "normalized request: style=%s, imageCount=%d", request.Style, request.ImageCount)

	if meta.APIKey == "" {
		logger.Errorf(ctx, "%s is not configured", meta.CredentialName)
		return model.ConfigurationError(fmt.Sprintf("%s API credential is not configured, set %s", providerLabel(meta.APIType), meta.CredentialName))
	}

	adaptor := helper.GetAdaptor(meta.APIType)
	if adaptor == nil {
		return model.InternalError(fmt.Sprintf("invalid api type: %d", meta.APIType))
	}
	adaptor.Init(meta)

	images, errWithCode := adaptor.Generate(ctx, meta, request)
	if errWithCode != nil {
		return errWithCode
	}

	message := messageSuccess
	if meta.APIType == constant.APITypePlaceholder {
		message += messagePlaceholder
	}
	c.JSON(http.StatusOK, model.ImageResponse{
		Success: true,
		Images:  images,
		Message: message,
		Source:  adaptor.GetChannelName(),
	})
	return nil
}

func getImageRequest(c *gin.Context) (*model.ImageRequest, *model.ErrorWithStatusCode) {
	imageRequest := &model.ImageRequest{}
	err := c.ShouldBindJSON(imageRequest)
	if err != nil {
		return nil, model.ValidationError(bindErrorMessage(err))
	}
	if strings.TrimSpace(imageRequest.Prompt) == "" {
		return nil, model.ValidationError(messageEmptyPrompt)
	}
	return imageRequest, nil
}

func bindErrorMessage(err error) string {
	var validationErrors validator.ValidationErrors
	var typeError *json.UnmarshalTypeError
	switch {
	case errors.As(err, &validationErrors), errors.Is(err, io.EOF):
		return messageEmptyPrompt
	case errors.As(err, &typeError) && typeError.Field == "prompt":
		return "Prompt must be a string"
	}
	return "Invalid request body: " + err.Error()
}

func providerLabel(apiType int) string {
	switch apiType {
	case constant.APITypeUnsplash:
		return "Unsplash"
	default:
		return "StarryAI"
	}
}
