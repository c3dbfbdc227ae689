package starryai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/backbenchers/image-api/common/helper"
	"github.com/backbenchers/image-api/common/logger"
	"github.com/backbenchers/image-api/relay/channel"
	"github.com/backbenchers/image-api/relay/model"
	"github.com/backbenchers/image-api/relay/util"
)

type Adaptor struct {
}

func (a *Adaptor) Init(meta *util.RelayMeta) {

}

func (a *Adaptor) Generate(ctx context.Context, meta *util.RelayMeta, request *model.GenerationRequest) ([]model.ImageRecord, *model.ErrorWithStatusCode) {
	logger.Infof(ctx, "requesting %d %s images from StarryAI", request.ImageCount, MapStyle(request.Style))
	return channel.RelayImage(ctx, a, meta, request, providerLabel)
}

func (a *Adaptor) GetRequestMethod() string {
	return http.MethodPost
}

func (a *Adaptor) GetRequestURL(meta *util.RelayMeta, request *model.GenerationRequest) (string, error) {
	return strings.TrimSuffix(meta.BaseURL, "/") + generationPath, nil
}

func (a *Adaptor) SetupRequestHeader(req *http.Request, meta *util.RelayMeta) error {
	req.Header.Set("Authorization", "Bearer "+meta.APIKey)
	return nil
}

func (a *Adaptor) ConvertImageRequest(request *model.GenerationRequest) (any, error) {
	if request == nil {
		return nil, fmt.Errorf("request is nil")
	}
	return &GenerationRequest{
		Prompt:         request.Prompt,
		Style:          MapStyle(request.Style),
		NumberOfImages: request.ImageCount,
		Width:          ImageWidth,
		Height:         ImageHeight,
	}, nil
}

func (a *Adaptor) DoResponse(resp *http.Response, request *model.GenerationRequest) ([]model.ImageRecord, *model.ErrorWithStatusCode) {
	if !channel.IsSuccessStatus(resp.StatusCode) {
		return nil, model.ProviderError(errorMessage(resp))
	}

	var generationResponse GenerationResponse
	if err := json.NewDecoder(resp.Body).Decode(&generationResponse); err != nil {
		return nil, channel.DecodeError(err, providerLabel)
	}

	images := make([]model.ImageRecord, 0, len(generationResponse.Generations)+len(generationResponse.Images))
	for _, generation := range generationResponse.Generations {
		images = append(images, newImageRecord(generation.Id, generation.ImageUrl, request.Prompt))
	}
	for _, image := range generationResponse.Images {
		images = append(images, newImageRecord(image.Id, image.Url, request.Prompt))
	}
	if len(images) == 0 {
		return nil, model.ProviderError("StarryAI API returned no images")
	}
	return images, nil
}

func (a *Adaptor) GetChannelName() string {
	return "starryai"
}

func newImageRecord(id any, url string, prompt string) model.ImageRecord {
	imageId := idString(id)
	if imageId == "" {
		imageId = helper.GenImageID()
	}
	return model.ImageRecord{
		Id:      imageId,
		Url:     url,
		FullUrl: url,
		Prompt:  prompt,
	}
}

// idString renders string or numeric upstream ids; anything else is treated as absent.
func idString(id any) string {
	switch v := id.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

func errorMessage(resp *http.Response) string {
	var errorResponse ErrorResponse
	body := channel.ReadErrorBody(resp)
	if err := json.Unmarshal(body, &errorResponse); err == nil {
		for _, message := range []string{errorResponse.Message, errorResponse.Error, errorResponse.Detail} {
			if message != "" {
				return "StarryAI API error: " + message
			}
		}
	}
	return fmt.Sprintf("StarryAI API request failed with status code %d", resp.StatusCode)
}
