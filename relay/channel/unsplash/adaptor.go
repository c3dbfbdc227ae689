package unsplash

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
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
	logger.Infof(ctx, "searching Unsplash for %d photos", request.ImageCount)
	return channel.RelayImage(ctx, a, meta, request, providerLabel)
}

func (a *Adaptor) GetRequestMethod() string {
	return http.MethodGet
}

func (a *Adaptor) GetRequestURL(meta *util.RelayMeta, request *model.GenerationRequest) (string, error) {
	query := url.Values{}
	query.Set("query", BuildQuery(request.Prompt, request.Style))
	query.Set("per_page", strconv.Itoa(request.ImageCount))
	query.Set("orientation", Orientation)
	query.Set("content_filter", ContentFilter)
	if color, ok := StyleColors[request.Style]; ok {
		query.Set("color", color)
	}
	return fmt.Sprintf("%s%s?%s", strings.TrimSuffix(meta.BaseURL, "/"), searchPath, query.Encode()), nil
}

func (a *Adaptor) SetupRequestHeader(req *http.Request, meta *util.RelayMeta) error {
	req.Header.Set("Authorization", "Client-ID "+meta.APIKey)
	req.Header.Set("Accept-Version", "v1")
	return nil
}

func (a *Adaptor) ConvertImageRequest(request *model.GenerationRequest) (any, error) {
	return nil, nil
}

func (a *Adaptor) DoResponse(resp *http.Response, request *model.GenerationRequest) ([]model.ImageRecord, *model.ErrorWithStatusCode) {
	if !channel.IsSuccessStatus(resp.StatusCode) {
		return nil, model.ProviderError(errorMessage(resp))
	}

	var searchResponse SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResponse); err != nil {
		return nil, channel.DecodeError(err, providerLabel)
	}
	if len(searchResponse.Results) == 0 {
		return nil, model.NotFoundError(fmt.Sprintf("No images found for the prompt '%s'. Please try another search term.", request.Prompt))
	}

	images := make([]model.ImageRecord, 0, len(searchResponse.Results))
	for _, photo := range searchResponse.Results {
		id := photo.Id
		if id == "" {
			id = helper.GenImageID()
		}
		images = append(images, model.ImageRecord{
			Id:      id,
			Url:     photo.Urls.Regular,
			FullUrl: photo.Urls.Full,
			Prompt:  request.Prompt,
			Credit:  credit(photo.User),
		})
	}
	return images, nil
}

func (a *Adaptor) GetChannelName() string {
	return "unsplash"
}

func credit(user *User) *model.Credit {
	c := &model.Credit{
		Name: DefaultCreditName,
		Link: DefaultCreditLink,
	}
	if user == nil {
		return c
	}
	if user.Name != "" {
		c.Name = user.Name
	}
	if user.Links != nil && user.Links.Html != "" {
		c.Link = withReferral(user.Links.Html)
	}
	return c
}

func withReferral(link string) string {
	if strings.Contains(link, "?") {
		return link + "&" + referralQuery
	}
	return link + "?" + referralQuery
}

func errorMessage(resp *http.Response) string {
	var errorResponse ErrorResponse
	body := channel.ReadErrorBody(resp)
	if err := json.Unmarshal(body, &errorResponse); err == nil && len(errorResponse.Errors) > 0 {
		return "Unsplash API error: " + strings.Join(errorResponse.Errors, ", ")
	}
	return fmt.Sprintf("Unsplash API request failed with status code %d", resp.StatusCode)
}
