package placeholder

import (
	"context"
	"time"

	"github.com/backbenchers/image-api/common/helper"
	"github.com/backbenchers/image-api/common/logger"
	"github.com/backbenchers/image-api/monitor"
	"github.com/backbenchers/image-api/relay/model"
	"github.com/backbenchers/image-api/relay/util"
)

// Adaptor answers without any network call: it waits PlaceholderDelay and
// returns the first ImageCount entries of ImageURLs with fresh ids.
type Adaptor struct {
}

func (a *Adaptor) Init(meta *util.RelayMeta) {

}

func (a *Adaptor) Generate(ctx context.Context, meta *util.RelayMeta, request *model.GenerationRequest) ([]model.ImageRecord, *model.ErrorWithStatusCode) {
	logger.Warn(ctx, "StarryAI API appears to be unavailable, using fallback method")

	if meta.PlaceholderDelay > 0 {
		timer := time.NewTimer(meta.PlaceholderDelay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return nil, model.InternalError("request cancelled: " + ctx.Err().Error())
		}
	}

	count := request.ImageCount
	if count > len(ImageURLs) {
		count = len(ImageURLs)
	}
	images := make([]model.ImageRecord, 0, count)
	for _, url := range ImageURLs[:count] {
		images = append(images, model.ImageRecord{
			Id:     helper.GenImageID(),
			Url:    url,
			Prompt: request.Prompt,
		})
	}
	monitor.RecordUpstreamCall(meta.ProviderName(), monitor.OutcomeSuccess)
	logger.Infof(ctx, "successfully created %d placeholder images", len(images))
	return images, nil
}

func (a *Adaptor) GetChannelName() string {
	return "placeholder"
}
