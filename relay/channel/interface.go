package channel

import (
	"context"
	"net/http"

	"github.com/backbenchers/image-api/relay/model"
	"github.com/backbenchers/image-api/relay/util"
)

// Adaptor turns a normalized request into image records. One implementation
// is selected per deployment by IMAGE_PROVIDER.
type Adaptor interface {
	Init(meta *util.RelayMeta)
	Generate(ctx context.Context, meta *util.RelayMeta, request *model.GenerationRequest) ([]model.ImageRecord, *model.ErrorWithStatusCode)
	GetChannelName() string
}

// RequestAdaptor is implemented by adaptors backed by an upstream HTTP API;
// RelayImage drives them through a single request.
type RequestAdaptor interface {
	GetRequestMethod() string
	GetRequestURL(meta *util.RelayMeta, request *model.GenerationRequest) (string, error)
	SetupRequestHeader(req *http.Request, meta *util.RelayMeta) error
	// ConvertImageRequest returns the JSON body, or nil for bodiless requests
	ConvertImageRequest(request *model.GenerationRequest) (any, error)
	DoResponse(resp *http.Response, request *model.GenerationRequest) ([]model.ImageRecord, *model.ErrorWithStatusCode)
}
