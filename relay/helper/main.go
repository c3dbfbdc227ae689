package helper

import (
	"github.com/backbenchers/image-api/relay/channel"
	"github.com/backbenchers/image-api/relay/channel/placeholder"
	"github.com/backbenchers/image-api/relay/channel/starryai"
	"github.com/backbenchers/image-api/relay/channel/unsplash"
	"github.com/backbenchers/image-api/relay/constant"
)

func GetAdaptor(apiType int) channel.Adaptor {
	switch apiType {
	case constant.APITypePlaceholder:
		return &placeholder.Adaptor{}
	case constant.APITypeStarryAI:
		return &starryai.Adaptor{}
	case constant.APITypeUnsplash:
		return &unsplash.Adaptor{}
	}
	return nil
}
