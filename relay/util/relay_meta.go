package util

import (
	"fmt"
	"net/http"
	"time"

	"github.com/backbenchers/image-api/common/config"
	"github.com/backbenchers/image-api/relay/constant"
)

// RelayMeta is the provider configuration resolved once at startup and
// handed to every request.
type RelayMeta struct {
	APIType int
	// BaseURL is the upstream root, overridable for proxies and tests
	BaseURL string
	// APIKey may be empty; the relay rejects requests until it is configured
	APIKey string
	// CredentialName is the env variable the APIKey comes from
	CredentialName   string
	PlaceholderDelay time.Duration
	HTTPClient       *http.Client
}

func (m *RelayMeta) ProviderName() string {
	return constant.APIType2ProviderName(m.APIType)
}

// GetRelayMeta builds the RelayMeta for the configured IMAGE_PROVIDER.
func GetRelayMeta() (*RelayMeta, error) {
	apiType, ok := constant.ProviderName2APIType(config.ImageProvider)
	if !ok {
		return nil, fmt.Errorf("unknown IMAGE_PROVIDER %q, must be placeholder, starryai or unsplash", config.ImageProvider)
	}
	client, err := GetHTTPClient()
	if err != nil {
		return nil, err
	}
	meta := &RelayMeta{
		APIType:          apiType,
		PlaceholderDelay: time.Duration(config.PlaceholderDelay) * time.Millisecond,
		HTTPClient:       client,
	}
	switch apiType {
	case constant.APITypeUnsplash:
		meta.BaseURL = config.UnsplashBaseURL
		meta.APIKey = config.UnsplashAccessKey
		meta.CredentialName = "UNSPLASH_ACCESS_KEY"
	default:
		// the placeholder stands in for StarryAI and is gated on the same key
		meta.BaseURL = config.StarryAIBaseURL
		meta.APIKey = config.StarryAIAPIKey
		meta.CredentialName = "STARRYAI_API_KEY"
	}
	return meta, nil
}
