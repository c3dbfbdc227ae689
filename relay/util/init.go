package util

import (
	"net/http"
	"time"

	"github.com/backbenchers/image-api/common/config"
	"github.com/backbenchers/image-api/service"
)

const defaultRelayTimeout = 30 * time.Second

// GetHTTPClient returns the client used for upstream calls, honouring
// RELAY_TIMEOUT and RELAY_PROXY.
func GetHTTPClient() (*http.Client, error) {
	timeout := defaultRelayTimeout
	if config.RelayTimeout > 0 {
		timeout = time.Duration(config.RelayTimeout) * time.Second
	}
	return service.NewProxyHttpClient(config.RelayProxy, timeout)
}
