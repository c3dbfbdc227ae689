package service

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/net/proxy"
)

var (
	proxyClientLock sync.Mutex
	proxyClients    = make(map[string]*http.Client)
)

// ResetProxyClientCache drops cached clients so the next call builds fresh ones.
func ResetProxyClientCache() {
	proxyClientLock.Lock()
	defer proxyClientLock.Unlock()
	for _, client := range proxyClients {
		if transport, ok := client.Transport.(*http.Transport); ok && transport != nil {
			transport.CloseIdleConnections()
		}
	}
	proxyClients = make(map[string]*http.Client)
}

// NewProxyHttpClient returns an http.Client with the given timeout that
// dials through proxyURL when it is set. Clients are cached per proxy and
// timeout pair.
func NewProxyHttpClient(proxyURL string, timeout time.Duration) (*http.Client, error) {
	cacheKey := fmt.Sprintf("%s|%s", proxyURL, timeout)

	proxyClientLock.Lock()
	if client, ok := proxyClients[cacheKey]; ok {
		proxyClientLock.Unlock()
		return client, nil
	}
	proxyClientLock.Unlock()

	var transport *http.Transport
	if proxyURL == "" {
		transport = &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 20,
			ForceAttemptHTTP2:   true,
		}
	} else {
		parsedURL, err := url.Parse(proxyURL)
		if err != nil {
			return nil, err
		}
		switch parsedURL.Scheme {
		case "http", "https":
			transport = &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 20,
				ForceAttemptHTTP2:   true,
				Proxy:               http.ProxyURL(parsedURL),
			}
		case "socks5", "socks5h":
			var auth *proxy.Auth
			if parsedURL.User != nil {
				auth = &proxy.Auth{
					User: parsedURL.User.Username(),
				}
				if password, ok := parsedURL.User.Password(); ok {
					auth.Password = password
				}
			}
			// proxy.SOCKS5 resolves names on the proxy side, so socks5 behaves like socks5h
			dialer, err := proxy.SOCKS5("tcp", parsedURL.Host, auth, proxy.Direct)
			if err != nil {
				return nil, err
			}
			transport = &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 20,
				ForceAttemptHTTP2:   true,
				DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
					if contextDialer, ok := dialer.(proxy.ContextDialer); ok {
						return contextDialer.DialContext(ctx, network, addr)
					}
					return dialer.Dial(network, addr)
				},
			}
		default:
			return nil, fmt.Errorf("unsupported proxy scheme: %s, must be http, https, socks5 or socks5h", parsedURL.Scheme)
		}
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
	proxyClientLock.Lock()
	proxyClients[cacheKey] = client
	proxyClientLock.Unlock()
	return client, nil
}
