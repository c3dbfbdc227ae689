package starryai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/backbenchers/image-api/relay/constant"
	"github.com/backbenchers/image-api/relay/model"
	"github.com/backbenchers/image-api/relay/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMeta(server *httptest.Server) *util.RelayMeta {
	return &util.RelayMeta{
		APIType:    constant.APITypeStarryAI,
		BaseURL:    server.URL,
		APIKey:     "starry-secret",
		HTTPClient: server.Client(),
	}
}

func TestMapStyle(t *testing.T) {
	tests := []struct {
		style string
		want  string
	}{
		{"realistic", "photographic"},
		{"anime", "anime"},
		{"cartoon", "cartoon"},
		{"painting", "oil-painting"},
		{"sketch", "pencil-sketch"},
		{"vaporwave", "photographic"},
		{"", "photographic"},
	}
	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			assert.Equal(t, tt.want, MapStyle(tt.style))
		})
	}
}

func TestGenerateSendsMappedRequest(t *testing.T) {
	var got GenerationRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/generation", r.URL.Path)
		assert.Equal(t, "Bearer starry-secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"generations":[{"id":"gen_1","image_url":"https://cdn.starryai.com/1.png"},{"image_url":"https://cdn.starryai.com/2.png"}]}`))
	}))
	defer server.Close()

	images, errWithCode := (&Adaptor{}).Generate(context.Background(), newTestMeta(server), &model.GenerationRequest{
		Prompt:     "a castle",
		Style:      "painting",
		ImageCount: 2,
	})
	require.Nil(t, errWithCode)

	assert.Equal(t, GenerationRequest{
		Prompt:         "a castle",
		Style:          "oil-painting",
		NumberOfImages: 2,
		Width:          ImageWidth,
		Height:         ImageHeight,
	}, got)

	require.Len(t, images, 2)
	assert.Equal(t, "gen_1", images[0].Id)
	assert.Equal(t, "https://cdn.starryai.com/1.png", images[0].Url)
	assert.Equal(t, "a castle", images[0].Prompt)
	assert.Nil(t, images[0].Credit)
	// missing upstream id is synthesized
	assert.True(t, strings.HasPrefix(images[1].Id, "img_"))
}

func TestGenerateUnknownStyleUsesDefault(t *testing.T) {
	var got GenerationRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"images":[{"id":42,"url":"https://cdn.starryai.com/x.png"}]}`))
	}))
	defer server.Close()

	images, errWithCode := (&Adaptor{}).Generate(context.Background(), newTestMeta(server), &model.GenerationRequest{
		Prompt:     "a castle",
		Style:      "vaporwave",
		ImageCount: 1,
	})
	require.Nil(t, errWithCode)
	assert.Equal(t, DefaultStyle, got.Style)
	require.Len(t, images, 1)
	assert.Equal(t, "42", images[0].Id)
}

func TestGenerateProviderError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{"upstream message", http.StatusUnauthorized, `{"message":"Invalid API key"}`, "StarryAI API error: Invalid API key"},
		{"upstream error field", http.StatusBadRequest, `{"error":"prompt too long"}`, "StarryAI API error: prompt too long"},
		{"unparseable body", http.StatusBadGateway, `<html>bad gateway</html>`, "StarryAI API request failed with status code 502"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			images, errWithCode := (&Adaptor{}).Generate(context.Background(), newTestMeta(server), &model.GenerationRequest{Prompt: "cat", Style: "anime", ImageCount: 1})
			assert.Nil(t, images)
			require.NotNil(t, errWithCode)
			assert.Equal(t, model.ErrorTypeProvider, errWithCode.Type)
			assert.Equal(t, http.StatusInternalServerError, errWithCode.StatusCode)
			assert.Equal(t, tt.wantMessage, errWithCode.Message)
		})
	}
}

func TestGenerateEmptyResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"generations":[]}`))
	}))
	defer server.Close()

	_, errWithCode := (&Adaptor{}).Generate(context.Background(), newTestMeta(server), &model.GenerationRequest{Prompt: "cat", ImageCount: 1})
	require.NotNil(t, errWithCode)
	assert.Equal(t, model.ErrorTypeProvider, errWithCode.Type)
}

func TestGenerateMalformedSuccessBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	_, errWithCode := (&Adaptor{}).Generate(context.Background(), newTestMeta(server), &model.GenerationRequest{Prompt: "cat", ImageCount: 1})
	require.NotNil(t, errWithCode)
	assert.Equal(t, model.ErrorTypeInternal, errWithCode.Type)
}

func TestGenerateTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	meta := newTestMeta(server)
	server.Close()

	_, errWithCode := (&Adaptor{}).Generate(context.Background(), meta, &model.GenerationRequest{Prompt: "cat", ImageCount: 1})
	require.NotNil(t, errWithCode)
	assert.Equal(t, model.ErrorTypeTransport, errWithCode.Type)
	assert.Equal(t, http.StatusInternalServerError, errWithCode.StatusCode)
	assert.True(t, strings.HasPrefix(errWithCode.Message, "Error connecting to StarryAI API: "))
}

func TestGenerateTruncatedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Length", "512")
		_, _ = w.Write([]byte(`{"generations":[{"id"`))
	}))
	defer server.Close()

	_, errWithCode := (&Adaptor{}).Generate(context.Background(), newTestMeta(server), &model.GenerationRequest{Prompt: "cat", ImageCount: 1})
	require.NotNil(t, errWithCode)
	assert.Equal(t, model.ErrorTypeTransport, errWithCode.Type)
	assert.True(t, strings.HasPrefix(errWithCode.Message, "Error connecting to StarryAI API: "))
}

func TestGenerateBodyReadTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"generations":[{"id"`))
		w.(http.Flusher).Flush()
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer server.Close()

	meta := newTestMeta(server)
	client := *server.Client()
	client.Timeout = 200 * time.Millisecond
	meta.HTTPClient = &client

	_, errWithCode := (&Adaptor{}).Generate(context.Background(), meta, &model.GenerationRequest{Prompt: "cat", ImageCount: 1})
	require.NotNil(t, errWithCode)
	assert.Equal(t, model.ErrorTypeTransport, errWithCode.Type)
}
