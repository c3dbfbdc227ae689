package placeholder

import (
	"context"
	"testing"
	"time"

	"github.com/backbenchers/image-api/relay/constant"
	"github.com/backbenchers/image-api/relay/model"
	"github.com/backbenchers/image-api/relay/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMeta(delay time.Duration) *util.RelayMeta {
	return &util.RelayMeta{
		APIType:          constant.APITypePlaceholder,
		APIKey:           "test-key",
		PlaceholderDelay: delay,
	}
}

func TestGenerateReturnsRequestedCount(t *testing.T) {
	a := &Adaptor{}
	for _, count := range []int{1, 2, 4} {
		images, errWithCode := a.Generate(context.Background(), newMeta(0), &model.GenerationRequest{
			Prompt:     "cat",
			Style:      model.StyleRealistic,
			ImageCount: count,
		})
		require.Nil(t, errWithCode)
		require.Len(t, images, count)

		ids := make(map[string]bool)
		for i, image := range images {
			assert.Equal(t, "cat", image.Prompt)
			assert.Equal(t, ImageURLs[i], image.Url)
			assert.Nil(t, image.Credit)
			assert.False(t, ids[image.Id], "duplicate id %s", image.Id)
			ids[image.Id] = true
		}
	}
}

func TestGenerateIsDeterministicExceptIds(t *testing.T) {
	a := &Adaptor{}
	request := &model.GenerationRequest{Prompt: "cat", ImageCount: 2}

	first, errWithCode := a.Generate(context.Background(), newMeta(0), request)
	require.Nil(t, errWithCode)
	second, errWithCode := a.Generate(context.Background(), newMeta(0), request)
	require.Nil(t, errWithCode)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Url, second[i].Url)
		assert.NotEqual(t, first[i].Id, second[i].Id)
	}
}

func TestGenerateWaitsForDelay(t *testing.T) {
	a := &Adaptor{}
	start := time.Now()
	_, errWithCode := a.Generate(context.Background(), newMeta(50*time.Millisecond), &model.GenerationRequest{Prompt: "cat", ImageCount: 1})
	require.Nil(t, errWithCode)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, errWithCode := (&Adaptor{}).Generate(ctx, newMeta(time.Minute), &model.GenerationRequest{Prompt: "cat", ImageCount: 1})
	require.NotNil(t, errWithCode)
	assert.Equal(t, model.ErrorTypeInternal, errWithCode.Type)
}
