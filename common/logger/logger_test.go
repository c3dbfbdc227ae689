package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureWriters(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	prevOut, prevErr := gin.DefaultWriter, gin.DefaultErrorWriter
	gin.DefaultWriter, gin.DefaultErrorWriter = out, errOut
	t.Cleanup(func() {
		gin.DefaultWriter, gin.DefaultErrorWriter = prevOut, prevErr
	})
	return out, errOut
}

func TestInfoCarriesRequestId(t *testing.T) {
	out, errOut := captureWriters(t)

	ctx := context.WithValue(context.Background(), RequestIdKey, "req-123")
	Infof(ctx, "generated %d images", 2)

	var entry LogEntry
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(out.Bytes()), &entry))
	assert.Equal(t, "info", entry.Level)
	assert.Equal(t, "req-123", entry.RequestId)
	assert.Equal(t, "generated 2 images", entry.Msg)
	assert.Empty(t, errOut.String())
}

func TestErrorGoesToErrorWriter(t *testing.T) {
	out, errOut := captureWriters(t)

	Error(context.Background(), "upstream failed")

	assert.Empty(t, out.String())
	var entry LogEntry
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(errOut.Bytes()), &entry))
	assert.Equal(t, "error", entry.Level)
	// a request id is generated when the context has none
	assert.NotEmpty(t, entry.RequestId)
}

func TestSysLogHasNoRequestId(t *testing.T) {
	out, _ := captureWriters(t)

	SysLog("server started")

	assert.True(t, strings.HasSuffix(out.String(), "\n"))
	assert.NotContains(t, out.String(), "request_id")
}
