package channel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/backbenchers/image-api/common/logger"
	"github.com/backbenchers/image-api/monitor"
	"github.com/backbenchers/image-api/relay/model"
	"github.com/backbenchers/image-api/relay/util"
	"github.com/pkg/errors"
)

// maxErrorBodySize bounds how much of an upstream error body is read
const maxErrorBodySize = 64 << 10

func SetupCommonRequestHeader(req *http.Request) {
	req.Header.Set("Accept", "application/json")
	if req.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
}

func DoRequestHelper(ctx context.Context, a RequestAdaptor, meta *util.RelayMeta, request *model.GenerationRequest) (*http.Response, error) {
	fullRequestURL, err := a.GetRequestURL(meta, request)
	if err != nil {
		return nil, errors.Wrap(err, "get request url failed")
	}
	var requestBody io.Reader
	converted, err := a.ConvertImageRequest(request)
	if err != nil {
		return nil, errors.Wrap(err, "convert request failed")
	}
	if converted != nil {
		jsonData, err := json.Marshal(converted)
		if err != nil {
			return nil, errors.Wrap(err, "marshal request failed")
		}
		requestBody = bytes.NewReader(jsonData)
	}
	req, err := http.NewRequestWithContext(ctx, a.GetRequestMethod(), fullRequestURL, requestBody)
	if err != nil {
		return nil, errors.Wrap(err, "new request failed")
	}
	SetupCommonRequestHeader(req)
	if err = a.SetupRequestHeader(req, meta); err != nil {
		return nil, errors.Wrap(err, "setup request header failed")
	}
	logger.Debugf(ctx, "%s %s", req.Method, req.URL.Redacted())

	client := meta.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "do request failed")
	}
	if resp == nil {
		return nil, errors.New("resp is nil")
	}
	return resp, nil
}

// RelayImage performs the one upstream call for a RequestAdaptor. Failing to
// reach the upstream at all is a transport error; everything after a response
// arrives is up to the adaptor's DoResponse.
func RelayImage(ctx context.Context, a RequestAdaptor, meta *util.RelayMeta, request *model.GenerationRequest, providerLabel string) ([]model.ImageRecord, *model.ErrorWithStatusCode) {
	resp, err := DoRequestHelper(ctx, a, meta, request)
	if err != nil {
		logger.Errorf(ctx, "%s request failed: %s", providerLabel, err.Error())
		monitor.RecordUpstreamCall(meta.ProviderName(), monitor.OutcomeTransportError)
		return nil, model.TransportError(fmt.Sprintf("Error connecting to %s API: %s", providerLabel, errors.Cause(err).Error()))
	}
	defer resp.Body.Close()

	records, errWithCode := a.DoResponse(resp, request)
	if errWithCode != nil {
		monitor.RecordUpstreamCall(meta.ProviderName(), errWithCode.Type)
		return nil, errWithCode
	}
	monitor.RecordUpstreamCall(meta.ProviderName(), monitor.OutcomeSuccess)
	return records, nil
}

// DecodeError classifies a failure to decode a 2xx body. A connection lost
// or timed out mid-body is a transport error; a malformed body is internal.
func DecodeError(err error, providerLabel string) *model.ErrorWithStatusCode {
	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, io.ErrUnexpectedEOF) {
		return model.TransportError(fmt.Sprintf("Error connecting to %s API: %s", providerLabel, err.Error()))
	}
	return model.ErrorWrapper(errors.Wrap(err, "failed to parse "+providerLabel+" response"), model.ErrorTypeInternal, http.StatusInternalServerError)
}

// ReadErrorBody reads a bounded prefix of an upstream error response.
func ReadErrorBody(resp *http.Response) []byte {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	return body
}

func IsSuccessStatus(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}
