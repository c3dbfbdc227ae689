package model

import (
	"encoding/json"
	"strings"
)

const (
	StyleRealistic = "realistic"
	StyleAnime     = "anime"
	StyleCartoon   = "cartoon"
	StylePainting  = "painting"
	StyleSketch    = "sketch"
)

const DefaultStyle = StyleRealistic
const DefaultImageCount = 1

// ImageRequest is the body of POST /api/generate as sent by the client.
// Style and counts are kept raw so a malformed value, even a number out of
// float64 range, is coerced instead of failing the bind.
type ImageRequest struct {
	Prompt     string          `json:"prompt" binding:"required"`
	Style      json.RawMessage `json:"style,omitempty"`
	ImageCount json.RawMessage `json:"imageCount,omitempty"`
	// Count is the field name used by the older stock-photo client page.
	Count json.RawMessage `json:"count,omitempty"`
}

// GenerationRequest is an ImageRequest after validation and normalization.
type GenerationRequest struct {
	Prompt     string
	Style      string
	ImageCount int
}

type Credit struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

type ImageRecord struct {
	Id      string  `json:"id"`
	Url     string  `json:"url"`
	FullUrl string  `json:"full_url,omitempty"`
	Prompt  string  `json:"prompt"`
	Credit  *Credit `json:"credit,omitempty"`
}

// ImageResponse is the envelope returned for every call, success or not.
type ImageResponse struct {
	Success bool          `json:"success"`
	Images  []ImageRecord `json:"images,omitempty"`
	Message string        `json:"message"`
	Source  string        `json:"source,omitempty"`
}

// Normalize applies the default style and the {1,2,4} count policy.
// Prompt is passed through untouched; blank prompts are rejected before this.
func (r *ImageRequest) Normalize() *GenerationRequest {
	count, ok := decodeLoose(r.ImageCount)
	if !ok {
		count, _ = decodeLoose(r.Count)
	}
	style, _ := decodeLoose(r.Style)
	return &GenerationRequest{
		Prompt:     r.Prompt,
		Style:      NormalizeStyle(style),
		ImageCount: NormalizeImageCount(count),
	}
}

// decodeLoose reports whether the field was present (null counts as absent)
// and its value, or nil when the value cannot be decoded.
func decodeLoose(raw json.RawMessage) (any, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, true
	}
	return v, true
}

// NormalizeStyle returns the style token, or DefaultStyle when the value is
// absent, blank or not a string. Unknown tokens are kept; each provider
// decides how to treat them.
func NormalizeStyle(style any) string {
	s, ok := style.(string)
	if !ok {
		return DefaultStyle
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultStyle
	}
	return s
}

// NormalizeImageCount returns 1, 2 or 4. Every other value, including
// fractions, strings and out of range numbers, becomes DefaultImageCount.
func NormalizeImageCount(count any) int {
	var n float64
	switch v := count.(type) {
	case float64:
		n = v
	case float32:
		n = float64(v)
	case int:
		n = float64(v)
	case int64:
		n = float64(v)
	default:
		return DefaultImageCount
	}
	switch n {
	case 1, 2, 4:
		return int(n)
	}
	return DefaultImageCount
}
