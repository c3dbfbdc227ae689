package starryai

type GenerationRequest struct {
	Prompt         string `json:"prompt"`
	Style          string `json:"style"`
	NumberOfImages int    `json:"numberOfImages"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
}

// GenerationResponse accepts both the generations and images list shapes.
type GenerationResponse struct {
	Id          any          `json:"id,omitempty"`
	Generations []Generation `json:"generations,omitempty"`
	Images      []Image      `json:"images,omitempty"`
}

type Generation struct {
	Id       any    `json:"id,omitempty"`
	ImageUrl string `json:"image_url"`
}

type Image struct {
	Id  any    `json:"id,omitempty"`
	Url string `json:"url"`
}

type ErrorResponse struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Detail  string `json:"detail,omitempty"`
}
