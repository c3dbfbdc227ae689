package starryai

const (
	providerLabel = "StarryAI"

	generationPath = "/v1/generation"

	// fixed target resolution for every generation
	ImageWidth  = 768
	ImageHeight = 512

	DefaultStyle = "photographic"
)

// StyleMapping translates client style tokens to StarryAI style names.
// Unknown tokens use DefaultStyle.
var StyleMapping = map[string]string{
	"realistic": "photographic",
	"anime":     "anime",
	"cartoon":   "cartoon",
	"painting":  "oil-painting",
	"sketch":    "pencil-sketch",
}

func MapStyle(style string) string {
	if mapped, ok := StyleMapping[style]; ok {
		return mapped
	}
	return DefaultStyle
}
