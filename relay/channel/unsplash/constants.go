package unsplash

const (
	providerLabel = "Unsplash"

	searchPath = "/search/photos"

	Orientation   = "landscape"
	ContentFilter = "high"

	DefaultCreditName = "Unsplash Photographer"
	DefaultCreditLink = "https://unsplash.com"

	referralQuery = "utm_source=ai_image_generator&utm_medium=referral"
)

// StyleColors adds a colour filter for styles that have an obvious one.
var StyleColors = map[string]string{
	"sketch": "black_and_white",
}

// BuildQuery appends the style as a search qualifier, "<prompt> <style> style".
// Unknown styles are appended as given.
func BuildQuery(prompt string, style string) string {
	return prompt + " " + style + " style"
}
