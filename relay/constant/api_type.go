package constant

import "strings"

const (
	APITypePlaceholder = iota
	APITypeStarryAI
	APITypeUnsplash

	APITypeDummy // this one is only for count, do not add any provider after this
)

var apiTypeNames = [APITypeDummy]string{
	APITypePlaceholder: "placeholder",
	APITypeStarryAI:    "starryai",
	APITypeUnsplash:    "unsplash",
}

// ProviderName2APIType maps the IMAGE_PROVIDER value to an API type.
// The second result is false for unknown names.
func ProviderName2APIType(name string) (int, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for apiType, n := range apiTypeNames {
		if n == name {
			return apiType, true
		}
	}
	return APITypePlaceholder, false
}

func APIType2ProviderName(apiType int) string {
	if apiType < 0 || apiType >= APITypeDummy {
		return "unknown"
	}
	return apiTypeNames[apiType]
}
