package constant

import "testing"

func TestProviderName2APIType(t *testing.T) {
	tests := []struct {
		name   string
		want   int
		wantOk bool
	}{
		{"placeholder", APITypePlaceholder, true},
		{"starryai", APITypeStarryAI, true},
		{" Unsplash ", APITypeUnsplash, true},
		{"dall-e", APITypePlaceholder, false},
		{"", APITypePlaceholder, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ProviderName2APIType(tt.name)
			if got != tt.want || ok != tt.wantOk {
				t.Errorf("ProviderName2APIType(%q) = %v, %v, want %v, %v", tt.name, got, ok, tt.want, tt.wantOk)
			}
		})
	}
}

func TestAPIType2ProviderName(t *testing.T) {
	for apiType := 0; apiType < APITypeDummy; apiType++ {
		name := APIType2ProviderName(apiType)
		got, ok := ProviderName2APIType(name)
		if !ok || got != apiType {
			t.Errorf("round trip for %d via %q gave %d", apiType, name, got)
		}
	}
	if APIType2ProviderName(APITypeDummy) != "unknown" {
		t.Errorf("APIType2ProviderName(APITypeDummy) should be unknown")
	}
}
