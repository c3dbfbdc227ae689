package config

import (
	"os"
	"strings"
	"time"

	"github.com/backbenchers/image-api/common/env"
	"github.com/google/uuid"
)

var SystemName = "BackBenchers AI"

var DebugEnabled = strings.ToLower(os.Getenv("DEBUG")) == "true"

var ServiceName = env.String("SERVICE_NAME", "image-api")
var InstanceId = env.String("INSTANCE_ID", uuid.New().String())

// ImageProvider selects the upstream strategy: placeholder, starryai or unsplash.
var ImageProvider = strings.ToLower(env.String("IMAGE_PROVIDER", "placeholder"))

// Any options with "Key" in its name are never returned by the status endpoint

var StarryAIAPIKey = os.Getenv("STARRYAI_API_KEY")
var StarryAIBaseURL = env.String("STARRYAI_BASE_URL", "https://api.starryai.com")

var UnsplashAccessKey = os.Getenv("UNSPLASH_ACCESS_KEY")
var UnsplashBaseURL = env.String("UNSPLASH_BASE_URL", "https://api.unsplash.com")

var RelayTimeout = env.Int("RELAY_TIMEOUT", 30) // unit is second
var RelayProxy = os.Getenv("RELAY_PROXY")

var PlaceholderDelay = env.Int("PLACEHOLDER_DELAY", 2000) // unit is millisecond

var EnableMetric = env.Bool("ENABLE_METRIC", false)

var StartTime = time.Now().Unix() // unit: second
var Version = "v0.0.0"             // overridden at build time via -ldflags

// SwaggerJSONURL is the document the Swagger UI at /swagger/index.html loads.
var SwaggerJSONURL = env.String("SWAGGER_JSON_URL", "/openapi.json")
