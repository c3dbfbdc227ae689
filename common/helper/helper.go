package helper

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

func GenRequestID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

func MessageWithRequestId(message string, id string) string {
	if id == "" {
		return message
	}
	return fmt.Sprintf("%s (request id: %s)", message, id)
}

// GetRandomHex returns n random bytes hex encoded.
func GetRandomHex(n int) string {
	bytes := make([]byte, n)
	if _, err := rand.Read(bytes); err != nil {
		// crypto/rand failing is not recoverable; fall back to uuid entropy
		return strings.ReplaceAll(uuid.New().String(), "-", "")[:n*2]
	}
	return hex.EncodeToString(bytes)
}

// GenImageID returns an id in the form img_<8 hex>.
func GenImageID() string {
	return fmt.Sprintf("img_%s", GetRandomHex(4))
}
