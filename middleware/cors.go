package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	cors "github.com/rs/cors/wrapper/gin"
)

// CORS lets the client page be served from any origin. Preflight requests
// are answered with 200.
func CORS() gin.HandlerFunc {
	options := cors.Options{
		AllowedOrigins:       []string{"*"},
		AllowedMethods:       []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:       []string{"Content-Type", "X-Request-Id"},
		ExposedHeaders:       []string{"X-Request-Id"},
		OptionsSuccessStatus: http.StatusOK,
	}
	return cors.New(options)
}
