package router

import (
	"github.com/backbenchers/image-api/common/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetSwaggerRouter mounts the Swagger UI. The default document is the
// openapi.json shipped with the client page.
func SetSwaggerRouter(router *gin.Engine) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL(config.SwaggerJSONURL),
	))
}
