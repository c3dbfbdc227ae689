package router

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

// webFileSystem adapts the client page bundle to static.ServeFileSystem.
type webFileSystem struct {
	http.FileSystem
}

func (w webFileSystem) Exists(prefix string, path string) bool {
	_, err := w.Open(path)
	return err == nil
}

func WebFolder(webFS fs.FS) static.ServeFileSystem {
	return webFileSystem{
		FileSystem: http.FS(webFS),
	}
}

// SetWebRouter serves the client page from webFS, which must hold index.html at its root.
func SetWebRouter(router *gin.Engine, webFS fs.FS) {
	indexPage, err := fs.ReadFile(webFS, "index.html")
	if err != nil {
		panic(err)
	}
	router.Use(gzip.Gzip(gzip.DefaultCompression))
	router.Use(static.Serve("/", WebFolder(webFS)))
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.RequestURI, "/api") {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Not found",
			})
			return
		}
		c.Header("Cache-Control", "no-cache")
		c.Data(http.StatusOK, "text/html; charset=utf-8", indexPage)
	})
}
