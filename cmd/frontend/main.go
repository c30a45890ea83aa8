// Command frontend serves the about page, fetching its content from the API
// at SERVER_HOSTNAME on every page load.
package main

import (
	"bytes"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"messageboard/internal/aboutview"
	"messageboard/internal/config"
)

const pageHead = `<!DOCTYPE html><html><head><meta charset="utf-8"><title>About</title></head><body>`
const pageTail = `</body></html>`

func main() {
	cfg := config.Load()
	if cfg.TestMode {
		gin.SetMode(gin.TestMode)
	}

	// Rendering happens server side, so "same origin" means the local API.
	base := cfg.ServerHostname
	if base == "" {
		base = "http://localhost:" + cfg.Port
	}

	client := &http.Client{Timeout: 10 * time.Second}
	r := gin.New()
	if !cfg.TestMode {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())
	r.GET("/", aboutPage(base, client))
	r.GET("/about", aboutPage(base, client))

	log.Printf("Frontend starting on port %s (API at %q)...", cfg.FrontendPort, base)
	if err := r.Run(":" + cfg.FrontendPort); err != nil {
		log.Fatalf("Failed to run frontend: %v", err)
	}
}

func aboutPage(base string, client *http.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		view := aboutview.New(base, client)
		view.Mount(c.Request.Context())

		var buf bytes.Buffer
		buf.WriteString(pageHead)
		if err := view.Render(&buf); err != nil {
			log.Printf("Error rendering about view: %v", err)
			c.Status(http.StatusInternalServerError)
			return
		}
		buf.WriteString(pageTail)
		c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
	}
}
