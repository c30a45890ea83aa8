package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterOptions struct {
	PublicDir string
	// Quiet drops the request logger, used under test mode.
	Quiet bool
}

func NewRouter(h *Handler, opts RouterOptions) *gin.Engine {
	r := gin.New()
	if !opts.Quiet {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	r.Use(cors.New(config))

	r.Use(secure.New(secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))

	r.Static("/public", opts.PublicDir)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/messages", h.ListMessages)
	r.GET("/messages/:messageId", h.GetMessage)
	r.POST("/messages/save", h.SaveMessage)
	r.GET("/api/about", h.About)
	return r
}
