package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to Handler methods. mw runs before
// each voice handler.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw ...gin.HandlerFunc) {
	v := rg.Group("/voice", mw...)
	{
		v.POST("/draft", h.Draft)
		v.POST("/extract", h.Extract)
	}
}
