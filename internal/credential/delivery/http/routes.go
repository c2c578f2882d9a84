package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	creds := rg.Group("/credentials")
	{
		creds.GET("", h.Status)
		creds.PUT("/:slot", h.Set)
		creds.DELETE("/:slot", h.Clear)
	}
}
