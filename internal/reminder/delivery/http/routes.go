package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	reminders := rg.Group("/reminders")
	{
		reminders.POST("", h.Create)
		reminders.GET("", h.List)
		reminders.GET("/archived", h.ListArchived)
		reminders.GET("/:id", h.Detail)
		reminders.PUT("/:id", h.Update)
		reminders.DELETE("/:id", h.Archive)
		reminders.POST("/:id/restore", h.Restore)
	}
}
