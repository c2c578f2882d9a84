package http

import "github.com/gin-gonic/gin"

// processSetReq binds the key body and the slot URI param.
func (h *handler) processSetReq(c *gin.Context) (setReq, error) {
	var req setReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.Slot = c.Param("slot")
	return req, req.validate()
}
