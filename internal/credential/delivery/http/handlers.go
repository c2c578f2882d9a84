package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"memory-mob/internal/credential"
	"memory-mob/internal/model"
	"memory-mob/pkg/response"
)

// Status godoc
// @Summary     Credential status
// @Description Reports which provider keys are configured and where they come from. Keys are never returned.
// @Tags        Credentials
// @Produce     json
// @Success     200 {object} statusResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/credentials [GET]
func (h *handler) Status(c *gin.Context) {
	ctx := c.Request.Context()

	status, err := h.uc.Status(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Status: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newStatusResp(status))
}

// Set godoc
// @Summary     Store a provider key
// @Description Stores the key for a slot (transcription or llm), replacing the previous one.
// @Tags        Credentials
// @Accept      json
// @Produce     json
// @Param       slot path string true "Slot (transcription|llm)"
// @Param       body body setReq true "Key"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Unknown slot"
// @Router      /api/v1/credentials/{slot} [PUT]
func (h *handler) Set(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetReq(c)
	if err != nil {
		if errors.Is(err, credential.ErrInvalidSlot) {
			err = h.mapError(err)
		}
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Set(ctx, model.CredentialSlot(req.Slot), req.Key); err != nil {
		h.l.Errorf(ctx, "uc.Set: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Clear godoc
// @Summary     Remove a stored provider key
// @Tags        Credentials
// @Produce     json
// @Param       slot path string true "Slot (transcription|llm)"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Unknown slot"
// @Router      /api/v1/credentials/{slot} [DELETE]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Clear(ctx, model.CredentialSlot(c.Param("slot"))); err != nil {
		h.l.Errorf(ctx, "uc.Clear: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
