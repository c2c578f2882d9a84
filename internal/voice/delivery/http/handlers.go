package http

import (
	"github.com/gin-gonic/gin"

	"memory-mob/pkg/response"
)

// Draft godoc
// @Summary     Turn a voice clip into a reminder draft
// @Description Transcribes the uploaded clip and, in extract mode, pulls the message, date and time out of it. The result is merged into the draft fields sent along. Nothing is stored.
// @Tags        Voice
// @Accept      multipart/form-data
// @Produce     json
// @Param       audio   formData file   true  "Recorded clip"
// @Param       mode    formData string false "transcript or extract (default extract)"
// @Param       message formData string false "Current draft message"
// @Param       date    formData string false "Current draft date (YYYY-MM-DD)"
// @Param       time    formData string false "Current draft time (HH:MM)"
// @Success     200 {object} draftResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     428 {object} response.Resp "Provider key missing or rejected"
// @Failure     502 {object} response.Resp "Provider failure"
// @Router      /api/v1/voice/draft [POST]
func (h *handler) Draft(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processDraftReq(c)
	if err != nil {
		h.l.Warnf(ctx, "voice.delivery.Draft processDraftReq: %v", err)
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Process(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Process: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDraftResp(out))
}

// Extract godoc
// @Summary     Extract message, date and time from text
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Free text"
// @Success     200 {object} extractResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     428 {object} response.Resp "Provider key missing or rejected"
// @Failure     502 {object} response.Resp "Provider failure"
// @Router      /api/v1/voice/extract [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	ext, err := h.uc.Extract(ctx, req.Text, h.zone.Today())
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newExtractResp(ext))
}
