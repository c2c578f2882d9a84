package http

import (
	"github.com/gin-gonic/gin"

	"memory-mob/pkg/response"
)

const channelHTTP = "http"

// Create godoc
// @Summary     Create a reminder
// @Description Creates a pending reminder. Date and time are local; an empty date means today and an empty time means 21:00. The resulting instant must be in the future.
// @Tags        Reminders
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Reminder data"
// @Success     200  {object} reminderResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/reminders [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.Create(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}
	h.metrics.IncRemindersCreated(channelHTTP)

	response.OK(c, h.newReminderResp(output.Reminder))
}

// List godoc
// @Summary     List active reminders
// @Description Returns active reminders ordered by reminder time, with per-status counts.
// @Tags        Reminders
// @Produce     json
// @Param       filter query string false "all, pending or sent (default all)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/reminders [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// ListArchived godoc
// @Summary     List archived reminders
// @Description Returns soft-deleted reminders, most recently archived first.
// @Tags        Reminders
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/reminders/archived [GET]
func (h *handler) ListArchived(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListArchived(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListArchived: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get a reminder
// @Tags        Reminders
// @Produce     json
// @Param       id path string true "Reminder ID"
// @Success     200 {object} reminderResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/reminders/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newReminderResp(output.Reminder))
}

// Update godoc
// @Summary     Edit or reschedule a reminder
// @Description Updates message, date or time. Omitted fields keep their value. The reminder returns to pending; past times are allowed.
// @Tags        Reminders
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Reminder ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} reminderResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Reminder is archived"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/reminders/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}
	input, err := req.toInput()
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	output, err := h.uc.Update(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newReminderResp(output.Reminder))
}

// Archive godoc
// @Summary     Archive a reminder
// @Description Soft-deletes a reminder. It can be restored later.
// @Tags        Reminders
// @Produce     json
// @Param       id path string true "Reminder ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/reminders/{id} [DELETE]
func (h *handler) Archive(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Archive(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Archive: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Restore godoc
// @Summary     Restore an archived reminder
// @Tags        Reminders
// @Produce     json
// @Param       id path string true "Reminder ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Reminder is not archived"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/reminders/{id}/restore [POST]
func (h *handler) Restore(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Restore(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Restore: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
