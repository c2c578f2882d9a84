package http

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin"

	"memory-mob/internal/voice"
	"memory-mob/pkg/audio"
	"memory-mob/pkg/datemath"
	pkgErrors "memory-mob/pkg/errors"
)

// processDraftReq reads the uploaded clip and the current draft fields.
func (h *handler) processDraftReq(c *gin.Context) (voice.ProcessInput, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxAudioBytes)

	var req draftReq
	if err := c.ShouldBind(&req); err != nil {
		return voice.ProcessInput{}, tooBig(err)
	}

	fh, err := c.FormFile("audio")
	if err != nil {
		if e := tooBig(err); e != err {
			return voice.ProcessInput{}, e
		}
		return voice.ProcessInput{}, errMissingAudio
	}
	f, err := fh.Open()
	if err != nil {
		return voice.ProcessInput{}, err
	}
	defer f.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, f); err != nil {
		return voice.ProcessInput{}, tooBig(err)
	}

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(buf.Bytes())
		if contentType == "audio/wave" {
			contentType = audio.ContentTypeWAV
		}
	}

	draft := voice.Draft{Message: strings.TrimSpace(req.Message)}
	if req.Date != "" {
		d, err := civil.ParseDate(strings.TrimSpace(req.Date))
		if err != nil {
			return voice.ProcessInput{}, pkgErrors.NewValidationError("date", "must be YYYY-MM-DD")
		}
		draft.Date = &d
	}
	if req.Time != "" {
		t, err := datemath.ParseClock(req.Time)
		if err != nil {
			return voice.ProcessInput{}, pkgErrors.NewValidationError("time", "must be HH:MM")
		}
		draft.Time = &t
	}

	mode := voice.Mode(req.Mode)
	if mode == "" {
		mode = voice.ModeExtract
	}

	return voice.ProcessInput{
		Clip:  audio.Clip{Data: buf.Bytes(), ContentType: contentType},
		Draft: draft,
		Mode:  mode,
	}, nil
}

func (h *handler) processExtractReq(c *gin.Context) (extractReq, error) {
	var req extractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		return req, pkgErrors.NewValidationError("text", "must not be empty")
	}
	return req, nil
}

func tooBig(err error) error {
	var mbe *http.MaxBytesError
	if errors.As(err, &mbe) {
		return errAudioTooBig
	}
	return err
}
