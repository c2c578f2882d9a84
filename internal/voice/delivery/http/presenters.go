package http

import (
	"memory-mob/internal/voice"
	"memory-mob/pkg/response"
)

// maxAudioBytes bounds one uploaded clip.
const maxAudioBytes = 10 << 20

// --- Request DTOs ---

// draftReq is the multipart form of POST /voice/draft. The current draft fields
// are optional and get merged with the recognised speech.
type draftReq struct {
	Mode    string `form:"mode"`
	Message string `form:"message"`
	Date    string `form:"date"`
	Time    string `form:"time"`
}

type extractReq struct {
	Text string `json:"text" binding:"required"`
}

// --- Response DTOs ---

type draftResp struct {
	Message    string          `json:"message"`
	Date       *response.Date  `json:"date"`
	Time       *response.Clock `json:"time"`
	Transcript string          `json:"transcript"`
	Confidence float64         `json:"confidence"`
}

type extractResp struct {
	Message string          `json:"message"`
	Date    *response.Date  `json:"date"`
	Time    *response.Clock `json:"time"`
}

func (h *handler) newDraftResp(o voice.ProcessOutput) draftResp {
	return draftResp{
		Message:    o.Draft.Message,
		Date:       toDate(o.Draft),
		Time:       toClock(o.Draft),
		Transcript: o.Transcript,
		Confidence: o.Confidence,
	}
}

func (h *handler) newExtractResp(e voice.Extraction) extractResp {
	d := voice.Draft{Message: e.Message, Date: e.Date, Time: e.Time}
	return extractResp{Message: e.Message, Date: toDate(d), Time: toClock(d)}
}

func toDate(d voice.Draft) *response.Date {
	if d.Date == nil {
		return nil
	}
	v := response.Date(*d.Date)
	return &v
}

func toClock(d voice.Draft) *response.Clock {
	if d.Time == nil {
		return nil
	}
	v := response.Clock(*d.Time)
	return &v
}
