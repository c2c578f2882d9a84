package http

import (
	"memory-mob/internal/credential"
	"memory-mob/internal/model"
)

// --- Request DTOs ---

type setReq struct {
	Slot string `json:"-"`
	Key  string `json:"key" binding:"required"`
}

func (r setReq) validate() error {
	if !model.CredentialSlot(r.Slot).IsValid() {
		return credential.ErrInvalidSlot
	}
	return nil
}

// --- Response DTOs ---

type slotResp struct {
	Slot       string `json:"slot"`
	Configured bool   `json:"configured"`
	Source     string `json:"source,omitempty"`
}

type statusResp struct {
	Credentials []slotResp `json:"credentials"`
}

func (h *handler) newStatusResp(status []credential.SlotStatus) statusResp {
	out := make([]slotResp, len(status))
	for i, s := range status {
		out[i] = slotResp{Slot: string(s.Slot), Configured: s.Configured, Source: string(s.Source)}
	}
	return statusResp{Credentials: out}
}
