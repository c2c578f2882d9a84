package model

// CredentialSlot names one provider key.
type CredentialSlot string

const (
	SlotTranscription CredentialSlot = "transcription"
	SlotLLM           CredentialSlot = "llm"
)

// CredentialSlots lists every slot in display order.
var CredentialSlots = []CredentialSlot{SlotTranscription, SlotLLM}

func (s CredentialSlot) IsValid() bool {
	return s == SlotTranscription || s == SlotLLM
}
