package credential

import "memory-mob/internal/model"

// Source tells where a slot's key currently comes from.
type Source string

const (
	SourceNone   Source = ""
	SourceStored Source = "stored"
	SourceEnv    Source = "env"
)

// SlotStatus reports whether a slot is usable without revealing the key.
type SlotStatus struct {
	Slot       model.CredentialSlot
	Configured bool
	Source     Source
}

// EnvVars maps each slot to the environment variable used as a fallback.
var EnvVars = map[model.CredentialSlot]string{
	model.SlotTranscription: "DEEPGRAM_API_KEY",
	model.SlotLLM:           "GROQ_API_KEY",
}
