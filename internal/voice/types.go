package voice

import (
	"strings"

	"cloud.google.com/go/civil"

	"memory-mob/pkg/audio"
)

// Mode selects what the pipeline does with a transcript.
type Mode string

const (
	// ModeTranscript appends the raw transcript to the draft message.
	ModeTranscript Mode = "transcript"
	// ModeExtract runs the time parser and merges its fields into the draft.
	ModeExtract Mode = "extract"
)

func (m Mode) IsValid() bool {
	return m == ModeTranscript || m == ModeExtract
}

// State is the orchestrator state of one Session.
type State string

const (
	StateIdle             State = "idle"
	StateRecording        State = "recording"
	StateTranscribing     State = "transcribing"
	StateCredentialPrompt State = "credential_prompt"
)

// Draft is the in-progress reminder form. Nil date or time means empty.
type Draft struct {
	Message string
	Date    *civil.Date
	Time    *civil.Time
}

// Extraction is the structured result of the time parser.
type Extraction struct {
	Message string
	Date    *civil.Date
	Time    *civil.Time
}

// --- UseCase Inputs ---

type ProcessInput struct {
	Clip  audio.Clip
	Draft Draft
	Mode  Mode
}

// --- UseCase Outputs ---

type ProcessOutput struct {
	Draft      Draft
	Transcript string
	Confidence float64
	Extraction *Extraction
}

// Merge folds a pipeline result into d. In transcript mode the transcript is
// appended to any existing message with a single space. In extract mode a
// non-empty extracted message replaces the draft message and non-nil date and
// time overwrite the draft's; an empty extracted message falls back to appending
// the transcript.
func Merge(d Draft, transcript string, ext *Extraction, mode Mode) Draft {
	if mode == ModeExtract && ext != nil {
		if msg := strings.TrimSpace(ext.Message); msg != "" {
			d.Message = msg
		} else {
			d.Message = appendText(d.Message, transcript)
		}
		if ext.Date != nil {
			date := *ext.Date
			d.Date = &date
		}
		if ext.Time != nil {
			t := *ext.Time
			d.Time = &t
		}
		return d
	}
	d.Message = appendText(d.Message, transcript)
	return d
}

func appendText(existing, text string) string {
	existing = strings.TrimSpace(existing)
	text = strings.TrimSpace(text)
	switch {
	case existing == "":
		return text
	case text == "":
		return existing
	default:
		return existing + " " + text
	}
}
