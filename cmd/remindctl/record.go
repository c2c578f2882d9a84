package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"memory-mob/internal/voice"
	"memory-mob/internal/voice/session"
	"memory-mob/pkg/audio"
	"memory-mob/pkg/datemath"
	pkgErrors "memory-mob/pkg/errors"
)

const (
	actionRecord      = "Record"
	actionEditMessage = "Edit message"
	actionEditDate    = "Edit date"
	actionEditTime    = "Edit time"
	actionSave        = "Save reminder"
	actionQuit        = "Quit"
)

var recordActions = []string{actionRecord, actionEditMessage, actionEditDate, actionEditTime, actionSave, actionQuit}

func newRecordCmd() *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:     "record",
		Aliases: []string{"voice"},
		Short:   "Dictate a reminder and review the draft before saving",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := voice.Mode(mode)
			if !m.IsValid() {
				return fmt.Errorf("%w: %q", voice.ErrInvalidMode, mode)
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			reminders, err := a.reminders(cmd.Context())
			if err != nil {
				return err
			}
			v, err := a.voice()
			if err != nil {
				return err
			}

			rec := audio.NewRecorder(audio.NewExecDevice(captureCommand(a.cfg.Audio.Command)), captureConstraints(a.cfg.Audio.SampleRate))
			s, err := session.New(rec, v, a.creds, reminders, m, a.l)
			if err != nil {
				return err
			}
			defer s.Close()

			return runRecordLoop(cmd.Context(), cmd.OutOrStdout(), a, s)
		},
	}
	cmd.Flags().StringVarP(&mode, "mode", "m", string(voice.ModeExtract), "extract (fill date and time) or transcript (append text only)")
	return cmd
}

// captureCommand expands a bare preset name such as "arecord" into its full command line.
func captureCommand(command []string) []string {
	if len(command) == 1 {
		if p := audio.Preset(command[0]); p != nil {
			return p
		}
	}
	return command
}

func captureConstraints(sampleRate int) audio.Constraints {
	c := audio.DefaultConstraints
	if sampleRate > 0 {
		c.SampleRate = sampleRate
	}
	return c
}

func runRecordLoop(ctx context.Context, w io.Writer, a *app, s *session.Session) error {
	for {
		if slot, ok := s.PendingSlot(); ok {
			fmt.Fprintln(w, yellow(slotLabels[slot]+" is missing or was rejected."))
			key, err := promptKey(slot)
			if err != nil {
				s.DismissCredential()
				fmt.Fprintln(w, hint("Key not saved."))
			} else if err := s.SubmitCredential(ctx, key); err != nil {
				fmt.Fprintln(w, failure(err.Error()))
			} else {
				fmt.Fprintln(w, success(slotLabels[slot]+" saved. Record again to retry."))
			}
		}

		fmt.Fprintln(w)
		printDraft(w, s.Draft())

		sel := promptui.Select{Label: "Action", Items: recordActions, Size: len(recordActions)}
		_, action, err := sel.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return nil
			}
			return err
		}

		switch action {
		case actionRecord:
			record(ctx, w, s)

		case actionEditMessage:
			editDraft(w, s, "Message", s.Draft().Message, func(d *voice.Draft, in string) error {
				d.Message = in
				return nil
			})

		case actionEditDate:
			current := ""
			if d := s.Draft().Date; d != nil {
				current = d.String()
			}
			editDraft(w, s, "Date", current, func(d *voice.Draft, in string) error {
				date, err := parseDateArg(in, a.zone.Today())
				d.Date = date
				return err
			})

		case actionEditTime:
			current := ""
			if t := s.Draft().Time; t != nil {
				current = datemath.FormatClock(*t)
			}
			editDraft(w, s, "Time", current, func(d *voice.Draft, in string) error {
				clock, err := parseClockArg(in)
				d.Time = clock
				return err
			})

		case actionSave:
			out, err := s.Submit(ctx, a.chatID())
			if err != nil {
				fmt.Fprintln(w, failure(describeError(err)))
				continue
			}
			fmt.Fprintln(w, success("Reminder saved"))
			printReminder(w, a.zone, a.locale, out.Reminder)

		case actionQuit:
			return nil
		}
	}
}

// record runs one Start/Stop cycle. Interrupting the stop prompt cancels the clip.
func record(ctx context.Context, w io.Writer, s *session.Session) {
	if err := s.Start(ctx); err != nil {
		fmt.Fprintln(w, failure(describeError(err)))
		return
	}

	stopPrompt := promptui.Prompt{Label: red("●") + " Recording, press Enter to stop"}
	if _, err := stopPrompt.Run(); err != nil {
		s.Cancel()
		fmt.Fprintln(w, hint("Recording cancelled."))
		return
	}

	fmt.Fprintln(w, hint("Transcribing..."))
	if _, err := s.Stop(ctx); err != nil {
		fmt.Fprintln(w, failure(describeError(err)))
	}
}

func editDraft(w io.Writer, s *session.Session, label, current string, apply func(d *voice.Draft, in string) error) {
	p := promptui.Prompt{Label: label, Default: current, AllowEdit: true}
	in, err := p.Run()
	if err != nil {
		return
	}
	d := s.Draft()
	if err := apply(&d, in); err != nil {
		fmt.Fprintln(w, failure(err.Error()))
		return
	}
	if err := s.SetDraft(d); err != nil {
		fmt.Fprintln(w, failure(describeError(err)))
	}
}

// describeError turns pipeline and storage failures into one short line.
func describeError(err error) string {
	var ve *pkgErrors.ValidationError
	switch {
	case errors.Is(err, pkgErrors.ErrCredentialMissing):
		return "API key is not configured"
	case errors.Is(err, pkgErrors.ErrCredentialRejected):
		return "API key was rejected by the provider"
	case errors.Is(err, pkgErrors.ErrPermissionDenied):
		return "Microphone access was denied"
	case errors.Is(err, audio.ErrNoDevice):
		return "No microphone found"
	case errors.Is(err, voice.ErrEmptyClip), errors.Is(err, pkgErrors.ErrEmptyResponse):
		return "Nothing was heard, try again"
	case errors.Is(err, pkgErrors.ErrMalformedResponse):
		return "Could not understand the provider's answer, try again"
	case errors.As(err, &ve):
		return fmt.Sprintf("Invalid %s: %s", ve.Field, ve.Reason)
	}
	return err.Error()
}
