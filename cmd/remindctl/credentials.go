package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"memory-mob/internal/credential"
	"memory-mob/internal/model"
)

var slotLabels = map[model.CredentialSlot]string{
	model.SlotTranscription: "Deepgram API key",
	model.SlotLLM:           "Groq API key",
}

func newCredentialsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "credentials",
		Aliases: []string{"creds"},
		Short:   "Manage provider API keys",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show which keys are configured",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			status, err := a.creds.Status(cmd.Context())
			if err != nil {
				return err
			}
			printCredentialStatus(cmd.OutOrStdout(), status)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "set <transcription|llm>",
		Short:     "Store a key, read from a masked prompt",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(model.SlotTranscription), string(model.SlotLLM)},
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := parseSlot(args[0])
			if err != nil {
				return err
			}
			a, err := newApp()
			if err != nil {
				return err
			}
			key, err := promptKey(slot)
			if err != nil {
				return err
			}
			if err := a.creds.Set(cmd.Context(), slot, key); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), success(slotLabels[slot]+" saved"))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear <transcription|llm>",
		Short: "Remove a stored key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slot, err := parseSlot(args[0])
			if err != nil {
				return err
			}
			a, err := newApp()
			if err != nil {
				return err
			}
			if err := a.creds.Clear(cmd.Context(), slot); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), success(slotLabels[slot]+" removed"))
			return nil
		},
	})

	return cmd
}

func parseSlot(s string) (model.CredentialSlot, error) {
	slot := model.CredentialSlot(strings.ToLower(strings.TrimSpace(s)))
	if !slot.IsValid() {
		return "", fmt.Errorf("%w: %q (want transcription or llm)", credential.ErrInvalidSlot, s)
	}
	return slot, nil
}

func printCredentialStatus(w io.Writer, status []credential.SlotStatus) {
	for _, s := range status {
		state := red("missing")
		switch s.Source {
		case credential.SourceStored:
			state = green("stored")
		case credential.SourceEnv:
			state = yellow("from $" + credential.EnvVars[s.Slot])
		}
		fmt.Fprintf(w, "%-14s %-18s %s\n", s.Slot, slotLabels[s.Slot], state)
	}
}

// promptKey asks for a key without echoing it.
func promptKey(slot model.CredentialSlot) (string, error) {
	p := promptui.Prompt{
		Label: slotLabels[slot],
		Mask:  '*',
		Validate: func(in string) error {
			if strings.TrimSpace(in) == "" {
				return errors.New("key must not be empty")
			}
			return nil
		},
	}
	key, err := p.Run()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(key), nil
}
