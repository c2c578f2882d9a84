package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"memory-mob/internal/reminder"
)

func newAddCmd() *cobra.Command {
	var message, date, clock string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a reminder (default time 21:00 today)",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			d, err := parseDateArg(date, a.zone.Today())
			if err != nil {
				return err
			}
			t, err := parseClockArg(clock)
			if err != nil {
				return err
			}

			uc, err := a.reminders(cmd.Context())
			if err != nil {
				return err
			}
			out, err := uc.Create(cmd.Context(), reminder.CreateInput{
				Message: message,
				Date:    d,
				Time:    t,
				ChatID:  a.chatID(),
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, success("Reminder saved"))
			printReminder(w, a.zone, a.locale, out.Reminder)
			return nil
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "Reminder text (required)")
	cmd.Flags().StringVarP(&date, "date", "d", "", "Local date: YYYY-MM-DD or a phrase like \"tomorrow\"")
	cmd.Flags().StringVarP(&clock, "time", "t", "", "Local time: HH:MM or a phrase like \"half two\"")
	_ = cmd.MarkFlagRequired("message")
	return cmd
}

func newListCmd() *cobra.Command {
	var filter string
	var archived bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reminders",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			uc, err := a.reminders(cmd.Context())
			if err != nil {
				return err
			}

			var out reminder.ListOutput
			if archived {
				out, err = uc.ListArchived(cmd.Context())
			} else {
				out, err = uc.List(cmd.Context(), reminder.ListInput{Filter: reminder.Filter(filter)})
			}
			if err != nil {
				return err
			}
			printList(cmd.OutOrStdout(), a.zone, a.locale, out, archived)
			return nil
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", string(reminder.FilterAll), "all, pending or sent")
	cmd.Flags().BoolVar(&archived, "archived", false, "List archived reminders instead")
	return cmd
}

func newEditCmd() *cobra.Command {
	var message, date, clock string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit or reschedule a reminder; it becomes pending again",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			d, err := parseDateArg(date, a.zone.Today())
			if err != nil {
				return err
			}
			t, err := parseClockArg(clock)
			if err != nil {
				return err
			}
			if message == "" && d == nil && t == nil {
				return fmt.Errorf("nothing to change: pass --message, --date or --time")
			}

			uc, err := a.reminders(cmd.Context())
			if err != nil {
				return err
			}
			out, err := uc.Update(cmd.Context(), reminder.UpdateInput{
				ID:      args[0],
				Message: message,
				Date:    d,
				Time:    t,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, success("Reminder updated"))
			printReminder(w, a.zone, a.locale, out.Reminder)
			return nil
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "New reminder text")
	cmd.Flags().StringVarP(&date, "date", "d", "", "New local date")
	cmd.Flags().StringVarP(&clock, "time", "t", "", "New local time")
	return cmd
}

func newArchiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "archive <id>",
		Aliases: []string{"rm"},
		Short:   "Archive a reminder",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			uc, err := a.reminders(cmd.Context())
			if err != nil {
				return err
			}
			if err := uc.Archive(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), success("Reminder archived"))
			return nil
		},
	}
}

func newRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <id>",
		Short: "Restore an archived reminder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			uc, err := a.reminders(cmd.Context())
			if err != nil {
				return err
			}
			if err := uc.Restore(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), success("Reminder restored"))
			return nil
		},
	}
}
