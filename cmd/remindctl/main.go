package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	chatFlag    string
	noColorFlag bool
	verboseFlag bool
	rootCmd     = &cobra.Command{
		Use:           "remindctl",
		Short:         "Manage reminders from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColorFlag {
				color.NoColor = true
			}
		},
	}
)

func main() {
	rootCmd.PersistentFlags().StringVarP(&chatFlag, "chat", "c", "", "Chat ID for new reminders (defaults to telegram.default_chat_id)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable coloured output")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Log at debug level")

	rootCmd.AddCommand(
		newRecordCmd(),
		newAddCmd(),
		newListCmd(),
		newEditCmd(),
		newArchiveCmd(),
		newRestoreCmd(),
		newCredentialsCmd(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, failure(err.Error()))
		os.Exit(1)
	}
}
