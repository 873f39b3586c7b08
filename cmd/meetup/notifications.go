package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/meetup-client/internal/domain"
)

const notificationsHelp = "/open <id> opens the event chat, /readall marks everything read, /quit"

var notificationsCmd = &cobra.Command{
	Use:     "notifications",
	Aliases: []string{"inbox"},
	Short:   "Follow your notifications",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

		view := application.NotificationView()
		printer := &inboxPrinter{w: out}
		unsubscribe := view.Subscribe(printer.update)
		defer unsubscribe()

		if err := view.Mount(ctx); err != nil {
			return err
		}
		defer view.Unmount()

		fmt.Fprintln(errOut, notificationsHelp)
		lines := readLines(ctx, cmd.InOrStdin())

		for {
			select {
			case <-ctx.Done():
				return nil
			case line, ok := <-lines:
				if !ok {
					return nil
				}
				command, arg := splitCommand(line)
				switch command {
				case "":
				case "/quit":
					return nil
				case "/readall":
					n, err := view.MarkAllRead(ctx)
					if err != nil {
						reportLocal(errOut, err)
						continue
					}
					fmt.Fprintf(errOut, "%d marked read\n", n)
				case "/open":
					eventID, err := view.Open(ctx, domain.ID(arg))
					if err != nil {
						reportLocal(errOut, err)
						continue
					}
					view.Unmount()
					unsubscribe()
					return runChat(ctx, application, eventID, lines, out, errOut)
				default:
					fmt.Fprintln(errOut, notificationsHelp)
				}
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(notificationsCmd)
}
