package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/meetup-client/internal/app"
	"github.com/heartmarshall/meetup-client/internal/domain"
)

const chatHelp = "type a message and press enter; /edit <id>, /cancel, /delete <id>, /quit"

var chatCmd = &cobra.Command{
	Use:   "chat <conversationID>",
	Short: "Chat with the players of an event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		lines := readLines(ctx, cmd.InOrStdin())
		return runChat(ctx, application, domain.ID(args[0]), lines, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

// runChat mounts a chat view and feeds it lines until /quit, end of input
// or ctx is done.
func runChat(ctx context.Context, a *app.App, conversationID domain.ID, lines <-chan string, out, errOut io.Writer) error {
	view := a.ChatView()
	printer := newChatPrinter(out, a.Session.UserID())
	unsubscribe := view.Subscribe(printer.update)
	defer unsubscribe()

	if err := view.Mount(ctx, conversationID); err != nil {
		return err
	}
	defer view.Unmount()

	fmt.Fprintf(errOut, "chat %s: %s\n", conversationID, chatHelp)

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			if line == "" {
				continue
			}

			command, arg := splitCommand(line)
			switch command {
			case "/quit":
				return nil
			case "/cancel":
				view.CancelEdit()
				fmt.Fprintln(errOut, "edit cancelled")
			case "/edit":
				if err := view.BeginEdit(domain.ID(arg)); err != nil {
					reportLocal(errOut, err)
					continue
				}
				fmt.Fprintf(errOut, "editing #%s, current text: %s\n", arg, view.State().Draft)
			case "/delete":
				reportLocal(errOut, view.Delete(ctx, domain.ID(arg)))
			default:
				view.SetDraft(line)
				reportLocal(errOut, view.Send(ctx))
			}
		}
	}
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
