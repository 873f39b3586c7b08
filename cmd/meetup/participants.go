package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/meetup-client/internal/domain"
	"github.com/heartmarshall/meetup-client/internal/service/participant"
)

var participantsCmd = &cobra.Command{
	Use:     "participants",
	Aliases: []string{"p"},
	Short:   "Manage who joins your event",
}

var participantsListCmd = &cobra.Command{
	Use:   "list <eventID>",
	Short: "List pending requests and joined members",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		view, state, err := openParticipants(cmd.Context(), domain.ID(args[0]))
		if err != nil {
			return err
		}
		defer view.Unmount()

		printParticipants(cmd.OutOrStdout(), state)
		return nil
	},
}

var (
	participantsApproveCmd = singleAction("approve", "Approve a pending request", (*participant.View).Approve)
	participantsRefuseCmd  = singleAction("refuse", "Refuse a pending request", (*participant.View).Refuse)
	participantsRemoveCmd  = singleAction("remove", "Remove a joined member", (*participant.View).Remove)
)

var participantsApproveAllCmd = &cobra.Command{
	Use:   "approve-all <eventID>",
	Short: "Approve every pending request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		view, _, err := openParticipants(cmd.Context(), domain.ID(args[0]))
		if err != nil {
			return err
		}
		defer view.Unmount()

		res := view.ApproveAll(cmd.Context())
		return bulkErr(cmd.OutOrStdout(), "approved", res)
	},
}

var participantsRemoveAllCmd = &cobra.Command{
	Use:   "remove-all <eventID>",
	Short: "Remove every joined member",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		view, _, err := openParticipants(cmd.Context(), domain.ID(args[0]))
		if err != nil {
			return err
		}
		defer view.Unmount()

		res, err := view.RemoveAll(cmd.Context())
		if err != nil {
			return actionErr(cmd.ErrOrStderr(), err)
		}
		return bulkErr(cmd.OutOrStdout(), "removed", res)
	},
}

func singleAction(name, short string, act func(*participant.View, context.Context, domain.ID) error) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <eventID> <participantID>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, state, err := openParticipants(cmd.Context(), domain.ID(args[0]))
			if err != nil {
				return err
			}
			defer view.Unmount()

			id := domain.ID(args[1])
			if !listed(state, id) {
				return fmt.Errorf("participant %s is not in event %s", id, args[0])
			}
			return actionErr(cmd.ErrOrStderr(), act(view, cmd.Context(), id))
		},
	}
}

// openParticipants mounts a participant view and waits for its first load.
// The caller unmounts the returned view.
func openParticipants(ctx context.Context, eventID domain.ID) (*participant.View, participant.State, error) {
	view := application.ParticipantView()

	loaded := make(chan participant.State, 1)
	unsubscribe := view.Subscribe(func(s participant.State) {
		if s.Loading || s.EventID.IsZero() {
			return
		}
		select {
		case loaded <- s:
		default:
		}
	})
	defer unsubscribe()

	if err := view.Mount(ctx, eventID); err != nil {
		return nil, participant.State{}, err
	}

	select {
	case s := <-loaded:
		if s.PollError {
			view.Unmount()
			return nil, s, errReported
		}
		return view, s, nil
	case <-ctx.Done():
		view.Unmount()
		return nil, participant.State{}, ctx.Err()
	}
}

func listed(s participant.State, id domain.ID) bool {
	for _, list := range [][]domain.Participant{s.Pending, s.Joined} {
		for _, p := range list {
			if p.ID == id {
				return true
			}
		}
	}
	return false
}

// actionErr maps a view action error to the command result. The view has
// already posted every failure except a declined confirmation.
func actionErr(w io.Writer, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, participant.ErrNotConfirmed):
		fmt.Fprintln(w, "cancelled")
		return nil
	default:
		return errReported
	}
}

func bulkErr(w io.Writer, verb string, res participant.BulkResult) error {
	if res.Total() == 0 {
		fmt.Fprintf(w, "no participants to %s\n", strings.TrimSuffix(verb, "d"))
		return nil
	}
	printBulk(w, verb, res)
	if res.Outcome() != participant.OutcomeSuccess {
		return errReported
	}
	return nil
}

func init() {
	participantsCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "skip removal confirmation")
	participantsCmd.AddCommand(
		participantsListCmd,
		participantsApproveCmd,
		participantsRefuseCmd,
		participantsRemoveCmd,
		participantsApproveAllCmd,
		participantsRemoveAllCmd,
	)
	rootCmd.AddCommand(participantsCmd)
}
