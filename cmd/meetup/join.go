package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/meetup-client/internal/domain"
)

var joinCmd = &cobra.Command{
	Use:   "join <eventID>",
	Short: "Ask to join an event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := application.ParticipantService().Apply(cmd.Context(), domain.ID(args[0]))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "request #%s sent, waiting for the organizer\n", p.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(joinCmd)
}
