package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/meetup-client/internal/app"
	"github.com/heartmarshall/meetup-client/internal/service/participant"
)

// errReported marks a failure the notice board has already shown.
var errReported = errors.New("reported")

var (
	configPath  string
	verbose     bool
	metricsAddr string
	assumeYes   bool

	application *app.App
)

var rootCmd = &cobra.Command{
	Use:   "meetup",
	Short: "Terminal client for board-game meetups",
	Long: `meetup talks to the meetup backend: chat with an event's players,
follow your notifications and manage who joins your events.`,
	Version:       app.BuildVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		confirm := participant.Confirmer(newPromptConfirmer(cmd.InOrStdin(), cmd.ErrOrStderr()))
		if assumeYes {
			confirm = participant.AlwaysConfirm
		}

		a, err := app.Load(configPath, verbose,
			app.WithConfirmer(confirm),
			app.WithMetricsAddr(metricsAddr),
		)
		if err != nil {
			return err
		}
		a.Start(cmd.Context())
		watchNotices(cmd.Context(), a.Board, cmd.ErrOrStderr())

		application = a
		return nil
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		if application != nil {
			application.Close()
		}
	},
}

func execute(ctx context.Context) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, errReported) {
			return 1
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path (default is $CONFIG_PATH or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")
}
