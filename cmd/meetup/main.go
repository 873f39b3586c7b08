// Command meetup is a terminal client for the board-game meetup backend:
// event chats, notifications and participant management.
//
// Configuration comes from CONFIG_PATH (or ./config.yaml), the environment
// and an optional .env file in the working directory.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

func main() {
	// A missing .env is normal; real environment variables still apply.
	_ = godotenv.Load()

	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return execute(ctx)
}
