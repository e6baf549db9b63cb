// Package main is the entry point for taskctl, the terminal client of the
// task API.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/tasks-api/internal/cli"
	"github.com/phrazzld/tasks-api/internal/client"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
)

// EnvAPIURL overrides the default API base URL.
const EnvAPIURL = "TASKS_API_URL"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Getenv, os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run parses the global flags and hands the rest of args to the dispatcher.
func run(
	ctx context.Context,
	args []string,
	getenv func(string) string,
	in io.Reader,
	out, errOut io.Writer,
) int {
	fs := flag.NewFlagSet("taskctl", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	apiURL := fs.String("api", "", "API base URL (default $"+EnvAPIURL+" or "+client.DefaultBaseURL+")")
	debug := fs.Bool("debug", false, "log debug output to stderr")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return cli.ExitUserError
	}

	baseURL := resolveBaseURL(*apiURL, getenv)

	level := slog.LevelWarn
	if *debug {
		level = slog.LevelDebug
	}
	log := logger.New(errOut, level)

	factory := func(ctx context.Context) (cli.TaskClient, error) {
		return client.New(baseURL)
	}

	dispatcher := cli.NewDispatcher(cli.DefaultRegistry(), factory, log)
	return dispatcher.Run(ctx, fs.Args(), in, out, errOut)
}

// resolveBaseURL prefers the flag, then the environment, then the default.
func resolveBaseURL(flagValue string, getenv func(string) string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := getenv(EnvAPIURL); v != "" {
		return v
	}
	return client.DefaultBaseURL
}
