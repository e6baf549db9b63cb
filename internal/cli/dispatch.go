package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// DefaultCommand runs when no command is given.
const DefaultCommand = "recent"

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *Registry
	factory  ClientFactory
	logger   *slog.Logger
}

// NewDispatcher creates a new dispatcher with the given registry and client
// factory. If logger is nil, slog.Default() is used.
func NewDispatcher(registry *Registry, factory ClientFactory, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		registry: registry,
		factory:  factory,
		logger:   logger.With(slog.String("component", "cli")),
	}
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	cmdName := DefaultCommand
	var rest []string
	if len(args) > 0 {
		cmdName, rest = args[0], args[1:]
	}

	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return ExitUserError
	}

	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return ExitUserError
	}

	return d.dispatchCommand(ctx, cmd, rest, in, out, errOut)
}

func (d *Dispatcher) dispatchCommand(
	ctx context.Context,
	cmd Command,
	args []string,
	in io.Reader,
	out, errOut io.Writer,
) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cmd.RegisterFlags(fs)

	positional, err := parseInterspersed(fs, args)
	if err != nil {
		errStr := err.Error()
		if name, ok := strings.CutPrefix(errStr, "flag provided but not defined: "); ok {
			fmt.Fprintf(errOut, "error: unknown flag: %s\n", name)
		} else {
			fmt.Fprintf(errOut, "error: %s\n", errStr)
		}
		fmt.Fprintf(errOut, "usage: %s\n", cmd.Usage())
		return ExitUserError
	}

	env := &Env{
		Registry: d.registry,
		Logger:   d.logger,
		In:       in,
		Out:      out,
		ErrOut:   errOut,
	}

	if cmd.NeedsAPI() {
		if d.factory == nil {
			fmt.Fprintln(errOut, "error: no API client configured")
			return ExitBackendError
		}
		api, err := d.factory(ctx)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return ExitUserError
		}
		env.API = api
	}

	d.logger.Debug("running command",
		slog.String("command", cmd.Name()),
		slog.Int("args", len(positional)))

	return cmd.Run(ctx, env, positional)
}

// parseInterspersed parses flags that appear before, between or after
// positional arguments, so "edit <id> -title x" works. Arguments after "--"
// are positional.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		consumed := args[:len(args)-len(rest)]
		if len(consumed) > 0 && consumed[len(consumed)-1] == "--" {
			return append(positional, rest...), nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}
