package cli

import (
	"context"
	"flag"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/domain"
)

// TaskClient is the API surface the commands use. *client.Client satisfies it.
type TaskClient interface {
	Recent(ctx context.Context, count int) ([]domain.TaskView, error)
	All(ctx context.Context) ([]domain.TaskView, error)
	Get(ctx context.Context, id uuid.UUID) (domain.TaskView, error)
	Create(ctx context.Context, input domain.CreateTaskInput) (domain.TaskView, error)
	Update(ctx context.Context, id uuid.UUID, patch domain.TaskPatch) (domain.TaskView, error)
	Complete(ctx context.Context, id uuid.UUID) (domain.TaskView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ClientFactory creates the TaskClient for a command that needs one.
type ClientFactory func(ctx context.Context) (TaskClient, error)

// Env is what a command runs against.
type Env struct {
	API      TaskClient // nil when the command does not need the API
	Registry *Registry
	Logger   *slog.Logger
	In       io.Reader
	Out      io.Writer
	ErrOut   io.Writer
}

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsAPI returns true if the command talks to the server.
	NeedsAPI() bool

	// RegisterFlags registers command-specific flags. It is called before
	// every run and must reset any flag state.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command with the positional arguments left after
	// flag parsing and returns the exit code.
	Run(ctx context.Context, env *Env, args []string) int
}
