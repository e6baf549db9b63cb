package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/phrazzld/tasks-api/internal/board"
)

const boardHelp = `Commands:
  add <title> | <description>   Add a task
  done <n>                      Complete task number n
  list                          Show the board
  reload                        Fetch the board again
  quit                          Leave
`

// BoardCmd runs the interactive board: the most recent active tasks, an add
// form and completion by number.
type BoardCmd struct{}

func (c *BoardCmd) Name() string                   { return "board" }
func (c *BoardCmd) Aliases() []string              { return nil }
func (c *BoardCmd) Synopsis() string               { return "Interactive board of recent active tasks" }
func (c *BoardCmd) Usage() string                  { return "taskctl board" }
func (c *BoardCmd) NeedsAPI() bool                 { return true }
func (c *BoardCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *BoardCmd) Run(ctx context.Context, env *Env, args []string) int {
	b := board.New(env.API, env.Logger)
	if err := b.Load(ctx); err != nil {
		return reportError(env.ErrOut, err)
	}
	renderBoard(env, b)

	scanner := bufio.NewScanner(env.In)
	for {
		fmt.Fprint(env.Out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(env.Out)
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		verb, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		switch verb {
		case "quit", "exit", "q":
			return ExitSuccess
		case "help", "?":
			fmt.Fprint(env.Out, boardHelp)
		case "list", "ls":
			renderBoard(env, b)
		case "reload":
			if err := b.Load(ctx); err != nil {
				reportError(env.ErrOut, err)
				continue
			}
			renderBoard(env, b)
		case "add":
			title, description, ok := strings.Cut(rest, "|")
			if !ok {
				fmt.Fprintln(env.ErrOut, "error: usage: add <title> | <description>")
				continue
			}
			if _, err := b.Add(ctx, title, description); err != nil {
				reportError(env.ErrOut, err)
				continue
			}
			renderBoard(env, b)
		case "done":
			tasks := b.Tasks()
			n, err := strconv.Atoi(rest)
			if err != nil || n < 1 || n > len(tasks) {
				fmt.Fprintf(env.ErrOut, "error: no task number %q on the board\n", rest)
				continue
			}
			if err := b.Complete(ctx, tasks[n-1].ID); err != nil {
				reportError(env.ErrOut, err)
				continue
			}
			renderBoard(env, b)
		default:
			fmt.Fprintf(env.ErrOut, "error: unknown board command: %s (try help)\n", verb)
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(env.ErrOut, "error: %v\n", err)
		return ExitUserError
	}
	return ExitSuccess
}

func renderBoard(env *Env, b *board.Board) {
	tasks := b.Tasks()
	if len(tasks) == 0 {
		fmt.Fprintln(env.Out, "nothing to do")
		return
	}
	for i, t := range tasks {
		formatBoardLine(env.Out, i+1, t)
	}
}
