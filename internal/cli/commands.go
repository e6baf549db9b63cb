package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"

	"github.com/phrazzld/tasks-api/internal/domain"
)

// RecentCmd lists the most recent active tasks.
type RecentCmd struct {
	count int
}

func (c *RecentCmd) Name() string      { return "recent" }
func (c *RecentCmd) Aliases() []string { return []string{"ls"} }
func (c *RecentCmd) Synopsis() string  { return "List the most recent active tasks" }
func (c *RecentCmd) Usage() string     { return "taskctl recent [-count N]" }
func (c *RecentCmd) NeedsAPI() bool    { return true }

func (c *RecentCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.count, "count", 0, "number of tasks (server default when 0)")
	fs.IntVar(&c.count, "n", 0, "")
}

func (c *RecentCmd) Run(ctx context.Context, env *Env, args []string) int {
	if len(args) > 0 {
		fmt.Fprintf(env.ErrOut, "error: unexpected arguments\nusage: %s\n", c.Usage())
		return ExitUserError
	}
	if c.count < 0 {
		fmt.Fprintf(env.ErrOut, "error: count must be positive: %d\n", c.count)
		return ExitUserError
	}

	tasks, err := env.API.Recent(ctx, c.count)
	if err != nil {
		return reportError(env.ErrOut, err)
	}
	formatTaskList(env.Out, tasks)
	return ExitSuccess
}

// AllCmd lists every task.
type AllCmd struct{}

func (c *AllCmd) Name() string                   { return "all" }
func (c *AllCmd) Aliases() []string              { return nil }
func (c *AllCmd) Synopsis() string               { return "List all tasks, completed included" }
func (c *AllCmd) Usage() string                  { return "taskctl all" }
func (c *AllCmd) NeedsAPI() bool                 { return true }
func (c *AllCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AllCmd) Run(ctx context.Context, env *Env, args []string) int {
	tasks, err := env.API.All(ctx)
	if err != nil {
		return reportError(env.ErrOut, err)
	}
	formatTaskList(env.Out, tasks)
	return ExitSuccess
}

// ShowCmd prints one task.
type ShowCmd struct{}

func (c *ShowCmd) Name() string                   { return "show" }
func (c *ShowCmd) Aliases() []string              { return []string{"get"} }
func (c *ShowCmd) Synopsis() string               { return "Show a task" }
func (c *ShowCmd) Usage() string                  { return "taskctl show <id>" }
func (c *ShowCmd) NeedsAPI() bool                 { return true }
func (c *ShowCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ShowCmd) Run(ctx context.Context, env *Env, args []string) int {
	id, err := parseTaskID(args)
	if err != nil {
		fmt.Fprintf(env.ErrOut, "error: %v\n", err)
		return ExitUserError
	}

	task, err := env.API.Get(ctx, id)
	if err != nil {
		return reportError(env.ErrOut, err)
	}
	formatTaskDetail(env.Out, task)
	return ExitSuccess
}

// AddCmd creates a task.
type AddCmd struct {
	title       string
	description string
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string     { return "taskctl add -title <title> -description <description>" }
func (c *AddCmd) NeedsAPI() bool    { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.title, "title", "", "task title")
	fs.StringVar(&c.title, "t", "", "")
	fs.StringVar(&c.description, "description", "", "task description")
	fs.StringVar(&c.description, "d", "", "")
}

func (c *AddCmd) Run(ctx context.Context, env *Env, args []string) int {
	if len(args) > 0 {
		fmt.Fprintf(env.ErrOut, "error: unexpected arguments\nusage: %s\n", c.Usage())
		return ExitUserError
	}

	task, err := env.API.Create(ctx, domain.CreateTaskInput{Title: c.title, Description: c.description})
	if err != nil {
		return reportError(env.ErrOut, err)
	}
	fmt.Fprintln(env.Out, task.ID)
	return ExitSuccess
}

// DoneCmd marks a task completed.
type DoneCmd struct{}

func (c *DoneCmd) Name() string                   { return "done" }
func (c *DoneCmd) Aliases() []string              { return []string{"complete"} }
func (c *DoneCmd) Synopsis() string               { return "Mark a task completed" }
func (c *DoneCmd) Usage() string                  { return "taskctl done <id>" }
func (c *DoneCmd) NeedsAPI() bool                 { return true }
func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, env *Env, args []string) int {
	id, err := parseTaskID(args)
	if err != nil {
		fmt.Fprintf(env.ErrOut, "error: %v\n", err)
		return ExitUserError
	}

	if _, err := env.API.Complete(ctx, id); err != nil {
		return reportError(env.ErrOut, err)
	}
	fmt.Fprintln(env.Out, "ok")
	return ExitSuccess
}

// EditCmd applies a partial update. Only flags given on the command line are
// sent.
type EditCmd struct {
	title       optionalString
	description optionalString
	completed   optionalBool
}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return []string{"update"} }
func (c *EditCmd) Synopsis() string  { return "Change a task" }
func (c *EditCmd) Usage() string {
	return "taskctl edit <id> [-title <title>] [-description <description>] [-completed true|false]"
}
func (c *EditCmd) NeedsAPI() bool { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	c.title, c.description, c.completed = optionalString{}, optionalString{}, optionalBool{}
	fs.Var(&c.title, "title", "new title")
	fs.Var(&c.description, "description", "new description")
	fs.Var(&c.completed, "completed", "completion state")
}

func (c *EditCmd) Run(ctx context.Context, env *Env, args []string) int {
	id, err := parseTaskID(args)
	if err != nil {
		fmt.Fprintf(env.ErrOut, "error: %v\n", err)
		return ExitUserError
	}

	patch := domain.TaskPatch{
		Title:       c.title.ptr(),
		Description: c.description.ptr(),
		IsCompleted: c.completed.ptr(),
	}
	if patch.IsEmpty() {
		fmt.Fprintf(env.ErrOut, "error: nothing to change\nusage: %s\n", c.Usage())
		return ExitUserError
	}

	task, err := env.API.Update(ctx, id, patch)
	if err != nil {
		return reportError(env.ErrOut, err)
	}
	formatTaskDetail(env.Out, task)
	return ExitSuccess
}

// RmCmd deletes a task.
type RmCmd struct{}

func (c *RmCmd) Name() string                   { return "rm" }
func (c *RmCmd) Aliases() []string              { return []string{"delete"} }
func (c *RmCmd) Synopsis() string               { return "Delete a task" }
func (c *RmCmd) Usage() string                  { return "taskctl rm <id>" }
func (c *RmCmd) NeedsAPI() bool                 { return true }
func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *RmCmd) Run(ctx context.Context, env *Env, args []string) int {
	id, err := parseTaskID(args)
	if err != nil {
		fmt.Fprintf(env.ErrOut, "error: %v\n", err)
		return ExitUserError
	}

	if err := env.API.Delete(ctx, id); err != nil {
		return reportError(env.ErrOut, err)
	}
	fmt.Fprintln(env.Out, "ok")
	return ExitSuccess
}

// HelpCmd prints usage.
type HelpCmd struct{}

func (c *HelpCmd) Name() string                   { return "help" }
func (c *HelpCmd) Aliases() []string              { return nil }
func (c *HelpCmd) Synopsis() string               { return "Print usage" }
func (c *HelpCmd) Usage() string                  { return "taskctl help" }
func (c *HelpCmd) NeedsAPI() bool                 { return false }
func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, env *Env, args []string) int {
	fmt.Fprintln(env.Out, "Usage: taskctl [-api <url>] <command> [flags] [args]")
	fmt.Fprintln(env.Out)
	fmt.Fprintln(env.Out, "Commands:")
	if env.Registry != nil {
		for _, cmd := range env.Registry.All() {
			fmt.Fprintf(env.Out, "  %-8s %s\n", cmd.Name(), cmd.Synopsis())
			fmt.Fprintf(env.Out, "           %s\n", cmd.Usage())
		}
	}
	return ExitSuccess
}

// optionalString is a flag.Value that remembers whether it was set.
type optionalString struct {
	value string
	set   bool
}

func (o *optionalString) String() string { return o.value }

func (o *optionalString) Set(s string) error {
	o.value, o.set = s, true
	return nil
}

func (o *optionalString) ptr() *string {
	if !o.set {
		return nil
	}
	return domain.Ptr(o.value)
}

// optionalBool is a boolean flag.Value that remembers whether it was set.
// It requires an explicit value: -completed=true or -completed false.
type optionalBool struct {
	value bool
	set   bool
}

func (o *optionalBool) String() string {
	if !o.set {
		return ""
	}
	return strconv.FormatBool(o.value)
}

func (o *optionalBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return errors.New("must be true or false")
	}
	o.value, o.set = v, true
	return nil
}

func (o *optionalBool) ptr() *bool {
	if !o.set {
		return nil
	}
	return domain.Ptr(o.value)
}
