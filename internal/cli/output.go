package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/tasks-api/internal/board"
	"github.com/phrazzld/tasks-api/internal/client"
	"github.com/phrazzld/tasks-api/internal/domain"
)

// ErrTaskIDRequired is returned when a command needs a task id and none was given.
var ErrTaskIDRequired = errors.New("task id required")

// formatTaskLine writes "{ID}  [x]  {TITLE}".
func formatTaskLine(w io.Writer, task domain.TaskView) {
	mark := " "
	if task.IsCompleted {
		mark = "x"
	}
	fmt.Fprintf(w, "%s  [%s]  %s\n", task.ID, mark, normalizeText(task.Title))
}

// formatBoardLine writes a numbered board entry with its description
// indented underneath.
func formatBoardLine(w io.Writer, num int, task domain.TaskView) {
	fmt.Fprintf(w, "%4d  %s\n", num, normalizeText(task.Title))
	fmt.Fprintf(w, "      %s\n", normalizeText(task.Description))
}

func formatTaskDetail(w io.Writer, task domain.TaskView) {
	completed := "no"
	if task.IsCompleted {
		completed = "yes"
	}
	fmt.Fprintf(w, "ID:          %s\n", task.ID)
	fmt.Fprintf(w, "Title:       %s\n", normalizeText(task.Title))
	fmt.Fprintf(w, "Description: %s\n", normalizeText(task.Description))
	fmt.Fprintf(w, "Completed:   %s\n", completed)
	fmt.Fprintf(w, "Created:     %s\n", task.CreatedAt.UTC().Format(time.RFC3339))
}

func formatTaskList(w io.Writer, tasks []domain.TaskView) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "no tasks")
		return
	}
	for _, t := range tasks {
		formatTaskLine(w, t)
	}
}

// normalizeText keeps one entry on one line.
func normalizeText(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	if strings.TrimSpace(s) == "" {
		return "(empty)"
	}
	return s
}

// parseTaskID reads the task id from the first positional argument.
func parseTaskID(args []string) (uuid.UUID, error) {
	if len(args) == 0 {
		return uuid.Nil, ErrTaskIDRequired
	}
	if len(args) > 1 {
		return uuid.Nil, fmt.Errorf("unexpected arguments: %s", strings.Join(args[1:], " "))
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid task id: %s", args[0])
	}
	return id, nil
}

// reportError prints err and returns the matching exit code.
func reportError(errOut io.Writer, err error) int {
	var apiErr *client.APIError
	switch {
	case errors.Is(err, board.ErrBusy):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return ExitUserError
	case errors.Is(err, client.ErrNotFound):
		fmt.Fprintln(errOut, "error: task not found")
		return ExitUserError
	case errors.Is(err, client.ErrBadRequest) && errors.As(err, &apiErr):
		fmt.Fprintf(errOut, "error: %s\n", apiErr.Message)
		return ExitUserError
	case domain.IsValidationError(err):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return ExitUserError
	default:
		fmt.Fprintf(errOut, "error: backend error: %v\n", err)
		return ExitBackendError
	}
}
