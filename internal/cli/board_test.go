package cli_test

import (
	"strings"
	"testing"

	"github.com/phrazzld/tasks-api/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardSession(t *testing.T) {
	fake := newFakeClient()
	fake.add("Buy milk", "2%, 1 gallon", false)

	input := strings.Join([]string{
		"add Pay rent | Before the 5th",
		"done 2",
		"list",
		"quit",
		"add never | reached",
	}, "\n")

	stdout, stderr, code := run(t, fake, input, "board")
	require.Equal(t, cli.ExitSuccess, code, stderr)
	assert.Empty(t, stderr)

	// initial render, after add, after done, after list
	assert.Equal(t, 4, strings.Count(stdout, "   1  "))
	assert.Contains(t, stdout, "   1  Pay rent\n      Before the 5th\n")
	assert.Contains(t, stdout, "   2  Buy milk\n")

	all, err := fake.All(t.Context())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.True(t, all[0].IsCompleted, "Buy milk completed")
	assert.False(t, all[1].IsCompleted)
}

func TestBoardSessionErrorsKeepGoing(t *testing.T) {
	fake := newFakeClient()

	input := strings.Join([]string{
		"add no separator",
		"add   | description only",
		"done 1",
		"dance",
		"help",
	}, "\n")

	stdout, stderr, code := run(t, fake, input, "board")
	assert.Equal(t, cli.ExitSuccess, code, "EOF ends the session")
	assert.Contains(t, stdout, "nothing to do")
	assert.Contains(t, stdout, "done <n>")
	assert.Contains(t, stderr, "error: usage: add <title> | <description>\n")
	assert.Contains(t, stderr, "error: title must not be empty\n")
	assert.Contains(t, stderr, "error: no task number \"1\" on the board\n")
	assert.Contains(t, stderr, "error: unknown board command: dance")

	all, err := fake.All(t.Context())
	require.NoError(t, err)
	assert.Empty(t, all)
}
