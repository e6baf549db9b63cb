package cli

// Exit codes returned by Dispatcher.Run.
const (
	// ExitSuccess indicates successful completion.
	ExitSuccess = 0

	// ExitUserError indicates a user error (bad args, invalid input, unknown task).
	ExitUserError = 1

	// ExitBackendError indicates the API was unreachable or failed.
	ExitBackendError = 2
)
