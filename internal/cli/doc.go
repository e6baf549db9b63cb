// Package cli implements the taskctl terminal front end: a command registry,
// a dispatcher that parses per-command flags, and the commands themselves.
// Commands talk to the API through a TaskClient, which tests replace with an
// in-memory fake.
package cli
