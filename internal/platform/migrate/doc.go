// Package migrate applies the embedded goose migrations for the supported
// database dialects. Goose keeps its configuration in package globals, so every
// run goes through a single mutex-guarded Runner call.
package migrate
