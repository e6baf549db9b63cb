// Package domain contains the core business entities, value objects, and
// validation errors of the task tracker. It has no knowledge of persistence
// or transport and is shared by every other layer.
package domain
