// Package store defines the persistence contract for tasks. The interfaces
// here abstract the underlying storage engine from the service layer; the
// implementations live under internal/platform.
package store
