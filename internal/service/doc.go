// Package service contains the application use cases for tasks. It sits
// between the HTTP layer and the repositories defined in internal/store.
//
// Services receive their repository through constructor injection, validate
// and normalize input, and translate repository errors into service-level
// errors:
//
//   - expected conditions are returned as sentinels (ErrTaskNotFound) or as
//     *domain.ValidationError values that callers check with errors.Is/As
//   - unexpected failures are wrapped in *TaskServiceError, keeping the
//     original error reachable through Unwrap
//
// The API layer maps those errors to HTTP status codes.
package service
