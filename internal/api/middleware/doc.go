// Package middleware holds the HTTP middleware mounted in front of the task
// API: request tracing, CORS, and rate limiting.
package middleware
