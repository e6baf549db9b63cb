// Package client is a typed HTTP client for the task API mounted under
// /api/v1. Every method takes a context and returns domain transfer objects;
// non-2xx responses are returned as *APIError.
package client
