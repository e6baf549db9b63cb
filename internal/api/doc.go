// Package api handles incoming HTTP requests for tasks: routing, request
// decoding, and response formatting. It adapts HTTP to the operations of
// service.TaskService and maps service errors to status codes.
package api
