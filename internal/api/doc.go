// Package api contains the HTTP transport adapter: request DTOs, the
// handlers that build use-case requests from protocol input, and the
// translation of use-case responses into status codes and JSON bodies.
package api
