// Package store defines the persistence interfaces consumed by the use
// cases, together with the shared paging, filtering and error types.
// Implementations live under internal/platform.
package store
