// Package mocks provides hand-written test doubles for the store and
// service interfaces. Each mock exposes function fields so tests can
// script behavior per call, with zero-value fields falling back to the
// mock's default response values.
package mocks
