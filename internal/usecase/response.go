package usecase

import (
	"fmt"
	"strings"
)

// FailureKind classifies a use-case failure. The transport adapter maps
// each kind to a protocol status code.
type FailureKind string

const (
	ParametersError  FailureKind = "ParametersError"
	ResourceNotFound FailureKind = "ResourceNotFound"
	ResourceError    FailureKind = "ResourceError"
	AuthError        FailureKind = "AuthError"
	SystemError      FailureKind = "SystemError"
)

// Failure is the typed failure half of a Response.
type Failure struct {
	Kind    FailureKind `json:"type"`
	Message string      `json:"message"`
}

// Response is the tagged result of a use-case execution: a success value
// or a typed failure, never both.
type Response struct {
	value   any
	failure *Failure
}

// Success wraps a value in a success Response.
func Success(value any) Response {
	return Response{value: value}
}

// Fail builds a failure Response of the given kind.
func Fail(kind FailureKind, message string) Response {
	return Response{failure: &Failure{Kind: kind, Message: message}}
}

// FailErr builds a failure Response from an error, rendering the message
// as "<type>: <text>" so the error's class survives stringification.
func FailErr(kind FailureKind, err error) Response {
	return Fail(kind, fmt.Sprintf("%T: %v", err, err))
}

// FailValidation builds the ParametersError Response for an invalid
// request, joining the field errors line by line.
func FailValidation(violations Violations) Response {
	lines := make([]string, len(violations))
	for i, v := range violations {
		lines[i] = v.String()
	}
	return Fail(ParametersError, strings.Join(lines, "\n"))
}

// Ok reports whether the response is a success.
func (r Response) Ok() bool {
	return r.failure == nil
}

// Value returns the success value. Only meaningful when Ok.
func (r Response) Value() any {
	return r.value
}

// Failure returns the typed failure, or nil for a success.
func (r Response) Failure() *Failure {
	return r.failure
}
