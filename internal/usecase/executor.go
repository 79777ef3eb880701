package usecase

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/quillhq/quill-api/internal/platform/logger"
)

// Result is what a process step hands back to Execute: either a raw
// value to be wrapped in a success Response, or an already-built
// Response (typically a failure the step classified itself).
type Result struct {
	value any
	resp  *Response
}

// Value wraps a success value in a Result.
func Value(v any) Result {
	return Result{value: v}
}

// Respond passes a pre-built Response through the executor unchanged.
func Respond(resp Response) Result {
	return Result{resp: &resp}
}

// Execute is the single execution contract shared by every use case:
//
//  1. An invalid request short-circuits to Failure(ParametersError, ...)
//     without invoking the process step.
//  2. Otherwise the process step runs against the validated payload.
//  3. A panic inside the step is recovered and demoted to
//     Failure(SystemError, ...); the stack is logged, never returned.
//     A recovered value that is already a Response passes through
//     unchanged: the step had classified the outcome before bailing.
//  4. A Result carrying a Response is returned as-is; a Result carrying
//     a value is wrapped in Success.
//
// Every execution terminates in exactly one Response.
func Execute[T any](ctx context.Context, req Request[T], process func(context.Context, T) Result) (resp Response) {
	if !req.Ok() {
		return FailValidation(req.Violations())
	}

	defer func() {
		if rec := recover(); rec != nil {
			if pre, ok := rec.(Response); ok {
				resp = pre
				return
			}
			logger.FromContext(ctx).Error("use case panicked",
				"panic", fmt.Sprintf("%v", rec),
				"stack", string(debug.Stack()))
			resp = Fail(SystemError, fmt.Sprintf("%v", rec))
		}
	}()

	result := process(ctx, req.Payload())
	if result.resp != nil {
		return *result.resp
	}
	return Success(result.value)
}
