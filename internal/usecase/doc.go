// Package usecase implements the application's business operations behind
// a uniform request/response pipeline: a builder validates raw input into
// a typed Request, Execute runs the operation's process step against the
// validated payload, and every execution terminates in exactly one
// Response carrying either a success value or a typed failure.
package usecase
