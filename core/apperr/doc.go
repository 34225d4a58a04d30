// Package apperr defines the classified errors services return.
//
// A service fails with NotFound, BadRequest or Unauthorized for expected
// conditions, and wraps anything unexpected with Wrap. Status and PublicMessage
// translate an error into an HTTP response without leaking internal causes.
package apperr
