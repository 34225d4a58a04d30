// Package request decodes and validates JSON request payloads.
//
// Payload structs declare constraints with go-playground/validator tags. Besides
// the builtin tags, `lines=N` limits a string to N lines. Failures are returned as
// apperr BadRequest errors naming the first offending field.
package request
