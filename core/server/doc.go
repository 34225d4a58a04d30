// Package server holds the HTTP server configuration and the Fiber application
// factory shared by the start command and handler tests.
//
// NewApp configures json-iterator as the JSON codec and applies the request body
// limit. RespondError is the single place classified errors become responses.
package server
