// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - rayid: assigns every request a RayID (an xid), stores it in the context and
//     echoes it in the X-Ray-ID response header for tracing.
//   - auth: validates the API key and resolves the acting user from X-User-ID.
package middleware
