// Package logger provides a structured logging facility based on Zap.
//
// New builds a development or production logger depending on the configured
// level, with json or console encoding. When a log file is configured, entries are
// duplicated into a JSON file rotated by lumberjack.
//
// # Context Awareness
//
// WithRayID extracts the RayID stored by the rayid middleware from a Fiber context
// and attaches it to the log entry, so all logs of one request can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
