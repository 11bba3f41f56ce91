// Package logger builds the zap logger shared by the server and the CLI.
//
// Level "debug" selects zap's development config, anything else the
// production config. Format picks console or json encoding; console output
// uses colored levels and ISO8601 timestamps.
//
// WithRayID attaches the request's RayID (set by the rayid middleware) so log
// lines from one request can be correlated.
//
//	l := logger.WithRayID(log, c)
//	l.Warn("Traversal attempt rejected", zap.String("path", p))
package logger
