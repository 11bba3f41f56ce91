// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - RayID: tags every request with a request id (X-Ray-ID), stored in the
//     fiber locals for logger.WithRayID and echoed in the response.
//   - AccessLog: one zap line per request with the final status, feeding the
//     metrics recorder.
//   - Auth: API key check guarding the /_server admin endpoints.
//
// RayID must be registered first so every later log line carries the id.
package middleware
