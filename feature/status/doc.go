// Package status exposes server health and request statistics.
//
// # HTTP Endpoints
//
//   - GET /_server/health : liveness and uptime (public).
//   - GET /_server/stats : request counters and the served root (API key).
//   - GET /_server/swagger/* : Swagger UI for the admin API.
package status
