// Package integrity checks that the site root holds the files the site
// cannot work without.
//
// The list of critical files comes from server.critical_files. A file counts
// as present only when it resolves inside the root to a regular file, using
// the same resolution rules as the static handler.
//
// # HTTP Endpoints
//
//   - GET /_server/integrity : Lists missing critical files (API key protected).
package integrity
