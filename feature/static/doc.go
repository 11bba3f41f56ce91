// Package static serves the files of a root directory over HTTP.
//
// Every GET (and HEAD) request not claimed by another feature lands on the
// catch-all route. The request path is resolved against the root by Resolve:
//
//   - ".." segments and NUL bytes are rejected with 403, never normalized away.
//   - Symlinks are followed, but a target outside the root is rejected with 403.
//   - Anything that does not exist is a 404.
//
// Directories are redirected to their slash-terminated form, then served from
// index.html / index.htm, or as an HTML listing when neither exists.
//
// Files carry a Content-Type inferred from the extension (application/octet-stream
// when unknown), Last-Modified, and the configured Cache-Control. A request whose
// If-Modified-Since is not older than the file gets a 304.
package static
