// Package publish mirrors the site root into an S3-compatible bucket.
//
// Publishing is a two step workflow. A plan compares the local tree with the
// bucket and lists the uploads (and, with purge, the deletions) needed to make
// them match. Applying recomputes the plan and executes it.
//
// # HTTP Endpoints
//
//   - GET /_server/publish : Returns the plan (supports ?purge=true).
//   - POST /_server/publish?confirm=true : Applies the plan (supports &purge=true).
//
// Both endpoints are API key protected. The feature is only loaded when
// storage.enabled is set.
package publish
