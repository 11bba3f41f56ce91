// Package metrics keeps in-process request counters exposed by the status
// feature. Nothing is persisted; counters reset with the process.
package metrics
