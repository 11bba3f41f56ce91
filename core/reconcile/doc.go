// Package reconcile mirrors the site root into object storage.
//
// # Flow
//
//  1. ReconcileWithPlan hashes the local tree and lists the bucket
//     concurrently, then compares them key by key.
//  2. The returned ReconcilePlan lists per-key results, the planned actions
//     and a summary. Nothing has been mutated at this point.
//  3. ApplyPlan uploads new and changed files and, when purge was requested,
//     deletes objects that no longer exist locally in one batch.
//
// # Comparison
//
// Local files are compared with objects by size and MD5 against the ETag.
// Multipart ETags are not content hashes; for those only the size is compared.
// Hidden files and directories (leading dot) are never published.
//
// # Safety
//
// ApplyPlan is a no-op unless ReconcileOptions.Confirmed is true and DryRun is
// false. Deletions are only planned with DoPurge.
package reconcile
