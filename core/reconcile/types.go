package reconcile

import "site-server/core/storage"

// LocalFile is a file under the site root.
type LocalFile struct {
	// Key is the slash-separated path relative to the root.
	Key string `json:"key"`
	// Path is the absolute filesystem path.
	Path string `json:"-"`
	// Size is the file size in bytes.
	Size int64 `json:"size"`
	// MD5 is the hex MD5 of the content, comparable to single-part ETags.
	MD5 string `json:"md5"`
}

// RemoteObject is a published object, keyed relative to the storage prefix.
type RemoteObject struct {
	Key  string `json:"key"`
	Size int64  `json:"size"`
	ETag string `json:"etag"`
}

// Spec bundles what a reconciliation compares.
type Spec struct {
	// Root is the site directory being published.
	Root string
	// Storage locates the bucket and key prefix.
	Storage storage.Config
	// CacheControl is set on uploaded objects when non-empty.
	CacheControl string
}

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionUpload puts a local file into the bucket.
	ActionUpload ActionType = "upload"
	// ActionDeleteRemote removes an object that no longer exists locally.
	ActionDeleteRemote ActionType = "delete_remote"
)

// Action represents a planned mutation operation.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`
	// Key is the root-relative key.
	Key string `json:"key"`
	// Reason explains why this action is needed.
	Reason string `json:"reason"`
}

// ReconcileResult is the comparison outcome for one key.
type ReconcileResult struct {
	Key           string `json:"key"`
	LocalPresent  bool   `json:"local_present"`
	RemotePresent bool   `json:"remote_present"`
	// InSync is true when both sides exist with the same content.
	InSync bool `json:"in_sync"`
}

// PlanSummary provides aggregate statistics for a plan.
type PlanSummary struct {
	TotalItems    int `json:"total_items"`
	InSync        int `json:"in_sync"`
	MissingRemote int `json:"missing_remote"`
	MissingLocal  int `json:"missing_local"`
	Changed       int `json:"changed"`
	UploadActions int `json:"upload_actions"`
	DeleteActions int `json:"delete_actions"`
}

// ReconcilePlan contains reconciliation results and planned actions.
type ReconcilePlan struct {
	Results []ReconcileResult `json:"results"`
	Actions []Action          `json:"actions"`
	Summary PlanSummary       `json:"summary"`

	// BucketExists is false when the bucket must be created on apply.
	BucketExists bool `json:"bucket_exists"`

	local map[string]LocalFile
}

// ReconcileOptions controls plan and apply behavior.
type ReconcileOptions struct {
	// DryRun prevents execution of any mutations if true.
	DryRun bool
	// DoPurge plans deletion of remote objects missing locally.
	DoPurge bool
	// Confirmed must be true for ApplyPlan to mutate anything.
	Confirmed bool
}
