package reconcile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"site-server/core/storage"
	"site-server/core/utils"

	"github.com/minio/minio-go/v7"
)

// ReconcileWithPlan compares the site root with the bucket and returns the
// actions needed to make the bucket mirror the root. It does NOT execute
// actions; use ApplyPlan for that.
func ReconcileWithPlan(ctx context.Context, spec *Spec, client storage.Client, opts ReconcileOptions) (*ReconcilePlan, error) {
	exists, err := client.BucketExists(ctx, spec.Storage.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}

	var (
		local     map[string]LocalFile
		remote    map[string]RemoteObject
		localErr  error
		remoteErr error
		wg        sync.WaitGroup
	)

	// Hashing the tree and listing the bucket are independent.
	wg.Add(1)
	go func() {
		defer wg.Done()
		local, localErr = LoadLocalIndex(ctx, spec.Root)
	}()

	if exists {
		wg.Add(1)
		go func() {
			defer wg.Done()
			remote, remoteErr = LoadRemoteIndex(ctx, client, spec.Storage)
		}()
	}

	wg.Wait()

	if localErr != nil {
		return nil, localErr
	}
	if remoteErr != nil {
		return nil, remoteErr
	}

	plan := buildPlan(local, remote, opts)
	plan.BucketExists = exists
	return plan, nil
}

func buildPlan(local map[string]LocalFile, remote map[string]RemoteObject, opts ReconcileOptions) *ReconcilePlan {
	keys := make([]string, 0, len(local)+len(remote))
	for k := range local {
		keys = append(keys, k)
	}
	for k := range remote {
		if _, ok := local[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	plan := &ReconcilePlan{
		Results: make([]ReconcileResult, 0, len(keys)),
		Actions: []Action{},
		local:   local,
	}
	plan.Summary.TotalItems = len(keys)

	for _, key := range keys {
		lf, inLocal := local[key]
		ro, inRemote := remote[key]

		result := ReconcileResult{Key: key, LocalPresent: inLocal, RemotePresent: inRemote}

		switch {
		case inLocal && !inRemote:
			plan.Summary.MissingRemote++
			plan.Actions = append(plan.Actions, Action{Type: ActionUpload, Key: key, Reason: "missing in bucket"})
		case !inLocal && inRemote:
			plan.Summary.MissingLocal++
			if opts.DoPurge {
				plan.Actions = append(plan.Actions, Action{Type: ActionDeleteRemote, Key: key, Reason: "not present locally"})
			}
		case sameContent(lf, ro):
			result.InSync = true
			plan.Summary.InSync++
		default:
			plan.Summary.Changed++
			plan.Actions = append(plan.Actions, Action{Type: ActionUpload, Key: key, Reason: "content changed"})
		}

		plan.Results = append(plan.Results, result)
	}

	for _, a := range plan.Actions {
		switch a.Type {
		case ActionUpload:
			plan.Summary.UploadActions++
		case ActionDeleteRemote:
			plan.Summary.DeleteActions++
		}
	}

	return plan
}

// sameContent compares a local file with its object. Multipart ETags are not
// content hashes, so only the size can be compared for those.
func sameContent(lf LocalFile, ro RemoteObject) bool {
	if lf.Size != ro.Size {
		return false
	}
	if strings.Contains(ro.ETag, "-") {
		return true
	}
	return strings.EqualFold(lf.MD5, ro.ETag)
}

// ApplyPlan executes the actions in a plan and returns how many ran.
// Requires opts.Confirmed=true and opts.DryRun=false to actually execute.
func ApplyPlan(ctx context.Context, spec *Spec, client storage.Client, plan *ReconcilePlan, opts ReconcileOptions) (executed int, err error) {
	if !opts.Confirmed || opts.DryRun {
		return 0, nil
	}

	if !plan.BucketExists {
		err := client.MakeBucket(ctx, spec.Storage.Bucket, minio.MakeBucketOptions{Region: spec.Storage.Region})
		if err != nil {
			return 0, fmt.Errorf("failed to create bucket %s: %w", spec.Storage.Bucket, err)
		}
		plan.BucketExists = true
	}

	var deleteKeys []string
	for _, action := range plan.Actions {
		switch action.Type {
		case ActionUpload:
			if err := upload(ctx, spec, client, plan.local[action.Key]); err != nil {
				return executed, fmt.Errorf("failed to upload %s: %w", action.Key, err)
			}
			executed++
		case ActionDeleteRemote:
			deleteKeys = append(deleteKeys, action.Key)
		}
	}

	if len(deleteKeys) > 0 {
		if err := removeBatch(ctx, spec, client, deleteKeys); err != nil {
			return executed, err
		}
		executed += len(deleteKeys)
	}

	return executed, nil
}

func upload(ctx context.Context, spec *Spec, client storage.Client, lf LocalFile) error {
	if lf.Path == "" {
		return errors.New("file missing from local index")
	}

	f, err := os.Open(lf.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	opts := minio.PutObjectOptions{
		ContentType:  utils.ContentType(lf.Key),
		CacheControl: spec.CacheControl,
	}
	_, err = client.PutObject(ctx, spec.Storage.Bucket, spec.Storage.ObjectKey(lf.Key), f, info.Size(), opts)
	return err
}

func removeBatch(ctx context.Context, spec *Spec, client storage.Client, keys []string) error {
	objectsCh := make(chan minio.ObjectInfo)
	go func() {
		defer close(objectsCh)
		for _, key := range keys {
			select {
			case objectsCh <- minio.ObjectInfo{Key: spec.Storage.ObjectKey(key)}:
			case <-ctx.Done():
				return
			}
		}
	}()

	var errs []error
	for rErr := range client.RemoveObjects(ctx, spec.Storage.Bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		errs = append(errs, fmt.Errorf("failed to delete %s: %w", rErr.ObjectName, rErr.Err))
	}
	return errors.Join(errs...)
}
