package reconcile

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"site-server/core/storage"
	"site-server/core/utils"

	"github.com/minio/minio-go/v7"
)

// LoadLocalIndex walks root and hashes every regular file. Hidden files and
// directories are skipped, as are symlinks.
func LoadLocalIndex(ctx context.Context, root string) (map[string]LocalFile, error) {
	index := make(map[string]LocalFile)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if path == root {
			return nil
		}
		if utils.IsHidden(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		sum, size, err := hashFile(path)
		if err != nil {
			return err
		}

		key := utils.ToSlashKey(rel)
		index[key] = LocalFile{Key: key, Path: path, Size: size, MD5: sum}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to index %s: %w", root, err)
	}
	return index, nil
}

func hashFile(path string) (string, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, err
	}
	defer f.Close()

	h := md5.New()
	n, err := io.Copy(h, f)
	if err != nil {
		return "", 0, err
	}
	return hex.EncodeToString(h.Sum(nil)), n, nil
}

// LoadRemoteIndex lists every object under the configured prefix.
// Folder placeholder objects (keys ending in "/") are ignored.
func LoadRemoteIndex(ctx context.Context, client storage.Client, cfg storage.Config) (map[string]RemoteObject, error) {
	// Cancelling stops minio's listing goroutine if we bail out early.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	index := make(map[string]RemoteObject)
	prefix := cfg.ListPrefix()

	opts := minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}
	for obj := range client.ListObjects(ctx, cfg.Bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list bucket %s: %w", cfg.Bucket, obj.Err)
		}
		if strings.HasSuffix(obj.Key, "/") {
			continue
		}
		key := strings.TrimPrefix(obj.Key, prefix)
		index[key] = RemoteObject{
			Key:  key,
			Size: obj.Size,
			ETag: strings.Trim(obj.ETag, `"`),
		}
	}
	return index, nil
}
