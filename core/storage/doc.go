// Package storage provides the object storage client used to publish the site.
//
// It wraps the MinIO Go client, which works against both AWS S3 and
// self-hosted MinIO. The Client interface is the subset of *minio.Client the
// publisher calls, so tests can substitute core/storage/mocks.
//
// # Operations
//
//   - BucketExists / MakeBucket: the bucket is created on first publish.
//   - PutObject: uploads one file with its content type.
//   - ListObjects: lists published objects under the configured prefix.
//   - RemoveObjects: batch deletion used by purge.
//
// # Usage
//
//	client, err := storage.NewClient(cfg)
//	exists, err := client.BucketExists(ctx, cfg.Bucket)
package storage
