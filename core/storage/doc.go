// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so whitelist documents and Module.symvers tables
// can be read straight from a build artifact bucket (AWS S3 or self-hosted MinIO),
// and check reports can be archived next to them.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - GetObject: Retrieves content as a stream.
//   - PutObject: Uploads content (with size and options).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	obj, err := client.GetObject(ctx, "builds", "android14/Module.symvers", minio.GetObjectOptions{})
package storage
