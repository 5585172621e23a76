package kmi

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"kmi-checker/core/storage"
	"kmi-checker/core/symbols"

	"github.com/minio/minio-go/v7"
)

// StorageScheme prefixes source references read from object storage.
const StorageScheme = "s3://"

// Sources names the two inputs of a check. Each is a local path or an
// s3://bucket/key reference.
type Sources struct {
	Whitelist string `json:"whitelist"`
	Symvers   string `json:"symvers"`
}

// WithDefaults fills empty references from the configuration.
func (s Sources) WithDefaults(cfg Config) Sources {
	if s.Whitelist == "" {
		s.Whitelist = cfg.WhitelistPath
	}
	if s.Symvers == "" {
		s.Symvers = cfg.SymversPath
	}
	return s
}

// IsStorageRef reports whether ref points into object storage.
func IsStorageRef(ref string) bool {
	return strings.HasPrefix(ref, StorageScheme)
}

// ParseStorageRef splits s3://bucket/key. An empty bucket (s3:///key) selects
// defaultBucket.
func ParseStorageRef(ref, defaultBucket string) (bucket, key string, err error) {
	rest, ok := strings.CutPrefix(ref, StorageScheme)
	if !ok {
		return "", "", fmt.Errorf("not a storage reference: %q", ref)
	}
	bucket, key, _ = strings.Cut(rest, "/")
	if bucket == "" {
		bucket = defaultBucket
	}
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid storage reference %q, expected s3://bucket/key", ref)
	}
	return bucket, key, nil
}

// Opener reads source references to completion.
type Opener struct {
	client storage.Client
	bucket string
}

// NewOpener creates an opener. client may be nil when only local paths are used.
func NewOpener(client storage.Client, bucket string) *Opener {
	return &Opener{client: client, bucket: bucket}
}

// ReadAll returns the full content of ref. Unreadable inputs wrap
// symbols.ErrInputNotFound.
func (o *Opener) ReadAll(ctx context.Context, ref string) ([]byte, error) {
	if IsStorageRef(ref) {
		return o.readObject(ctx, ref)
	}
	return readFile(ref)
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", symbols.ErrInputNotFound, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", symbols.ErrInputNotFound, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", symbols.ErrInputNotFound, path)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

func (o *Opener) readObject(ctx context.Context, ref string) ([]byte, error) {
	if o.client == nil {
		return nil, fmt.Errorf("storage is not configured, cannot read %s", ref)
	}
	bucket, key, err := ParseStorageRef(ref, o.bucket)
	if err != nil {
		return nil, err
	}

	obj, err := o.client.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, classifyStorageError(ref, err)
	}
	defer obj.Close()

	// minio reports a missing object on the first Read
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, classifyStorageError(ref, err)
	}
	return data, nil
}

func classifyStorageError(ref string, err error) error {
	if storage.IsNotFound(err) {
		return fmt.Errorf("%w: %s: %v", symbols.ErrInputNotFound, ref, err)
	}
	return fmt.Errorf("failed to read %s: %w", ref, err)
}
