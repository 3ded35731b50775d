package gcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"
)

// GetEnv is a helper to read an environment variable or return a default value.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// ErrObjectNotFound reports that a gs:// URI pointed at nothing. Callers
// treat it as a caller mistake rather than an internal failure.
var ErrObjectNotFound = errors.New("gcs object not found")

// ParseGCSUri splits a "gs://bucket/object" URI into its parts.
func ParseGCSUri(uri string) (bucket, object string, err error) {
	rest, ok := strings.CutPrefix(uri, "gs://")
	if !ok {
		return "", "", fmt.Errorf("not a gs:// URI: %q", uri)
	}
	bucket, object, ok = strings.Cut(rest, "/")
	if !ok || bucket == "" || object == "" {
		return "", "", fmt.Errorf("malformed gs:// URI: %q", uri)
	}
	return bucket, object, nil
}

// ReadGCSObject reads the full content of a GCS object addressed by a
// gs:// URI. A missing object is reported as ErrObjectNotFound.
func ReadGCSObject(ctx context.Context, client *storage.Client, uri string) (string, error) {
	bucket, object, err := ParseGCSUri(uri)
	if err != nil {
		return "", err
	}

	reader, err := client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		var gerr *googleapi.Error
		if errors.Is(err, storage.ErrObjectNotExist) || (errors.As(err, &gerr) && gerr.Code == 404) {
			return "", fmt.Errorf("%w: %s", ErrObjectNotFound, uri)
		}
		return "", fmt.Errorf("failed to open GCS object %s: %w", uri, err)
	}
	defer reader.Close()

	content, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read GCS object %s: %w", uri, err)
	}
	return string(content), nil
}
