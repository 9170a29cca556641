package storage

import "context"

// Service fetches remote objects into the local filesystem. Used at startup
// to pull the classifier artifact when it is not already present locally.
type Service interface {
	DownloadObject(ctx context.Context, bucket, key, destPath string) error
}
