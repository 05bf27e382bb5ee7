package storage

import "context"

// StorageService defines the interface for image storage operations.
type StorageService interface {
	// UploadImage stores a local file under the given folder and returns the
	// delivery URL plus the permanent identifier used for deletion.
	UploadImage(ctx context.Context, localFilePath, destFolder string) (url string, publicID string, err error)
	// DeleteImage removes a stored image by its public ID.
	DeleteImage(ctx context.Context, publicID string) error
}
