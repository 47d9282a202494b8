package service

import (
	"context"
	"io"
)

// BlobStorage writes an upload stream to the bucket and returns the public
// retrieval URL for the stored object.
type BlobStorage interface {
	UploadFile(ctx context.Context, file io.Reader, contentType, filename string) (string, error)
	Close() error
}
