package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"imagedrop/pkg/errors"
	"imagedrop/pkg/logger"
)

type GCSClient struct {
	client     *storage.Client
	bucketName string
}

func NewGCSClient(ctx context.Context, bucketName, credentialsFile string) (*GCSClient, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	return &GCSClient{
		client:     client,
		bucketName: bucketName,
	}, nil
}

// ObjectName builds the bucket key for an upload: a whole-second UTC
// timestamp prefix keeps colliding filenames apart. Two uploads of the same
// filename within the same second share a key and the later write wins.
func ObjectName(filename string, now time.Time) string {
	return fmt.Sprintf("%s_%s", now.UTC().Format("20060102150405"), filename)
}

func (c *GCSClient) UploadFile(ctx context.Context, file io.Reader, contentType, filename string) (string, error) {
	objectName := ObjectName(filename, time.Now())

	// Callers may have partially consumed the stream; rewind when possible.
	if seeker, ok := file.(io.Seeker); ok {
		if _, err := seeker.Seek(0, io.SeekStart); err != nil {
			logger.Error("Failed to rewind upload stream: %v", err)
			return "", errors.BlobWrite("Failed to read upload stream", err)
		}
	}

	obj := c.client.Bucket(c.bucketName).Object(objectName)
	wc := obj.NewWriter(ctx)
	wc.ContentType = contentType

	if _, err := io.Copy(wc, file); err != nil {
		wc.Close()
		logger.Error("Failed to copy upload to GCS: %v", err)
		return "", errors.BlobWrite("Failed to upload file to storage", err)
	}

	if err := wc.Close(); err != nil {
		logger.Error("Failed to finalize GCS object %s: %v", objectName, err)
		return "", errors.BlobWrite("Failed to upload file to storage", err)
	}

	logger.Info("File %s uploaded to gs://%s/%s", filename, c.bucketName, objectName)
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, objectName), nil
}

func (c *GCSClient) Close() error {
	return c.client.Close()
}
