package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/storage"
)

const archiveTimeout = 2 * time.Minute

var ErrArchiveBucketMissing = errors.New("receipt bucket is not configured")

type objectWriterFunc func(ctx context.Context, bucket, object, contentType string) io.WriteCloser

// GCSReceiptArchiver uploads receipt images to a Cloud Storage bucket using
// Application Default Credentials
type GCSReceiptArchiver struct {
	client    *storage.Client
	bucket    string
	newWriter objectWriterFunc
}

func NewGCSReceiptArchiver(client *storage.Client, bucket string) *GCSReceiptArchiver {
	a := &GCSReceiptArchiver{
		client: client,
		bucket: bucket,
	}
	a.newWriter = a.objectWriter
	return a
}

// Archive writes data to objectName and returns its public URL. The upload
// is only committed when the writer closes cleanly.
func (a *GCSReceiptArchiver) Archive(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	if a.bucket == "" {
		return "", ErrArchiveBucketMissing
	}

	ctx, cancel := context.WithTimeout(ctx, archiveTimeout)
	defer cancel()

	w := a.newWriter(ctx, a.bucket, objectName, contentType)

	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("copy receipt to GCS writer: %w", err)
	}

	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize receipt upload: %w", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", a.bucket, objectName), nil
}

func (a *GCSReceiptArchiver) objectWriter(ctx context.Context, bucket, object, contentType string) io.WriteCloser {
	w := a.client.Bucket(bucket).Object(object).NewWriter(ctx)
	w.ContentType = contentType
	return w
}
