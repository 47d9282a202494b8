package usecase

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"imagedrop/internal/domain/entity"
	"imagedrop/pkg/errors"
)

type fakeBlobStorage struct {
	uploads      []string
	lastContent  string
	lastMimeType string
	err          error
}

func (f *fakeBlobStorage) UploadFile(ctx context.Context, file io.Reader, contentType, filename string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	content, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	f.uploads = append(f.uploads, filename)
	f.lastContent = string(content)
	f.lastMimeType = contentType
	return "https://storage.googleapis.com/demo-bucket/20240102030405_" + filename, nil
}

func (f *fakeBlobStorage) Close() error { return nil }

type fakeRecordRepo struct {
	records   []*entity.UploadRecord
	gotLimit  int
	createErr error
	listErr   error
}

func (f *fakeRecordRepo) Create(ctx context.Context, record *entity.UploadRecord) error {
	if f.createErr != nil {
		return f.createErr
	}
	record.UploadedAt = time.Now()
	f.records = append([]*entity.UploadRecord{record}, f.records...)
	return nil
}

func (f *fakeRecordRepo) ListRecent(ctx context.Context, limit int) ([]*entity.UploadRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.gotLimit = limit
	if len(f.records) > limit {
		return f.records[:limit], nil
	}
	return f.records, nil
}

func TestUploadStoresBlobThenRecord(t *testing.T) {
	blob := &fakeBlobStorage{}
	repo := &fakeRecordRepo{}
	uc := NewUploadUseCase(blob, repo)

	url, err := uc.Upload(context.Background(), strings.NewReader("abc"), "image/jpeg", "photo.jpg")

	require.NoError(t, err)
	assert.Equal(t, "https://storage.googleapis.com/demo-bucket/20240102030405_photo.jpg", url)
	assert.Equal(t, "abc", blob.lastContent)
	assert.Equal(t, "image/jpeg", blob.lastMimeType)
	require.Len(t, repo.records, 1)
	assert.Equal(t, "photo.jpg", repo.records[0].Filename)
	assert.Equal(t, url, repo.records[0].GCSURL)
}

func TestUploadBlobFailureSkipsRecord(t *testing.T) {
	blob := &fakeBlobStorage{err: errors.BlobWrite("Failed to upload file to storage", nil)}
	repo := &fakeRecordRepo{}
	uc := NewUploadUseCase(blob, repo)

	_, err := uc.Upload(context.Background(), strings.NewReader("abc"), "image/jpeg", "photo.jpg")

	require.Error(t, err)
	assert.True(t, errors.Is(err, "BLOB_WRITE_FAILED"))
	assert.Empty(t, repo.records)
}

func TestUploadMetadataFailureKeepsBlob(t *testing.T) {
	blob := &fakeBlobStorage{}
	repo := &fakeRecordRepo{createErr: errors.MetadataWrite("Failed to save upload record", nil)}
	uc := NewUploadUseCase(blob, repo)

	_, err := uc.Upload(context.Background(), strings.NewReader("abc"), "image/jpeg", "photo.jpg")

	require.Error(t, err)
	assert.True(t, errors.Is(err, "METADATA_WRITE_FAILED"))
	// The orphaned blob stays in storage; there is no compensating delete.
	assert.Len(t, blob.uploads, 1)
	assert.Empty(t, repo.records)
}

func TestUploadDoesNotDeduplicate(t *testing.T) {
	blob := &fakeBlobStorage{}
	repo := &fakeRecordRepo{}
	uc := NewUploadUseCase(blob, repo)

	_, err := uc.Upload(context.Background(), strings.NewReader("abc"), "image/jpeg", "photo.jpg")
	require.NoError(t, err)
	_, err = uc.Upload(context.Background(), strings.NewReader("abc"), "image/jpeg", "photo.jpg")
	require.NoError(t, err)

	assert.Len(t, blob.uploads, 2)
	assert.Len(t, repo.records, 2)
}

func TestListRecentQueriesTopTen(t *testing.T) {
	repo := &fakeRecordRepo{}
	for i := 0; i < 12; i++ {
		repo.records = append(repo.records, &entity.UploadRecord{Filename: "photo.jpg"})
	}
	uc := NewUploadUseCase(&fakeBlobStorage{}, repo)

	records, err := uc.ListRecent(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 10, repo.gotLimit)
	assert.Len(t, records, 10)
}
