package usecase

import (
	"context"
	"io"

	"imagedrop/internal/domain/entity"
	"imagedrop/internal/domain/repository"
	"imagedrop/internal/domain/service"
	"imagedrop/pkg/logger"
)

// recentLimit caps the gallery query.
const recentLimit = 10

type UploadUseCase struct {
	blobStorage service.BlobStorage
	recordRepo  repository.UploadRecordRepository
}

func NewUploadUseCase(blobStorage service.BlobStorage, recordRepo repository.UploadRecordRepository) *UploadUseCase {
	return &UploadUseCase{
		blobStorage: blobStorage,
		recordRepo:  recordRepo,
	}
}

// Upload stores the blob first and writes the metadata record only after the
// blob write succeeded. A metadata failure leaves the blob in place; there is
// no compensating delete.
func (u *UploadUseCase) Upload(ctx context.Context, file io.Reader, contentType, filename string) (string, error) {
	gcsURL, err := u.blobStorage.UploadFile(ctx, file, contentType, filename)
	if err != nil {
		return "", err
	}

	record := &entity.UploadRecord{
		Filename: filename,
		GCSURL:   gcsURL,
	}
	if err := u.recordRepo.Create(ctx, record); err != nil {
		return "", err
	}

	logger.Info("Recorded upload %s -> %s", filename, gcsURL)
	return gcsURL, nil
}

// ListRecent returns up to the ten most recent uploads, newest first.
func (u *UploadUseCase) ListRecent(ctx context.Context) ([]*entity.UploadRecord, error) {
	return u.recordRepo.ListRecent(ctx, recentLimit)
}
