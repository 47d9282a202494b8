package repository

import (
	"context"

	"imagedrop/internal/domain/entity"
)

type UploadRecordRepository interface {
	Create(ctx context.Context, record *entity.UploadRecord) error
	ListRecent(ctx context.Context, limit int) ([]*entity.UploadRecord, error)
}
