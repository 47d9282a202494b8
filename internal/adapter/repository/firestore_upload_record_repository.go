package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"imagedrop/internal/domain/entity"
	"imagedrop/internal/domain/repository"
	"imagedrop/pkg/errors"
	"imagedrop/pkg/logger"
)

type firestoreUploadRecordRepository struct {
	client     *firestore.Client
	collection string
}

func NewFirestoreUploadRecordRepository(client *firestore.Client, collection string) repository.UploadRecordRepository {
	return &firestoreUploadRecordRepository{
		client:     client,
		collection: collection,
	}
}

func (r *firestoreUploadRecordRepository) Create(ctx context.Context, record *entity.UploadRecord) error {
	// The document ID is generated and otherwise unused; uploaded_at is
	// filled server-side via the serverTimestamp tag on the entity.
	_, err := r.client.Collection(r.collection).Doc(uuid.New().String()).Set(ctx, record)
	if err != nil {
		logger.Error("Failed to save upload record: %v", err)
		return errors.MetadataWrite("Failed to save upload record", err)
	}
	return nil
}

func (r *firestoreUploadRecordRepository) ListRecent(ctx context.Context, limit int) ([]*entity.UploadRecord, error) {
	query := r.client.Collection(r.collection).
		OrderBy("uploaded_at", firestore.Desc).
		Limit(limit)

	iter := query.Documents(ctx)
	defer iter.Stop()

	var records []*entity.UploadRecord
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			// A missing collection is an empty gallery, not a failure.
			if status.Code(err) == codes.NotFound {
				return records, nil
			}
			return nil, errors.Internal("Failed to query upload records", err)
		}

		var record entity.UploadRecord
		if err := doc.DataTo(&record); err != nil {
			logger.Error("Failed to parse upload record: %v", err)
			continue
		}
		records = append(records, &record)
	}

	return records, nil
}
