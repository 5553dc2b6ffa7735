package postgres

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// emailQueueRepository implements the repository.EmailQueueRepository interface.
type emailQueueRepository struct {
	db *gorm.DB
}

// NewEmailQueueRepository is the constructor for emailQueueRepository.
func NewEmailQueueRepository(db *gorm.DB) repository.EmailQueueRepository {
	return &emailQueueRepository{
		db: db,
	}
}

// Enqueue appends a pending email request to the queue.
func (repo *emailQueueRepository) Enqueue(ctx context.Context, request *entity.EmailRequest) error {
	requestM := &model.EmailQueueModel{
		ID:             request.ID,
		EmailType:      string(request.EmailType),
		RecipientEmail: request.RecipientEmail,
		RecipientName:  request.RecipientName,
		Subject:        request.Subject,
		TemplateData:   request.TemplateData,
		Status:         string(entity.EmailStatusPending),
	}
	if requestM.ID == uuid.Nil {
		requestM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to enqueue email")
	}

	request.ID = requestM.ID
	request.Status = entity.EmailStatusPending
	request.CreatedAt = requestM.CreatedAt

	return nil
}

// FindPending retrieves up to limit pending requests, oldest first.
func (repo *emailQueueRepository) FindPending(ctx context.Context, limit int) ([]*entity.EmailRequest, error) {
	var requestModels []*model.EmailQueueModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", string(entity.EmailStatusPending)).
		Order("created_at ASC").
		Limit(limit).
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pending emails")
	}

	requests := make([]*entity.EmailRequest, 0, len(requestModels))
	for _, requestM := range requestModels {
		requests = append(requests, toEmailRequestDomain(requestM))
	}

	return requests, nil
}

// MarkSent flips a request to sent and stamps the send time.
func (repo *emailQueueRepository) MarkSent(ctx context.Context, id uuid.UUID) error {
	now := time.Now()

	if err := repo.db.WithContext(ctx).
		Model(&model.EmailQueueModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":  string(entity.EmailStatusSent),
			"sent_at": &now,
		}).Error; err != nil {
		return errors.Wrap(err, "failed to mark email as sent")
	}

	return nil
}

// MarkFailed flips a request to failed and records the delivery error.
func (repo *emailQueueRepository) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.EmailQueueModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        string(entity.EmailStatusFailed),
			"error_message": reason,
		}).Error; err != nil {
		return errors.Wrap(err, "failed to mark email as failed")
	}

	return nil
}

// --- Mapper Functions ---

// toEmailRequestDomain converts a GORM EmailQueueModel to a domain entity.
func toEmailRequestDomain(data *model.EmailQueueModel) *entity.EmailRequest {
	if data == nil {
		return nil
	}

	return &entity.EmailRequest{
		ID:             data.ID,
		EmailType:      entity.EmailType(data.EmailType),
		RecipientEmail: data.RecipientEmail,
		RecipientName:  data.RecipientName,
		Subject:        data.Subject,
		TemplateData:   data.TemplateData,
		Status:         entity.EmailStatus(data.Status),
		ErrorMessage:   data.ErrorMessage,
		CreatedAt:      data.CreatedAt,
		SentAt:         data.SentAt,
	}
}
