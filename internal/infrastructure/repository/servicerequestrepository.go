package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"servicedesk/internal/domain/servicerequest"
	"servicedesk/internal/infrastructure/persistence/mappers"
	"servicedesk/internal/infrastructure/persistence/models"
	db "servicedesk/internal/shared/db"
	apperrors "servicedesk/internal/shared/errors"
)

// ServiceRequestRepository is the gorm-backed implementation of
// servicerequest.Repository.
type ServiceRequestRepository struct {
	db     *gorm.DB
	mapper mappers.ServiceRequestMapper
}

func NewServiceRequestRepository(gdb *gorm.DB) *ServiceRequestRepository {
	return &ServiceRequestRepository{
		db:     gdb,
		mapper: mappers.NewServiceRequestMapper(),
	}
}

func (r *ServiceRequestRepository) Save(ctx context.Context, req *servicerequest.ServiceRequest) error {
	model := r.mapper.ToModel(req)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save service request: %w", err)
	}

	if err := req.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *ServiceRequestRepository) Update(ctx context.Context, req *servicerequest.ServiceRequest) error {
	model := r.mapper.ToModel(req)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.ServiceRequestModel{}).
		Where("sid = ?", model.SID).
		Updates(map[string]interface{}{
			"product_name":      model.ProductName,
			"serial_number":     model.SerialNumber,
			"customer_name":     model.CustomerName,
			"customer_contact":  model.CustomerContact,
			"issue_description": model.IssueDescription,
			"status":            model.Status,
			"attachments":       model.Attachments,
			"updated_at":        model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update service request: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing values.

	return nil
}

// Delete removes a service request and its comments in a single transaction.
func (r *ServiceRequestRepository) Delete(ctx context.Context, sid string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	return tx.Transaction(func(txn *gorm.DB) error {
		result := txn.Where("sid = ?", sid).Delete(&models.ServiceRequestModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete service request: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.NewNotFoundError("service request not found")
		}

		if err := txn.Where("request_sid = ?", sid).Delete(&models.CommentModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete comments: %w", err)
		}

		return nil
	})
}

func (r *ServiceRequestRepository) GetBySID(ctx context.Context, sid string) (*servicerequest.ServiceRequest, error) {
	var model models.ServiceRequestModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("sid = ?", sid).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("service request not found")
		}
		return nil, fmt.Errorf("failed to find service request: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *ServiceRequestRepository) ListAll(ctx context.Context) ([]*servicerequest.ServiceRequest, error) {
	return r.list(ctx, nil)
}

func (r *ServiceRequestRepository) ListActive(ctx context.Context) ([]*servicerequest.ServiceRequest, error) {
	return r.list(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("status <> ?", "completed")
	})
}

func (r *ServiceRequestRepository) ListCompleted(ctx context.Context) ([]*servicerequest.ServiceRequest, error) {
	return r.list(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where("status = ?", "completed")
	})
}

// Search matches the query case-insensitively against product name, serial
// number, customer name and customer contact.
func (r *ServiceRequestRepository) Search(ctx context.Context, query string) ([]*servicerequest.ServiceRequest, error) {
	pattern := "%" + query + "%"
	return r.list(ctx, func(q *gorm.DB) *gorm.DB {
		return q.Where(
			"LOWER(product_name) LIKE LOWER(?) OR LOWER(serial_number) LIKE LOWER(?) OR LOWER(customer_name) LIKE LOWER(?) OR LOWER(customer_contact) LIKE LOWER(?)",
			pattern, pattern, pattern, pattern,
		)
	})
}

func (r *ServiceRequestRepository) list(
	ctx context.Context,
	scope func(*gorm.DB) *gorm.DB,
) ([]*servicerequest.ServiceRequest, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ServiceRequestModel{})
	if scope != nil {
		query = scope(query)
	}

	var requestModels []models.ServiceRequestModel
	if err := query.
		Order("created_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list service requests: %w", err)
	}

	requests := make([]*servicerequest.ServiceRequest, len(requestModels))
	for i, model := range requestModels {
		req, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, err
		}
		requests[i] = req
	}

	return requests, nil
}

func (r *ServiceRequestRepository) SaveComment(ctx context.Context, c *servicerequest.Comment) error {
	model := r.mapper.CommentToModel(c)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	if err := c.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *ServiceRequestRepository) FindCommentsByRequestSID(
	ctx context.Context,
	requestSID string,
) ([]*servicerequest.Comment, error) {
	var commentModels []models.CommentModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("request_sid = ?", requestSID).
		Order("created_at ASC").
		Find(&commentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find comments: %w", err)
	}

	comments := make([]*servicerequest.Comment, len(commentModels))
	for i, model := range commentModels {
		c, err := r.mapper.CommentToDomain(&model)
		if err != nil {
			return nil, err
		}
		comments[i] = c
	}

	return comments, nil
}
