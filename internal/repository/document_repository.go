package repository

import (
	"context"

	"github.com/yukikurage/hr-onboarding-api/internal/models"
	"gorm.io/gorm"
)

// GormDocumentRepository is a GORM implementation of DocumentRepository
type GormDocumentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new DocumentRepository
func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &GormDocumentRepository{db: db}
}

// Create creates a new document record
func (r *GormDocumentRepository) Create(ctx context.Context, doc *models.Document) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

// FindByID finds a document by ID
func (r *GormDocumentRepository) FindByID(ctx context.Context, id string) (*models.Document, error) {
	var doc models.Document
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&doc).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

// Update updates a document
func (r *GormDocumentRepository) Update(ctx context.Context, doc *models.Document) error {
	return r.db.WithContext(ctx).Save(doc).Error
}

// List retrieves documents matching the filter. The total is counted
// before the pagination window is applied.
func (r *GormDocumentRepository) List(ctx context.Context, filter DocumentFilter) ([]models.Document, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Document{})
	if filter.EmployeeID != nil {
		query = query.Where("employee_id = ?", *filter.EmployeeID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var docs []models.Document
	listQuery := query.Order("uploaded_at DESC")
	if filter.Limit > 0 {
		listQuery = listQuery.Offset(filter.Offset).Limit(filter.Limit)
	}
	if err := listQuery.Find(&docs).Error; err != nil {
		return nil, 0, err
	}

	return docs, total, nil
}

// ListByEmployee lists all documents owned by one employee
func (r *GormDocumentRepository) ListByEmployee(ctx context.Context, employeeID string) ([]models.Document, error) {
	var docs []models.Document
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("uploaded_at DESC").
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// CountPending counts documents awaiting verification
func (r *GormDocumentRepository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Document{}).
		Where("verification_status = ?", models.VerificationStatusPending).
		Count(&count).Error
	return count, err
}
