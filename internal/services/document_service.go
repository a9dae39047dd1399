package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yukikurage/hr-onboarding-api/internal/models"
	"github.com/yukikurage/hr-onboarding-api/internal/policy"
	"github.com/yukikurage/hr-onboarding-api/internal/repository"
	"github.com/yukikurage/hr-onboarding-api/internal/storage"
	"gorm.io/gorm"
)

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrInvalidVerdict   = errors.New("verification status must be approved or rejected")
	ErrAlreadyVerified  = errors.New("document already verified")
	ErrStorageFailure   = errors.New("file upload failed")
	ErrFilenameRequired = errors.New("filename is required")
)

// DocumentService handles document upload and verification logic.
type DocumentService struct {
	docRepo repository.DocumentRepository
	store   storage.Storage
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(docRepo repository.DocumentRepository, store storage.Storage) *DocumentService {
	return &DocumentService{
		docRepo: docRepo,
		store:   store,
	}
}

// UploadInput represents an employee's document upload.
type UploadInput struct {
	EmployeeID   string
	DocumentType string
	Filename     string
	Content      []byte
	MimeType     string
	TaskID       *string
}

// Upload validates the document type, persists the blob, and records the
// metadata in pending verification status.
func (s *DocumentService) Upload(ctx context.Context, input UploadInput) (*models.Document, error) {
	docType, ok := models.ParseDocumentType(input.DocumentType)
	if !ok {
		return nil, ErrInvalidDocumentType
	}
	if input.Filename == "" {
		return nil, ErrFilenameRequired
	}

	ref := storage.MakeRef(input.EmployeeID, string(docType), input.Filename)
	if err := s.store.Save(ref, input.Content); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageFailure, err)
	}

	doc := &models.Document{
		EmployeeID:         input.EmployeeID,
		DocumentType:       docType,
		OriginalFilename:   input.Filename,
		StorageRef:         ref,
		FileSize:           int64(len(input.Content)),
		MimeType:           input.MimeType,
		TaskID:             input.TaskID,
		VerificationStatus: models.VerificationStatusPending,
		UploadedAt:         time.Now().UTC(),
	}

	if err := s.docRepo.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to save document: %w", err)
	}

	return doc, nil
}

// Verify transitions a pending document to approved or rejected and stamps
// verified_at. Once verified, the verdict is immutable.
func (s *DocumentService) Verify(ctx context.Context, documentID, verdict string) (*models.Document, error) {
	var target models.VerificationStatus
	switch models.VerificationStatus(verdict) {
	case models.VerificationStatusApproved:
		target = models.VerificationStatusApproved
	case models.VerificationStatusRejected:
		target = models.VerificationStatusRejected
	default:
		return nil, ErrInvalidVerdict
	}

	doc, err := s.docRepo.FindByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to find document: %w", err)
	}

	if doc.VerificationStatus != models.VerificationStatusPending {
		return nil, ErrAlreadyVerified
	}

	now := time.Now().UTC()
	doc.VerificationStatus = target
	doc.VerifiedAt = &now

	if err := s.docRepo.Update(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to update document: %w", err)
	}

	return doc, nil
}

// List returns documents visible to the principal: HR sees everything,
// employees see only their own.
func (s *DocumentService) List(ctx context.Context, principal policy.Principal, offset, limit int) ([]models.Document, int64, error) {
	filter := repository.DocumentFilter{Offset: offset, Limit: limit}
	if !policy.IsHR(principal) {
		id := principal.ID
		filter.EmployeeID = &id
	}

	docs, total, err := s.docRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list documents: %w", err)
	}

	return docs, total, nil
}
