package dto

import (
	"time"

	"github.com/yukikurage/hr-onboarding-api/internal/models"
)

// DocumentDTO represents a document in API responses
type DocumentDTO struct {
	ID                 string                    `json:"id"`
	EmployeeID         string                    `json:"employee_id"`
	DocumentType       models.DocumentType       `json:"document_type"`
	OriginalFilename   string                    `json:"original_filename"`
	FileSize           int64                     `json:"file_size"`
	MimeType           string                    `json:"mime_type"`
	TaskID             *string                   `json:"task_id,omitempty"`
	VerificationStatus models.VerificationStatus `json:"verification_status"`
	UploadedAt         time.Time                 `json:"uploaded_at"`
	VerifiedAt         *time.Time                `json:"verified_at"`
}

// DocumentListResponse is a paginated document list
type DocumentListResponse struct {
	Documents []DocumentDTO `json:"documents"`
	Total     int64         `json:"total"`
	Page      int           `json:"page"`
	PageSize  int           `json:"page_size"`
}

// DocumentUploadResponse acknowledges a successful upload
type DocumentUploadResponse struct {
	Message    string `json:"message"`
	DocumentID string `json:"document_id"`
}

// ToDocumentDTO converts a Document model to DocumentDTO
func ToDocumentDTO(doc models.Document) DocumentDTO {
	return DocumentDTO{
		ID:                 doc.ID,
		EmployeeID:         doc.EmployeeID,
		DocumentType:       doc.DocumentType,
		OriginalFilename:   doc.OriginalFilename,
		FileSize:           doc.FileSize,
		MimeType:           doc.MimeType,
		TaskID:             doc.TaskID,
		VerificationStatus: doc.VerificationStatus,
		UploadedAt:         doc.UploadedAt,
		VerifiedAt:         doc.VerifiedAt,
	}
}

// ToDocumentListResponse converts a page of documents
func ToDocumentListResponse(docs []models.Document, page, pageSize int, total int64) DocumentListResponse {
	items := make([]DocumentDTO, len(docs))
	for i, doc := range docs {
		items[i] = ToDocumentDTO(doc)
	}

	return DocumentListResponse{
		Documents: items,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}
}
