package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentType string

const (
	DocumentTypeIDProof      DocumentType = "id_proof"
	DocumentTypeAddressProof DocumentType = "address_proof"
	DocumentTypeResume       DocumentType = "resume"
	DocumentTypeContract     DocumentType = "contract"
	DocumentTypeCertificate  DocumentType = "certificate"
	DocumentTypeOther        DocumentType = "other"
)

// ParseDocumentType matches an input string case-insensitively against the
// closed document-type set. Unknown values are rejected, not coerced.
func ParseDocumentType(s string) (DocumentType, bool) {
	switch DocumentType(strings.ToLower(s)) {
	case DocumentTypeIDProof:
		return DocumentTypeIDProof, true
	case DocumentTypeAddressProof:
		return DocumentTypeAddressProof, true
	case DocumentTypeResume:
		return DocumentTypeResume, true
	case DocumentTypeContract:
		return DocumentTypeContract, true
	case DocumentTypeCertificate:
		return DocumentTypeCertificate, true
	case DocumentTypeOther:
		return DocumentTypeOther, true
	default:
		return "", false
	}
}

type VerificationStatus string

const (
	VerificationStatusPending  VerificationStatus = "pending"
	VerificationStatusApproved VerificationStatus = "approved"
	VerificationStatusRejected VerificationStatus = "rejected"
)

type Document struct {
	ID                 string             `gorm:"type:varchar(36);primarykey" json:"id"`
	EmployeeID         string             `gorm:"type:varchar(36);not null;index" json:"employee_id"`
	DocumentType       DocumentType       `gorm:"type:varchar(50);not null" json:"document_type"`
	OriginalFilename   string             `gorm:"type:varchar(255);not null" json:"original_filename"`
	StorageRef         string             `gorm:"type:varchar(512);not null" json:"-"`
	FileSize           int64              `json:"file_size"`
	MimeType           string             `gorm:"type:varchar(100)" json:"mime_type"`
	TaskID             *string            `gorm:"type:varchar(36)" json:"task_id,omitempty"`
	VerificationStatus VerificationStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"verification_status"`
	UploadedAt         time.Time          `json:"uploaded_at"`
	VerifiedAt         *time.Time         `json:"verified_at"`

	// Relations
	Employee User `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
