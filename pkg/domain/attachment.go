package domain

import (
	"time"

	"github.com/google/uuid"
)

// AttachmentID identifies an attachment. It is the same value as the ID of the
// blob holding the attachment payload.
type AttachmentID uuid.UUID

// String returns the canonical textual form of the ID.
func (id AttachmentID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the ID in its canonical textual form.
func (id AttachmentID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText parses an ID from its textual form.
func (id *AttachmentID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

// AttachmentType is the category of an uploaded artifact.
type AttachmentType string

const (
	AttachmentStudentProof AttachmentType = "studentProof"
	AttachmentBankReceipt  AttachmentType = "bankReceipt"
	AttachmentAbstract     AttachmentType = "abstract"
	AttachmentSlides       AttachmentType = "slides"
)

// Valid reports whether t is one of the recognized attachment types.
func (t AttachmentType) Valid() bool {
	switch t {
	case AttachmentStudentProof, AttachmentBankReceipt, AttachmentAbstract, AttachmentSlides:
		return true
	default:
		return false
	}
}

// Attachment is an immutable, versioned artifact owned by exactly one
// registration.
type Attachment struct {
	ID             AttachmentID   `json:"id"`
	RegistrationID RegistrationID `json:"-"`
	Type           AttachmentType `json:"type"`
	// Version starts at 1 and increases by one per (registration, type).
	Version     int       `json:"version"`
	Filename    string    `json:"filename"`
	Size        int64     `json:"size"`
	ContentType string    `json:"contentType"`
	Checksum    string    `json:"checksum"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// Blob is the stored payload of an attachment.
type Blob struct {
	ID          AttachmentID
	Name        string
	ContentType string
	Size        int64
	// Checksum is the hex-encoded SHA-256 of Data.
	Checksum  string
	Data      []byte
	CreatedAt time.Time
}

// ParseAttachmentID parses the textual form of an AttachmentID.
func ParseAttachmentID(s string) (AttachmentID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return AttachmentID{}, err //nolint: wrapcheck
	}

	return AttachmentID(id), nil
}
