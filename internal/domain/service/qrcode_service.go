package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateRosterInviteQR generates a QR code a customer scans to join a business roster
	GenerateRosterInviteQR(businessID uuid.UUID) ([]byte, error)

	// ParseRosterInviteQR parses QR code data and returns the business ID
	ParseRosterInviteQR(qrData string) (uuid.UUID, error)
}
