package qrcode

import (
	"encoding/json"
	"fmt"
	"strings"

	"plaza/config"
	"plaza/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const rosterInviteType = "roster_invite"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// rosterInvitePayload is the JSON structure encoded into the QR image.
// The URL lets generic scanner apps land somewhere useful, while the
// application only trusts the business ID and type fields.
type rosterInvitePayload struct {
	BusinessID string `json:"business_id"`
	Type       string `json:"type"`
	URL        string `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size := 256
	levelName := "M"
	baseURL := ""
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		if cfg.QRCode.ErrorCorrectionLevel != "" {
			levelName = cfg.QRCode.ErrorCorrectionLevel
		}
		baseURL = strings.TrimSuffix(cfg.QRCode.BaseURL, "/")
	}

	var level qrcode.RecoveryLevel
	switch levelName {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// GenerateRosterInviteQR generates the QR code a customer scans to join a business roster.
func (s *qrcodeService) GenerateRosterInviteQR(businessID uuid.UUID) ([]byte, error) {
	payload := rosterInvitePayload{
		BusinessID: businessID.String(),
		Type:       rosterInviteType,
	}
	if s.baseURL != "" {
		payload.URL = fmt.Sprintf("%s/businesses/%s/roster/join", s.baseURL, businessID)
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseRosterInviteQR parses QR code data and returns the business ID.
func (s *qrcodeService) ParseRosterInviteQR(qrData string) (uuid.UUID, error) {
	var payload rosterInvitePayload
	if err := json.Unmarshal([]byte(qrData), &payload); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if payload.Type != rosterInviteType {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", payload.Type)
	}

	businessID, err := uuid.Parse(payload.BusinessID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse business ID: %w", err)
	}

	return businessID, nil
}
