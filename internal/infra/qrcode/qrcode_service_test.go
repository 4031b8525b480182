package qrcode

import (
	"encoding/json"
	"testing"

	"plaza/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQRConfig(size int, level string) *config.Config {
	return &config.Config{
		QRCode: &config.QRCodeConfig{
			Size:                 size,
			ErrorCorrectionLevel: level,
			BaseURL:              "https://plaza.example.com",
		},
	}
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "Q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(testQRConfig(256, tt.errorCorrectionLevel))
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateRosterInviteQR(t *testing.T) {
	service := NewQRCodeService(testQRConfig(256, "M"))
	businessID := uuid.New()

	qrBytes, err := service.GenerateRosterInviteQR(businessID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateRosterInviteQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(testQRConfig(tt.size, "M"))

			qrBytes, err := service.GenerateRosterInviteQR(uuid.New())
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_GenerateWithoutConfigUsesDefaults(t *testing.T) {
	service := NewQRCodeService(&config.Config{})

	qrBytes, err := service.GenerateRosterInviteQR(uuid.New())
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)
}

func TestQRCodeService_ParseRosterInviteQR(t *testing.T) {
	service := NewQRCodeService(testQRConfig(256, "M"))
	businessID := uuid.New()

	payload := rosterInvitePayload{
		BusinessID: businessID.String(),
		Type:       rosterInviteType,
	}
	jsonData, err := json.Marshal(payload)
	require.NoError(t, err)

	parsedID, err := service.ParseRosterInviteQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, businessID, parsedID)
}

func TestQRCodeService_ParseRosterInviteQR_InvalidJSON(t *testing.T) {
	service := NewQRCodeService(testQRConfig(256, "M"))

	_, err := service.ParseRosterInviteQR("invalid json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal QR code data")
}

func TestQRCodeService_ParseRosterInviteQR_InvalidType(t *testing.T) {
	service := NewQRCodeService(testQRConfig(256, "M"))

	payload := rosterInvitePayload{
		BusinessID: uuid.New().String(),
		Type:       "invalid_type",
	}
	jsonData, err := json.Marshal(payload)
	require.NoError(t, err)

	_, err = service.ParseRosterInviteQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid QR code type")
}

func TestQRCodeService_ParseRosterInviteQR_InvalidUUID(t *testing.T) {
	service := NewQRCodeService(testQRConfig(256, "M"))

	payload := rosterInvitePayload{
		BusinessID: "not-a-valid-uuid",
		Type:       rosterInviteType,
	}
	jsonData, err := json.Marshal(payload)
	require.NoError(t, err)

	_, err = service.ParseRosterInviteQR(string(jsonData))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse business ID")
}

func TestQRCodeService_PayloadRoundTrip(t *testing.T) {
	service := NewQRCodeService(testQRConfig(256, "M"))
	businessID := uuid.New()

	qrBytes, err := service.GenerateRosterInviteQR(businessID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// The PNG cannot be decoded back here; a scanner app extracts the JSON.
	// Build the same payload a scanner would hand us and parse it.
	payload := rosterInvitePayload{
		BusinessID: businessID.String(),
		Type:       rosterInviteType,
		URL:        "https://plaza.example.com/businesses/" + businessID.String() + "/roster/join",
	}
	jsonData, err := json.Marshal(payload)
	require.NoError(t, err)

	parsedID, err := service.ParseRosterInviteQR(string(jsonData))
	require.NoError(t, err)
	assert.Equal(t, businessID, parsedID)
}
