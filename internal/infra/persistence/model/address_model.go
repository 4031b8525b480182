package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
// Addresses attach to exactly one polymorphic owner, a business or a
// customer profile, discriminated by OwnerKind.
type AddressModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;index:idx_addresses_on_owner"`
	OwnerKind    string    `gorm:"type:varchar(20);not null;index:idx_addresses_on_owner"`
	Type         string    `gorm:"type:varchar(20);not null"`
	Street       string    `gorm:"type:varchar(255);not null"`
	Number       string    `gorm:"type:varchar(20);not null"`
	Complement   string    `gorm:"type:varchar(100)"`
	Neighborhood string    `gorm:"type:varchar(100);not null"`
	City         string    `gorm:"type:varchar(100);not null"`
	State        string    `gorm:"type:varchar(2);not null"`
	ZipCode      string    `gorm:"type:varchar(8);not null"`
	Country      string    `gorm:"type:varchar(2);not null;default:'BR'"`
	Latitude     *float64  `gorm:"type:decimal(10,8)"`
	Longitude    *float64  `gorm:"type:decimal(11,8)"`
	IsPrimary    bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
