package model

import (
	"time"

	"github.com/google/uuid"
)

// BusinessModel mirrors the 'businesses' table. UUIDs are generated by
// PostgreSQL via uuid_generate_v7().
type BusinessModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name           string     `gorm:"type:varchar(255);not null"`
	Slug           string     `gorm:"type:varchar(255);unique;not null"`
	CNPJ           string     `gorm:"column:cnpj;type:varchar(14);unique;not null"`
	Email          string     `gorm:"type:varchar(255)"`
	Phone          string     `gorm:"type:varchar(20)"`
	Description    string     `gorm:"type:text"`
	Status         string     `gorm:"type:varchar(20);not null;default:'pending'"`
	ApprovedAt     *time.Time
	ApprovedBy     *uuid.UUID `gorm:"type:uuid"`
	PlatformPlanID *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time `gorm:"index"`

	PlatformPlan *PlatformPlanModel      `gorm:"foreignKey:PlatformPlanID"`
	Customers    []*CustomerProfileModel `gorm:"many2many:business_customers;joinForeignKey:BusinessID;joinReferences:CustomerProfileID"`
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}

// PlatformPlanModel mirrors the 'platform_plans' table. A NULL limit column
// means that dimension is unlimited.
type PlatformPlanModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Slug         string    `gorm:"type:varchar(100);unique;not null"`
	Description  string    `gorm:"type:text"`
	Price        float64   `gorm:"type:decimal(10,2);not null;default:0"`
	BillingCycle string    `gorm:"type:varchar(20);not null;default:'monthly'"`
	Features     []string  `gorm:"type:jsonb;serializer:json"`
	MaxUsers     *int
	MaxCustomers *int
	IsActive     bool `gorm:"not null;default:true"`
	IsFeatured   bool `gorm:"not null;default:false"`
	SortOrder    int  `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlatformPlanModel) TableName() string {
	return "platform_plans"
}

// BusinessCustomerModel mirrors the 'business_customers' roster join table.
// It is declared so the GORM Gen tool and migrations see the composite key.
type BusinessCustomerModel struct {
	BusinessID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerProfileID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessCustomerModel) TableName() string {
	return "business_customers"
}
