package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email       string    `gorm:"type:varchar(255);unique;not null"`
	Name        string    `gorm:"type:varchar(100)"`
	Password    string    `gorm:"type:varchar(255);not null"`
	IsActive    bool      `gorm:"not null;default:true"`
	ProfileKind string    `gorm:"type:varchar(20);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time `gorm:"index"`

	CustomerProfile     *CustomerProfileModel      `gorm:"foreignKey:UserID"`
	StaffProfile        *StaffUserProfileModel     `gorm:"foreignKey:UserID"`
	BusinessMemberships []*BusinessUserProfileModel `gorm:"foreignKey:UserID"`
	RefreshTokens       []RefreshTokenModel        `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// CustomerProfileModel mirrors the 'customer_profiles' table.
type CustomerProfileModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	CPF         *string    `gorm:"type:varchar(11);uniqueIndex"`
	BirthDate   *time.Time `gorm:"type:date"`
	Status      string     `gorm:"type:varchar(20);not null;default:'active'"`
	AccessLevel string     `gorm:"type:varchar(20);not null;default:'basic'"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Businesses []*BusinessModel `gorm:"many2many:business_customers;joinForeignKey:CustomerProfileID;joinReferences:BusinessID"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerProfileModel) TableName() string {
	return "customer_profiles"
}

// BusinessUserProfileModel mirrors the 'business_user_profiles' table.
// Each row is one membership of a user in a business; a user may hold
// several across different businesses.
type BusinessUserProfileModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_business_user_profiles_user_business"`
	BusinessID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_business_user_profiles_user_business;index"`
	Status      string    `gorm:"type:varchar(20);not null;default:'active'"`
	AccessLevel string    `gorm:"type:varchar(20);not null;default:'user'"`
	Permissions []string  `gorm:"type:jsonb;serializer:json"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Business *BusinessModel `gorm:"foreignKey:BusinessID"`
}

// TableName explicitly sets the table name for GORM.
func (BusinessUserProfileModel) TableName() string {
	return "business_user_profiles"
}

// StaffUserProfileModel mirrors the 'staff_user_profiles' table.
type StaffUserProfileModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Status            string    `gorm:"type:varchar(20);not null;default:'active'"`
	AccessLevel       string    `gorm:"type:varchar(20);not null;default:'basic'"`
	SystemPermissions []string  `gorm:"type:jsonb;serializer:json"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (StaffUserProfileModel) TableName() string {
	return "staff_user_profiles"
}
