// Package entity contains the core business objects of the project.
package entity

// BusinessStatus represents the lifecycle state of a business.
type BusinessStatus string

const (
	// BusinessStatusPending indicates the business is awaiting platform approval.
	BusinessStatusPending BusinessStatus = "pending"
	// BusinessStatusActive indicates the business is operating normally.
	BusinessStatusActive BusinessStatus = "active"
	// BusinessStatusSuspended indicates the business has been suspended by the platform.
	BusinessStatusSuspended BusinessStatus = "suspended"
	// BusinessStatusInactive indicates the business has been deactivated.
	BusinessStatusInactive BusinessStatus = "inactive"
)

// String returns the string representation of the BusinessStatus.
func (s BusinessStatus) String() string {
	return string(s)
}

// IsValid checks if the BusinessStatus is a valid value.
func (s BusinessStatus) IsValid() bool {
	switch s {
	case BusinessStatusPending, BusinessStatusActive, BusinessStatusSuspended, BusinessStatusInactive:
		return true
	default:
		return false
	}
}
