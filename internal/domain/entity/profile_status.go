// Package entity contains the core business objects of the project.
package entity

// ProfileStatus represents the lifecycle state of a profile.
type ProfileStatus string

const (
	// ProfileStatusActive indicates the profile is in good standing.
	ProfileStatusActive ProfileStatus = "active"
	// ProfileStatusInactive indicates the profile has been deactivated.
	ProfileStatusInactive ProfileStatus = "inactive"
	// ProfileStatusSuspended indicates the profile has been suspended by the platform.
	ProfileStatusSuspended ProfileStatus = "suspended"
)

// String returns the string representation of the ProfileStatus.
func (s ProfileStatus) String() string {
	return string(s)
}

// IsValid checks if the ProfileStatus is a valid value.
func (s ProfileStatus) IsValid() bool {
	switch s {
	case ProfileStatusActive, ProfileStatusInactive, ProfileStatusSuspended:
		return true
	default:
		return false
	}
}
