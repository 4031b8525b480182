// Package entity contains the core business objects of the project.
package entity

// CustomerAccessLevel is the ordinal rank of a customer profile.
type CustomerAccessLevel string

const (
	CustomerLevelBasic   CustomerAccessLevel = "basic"
	CustomerLevelPremium CustomerAccessLevel = "premium"
	CustomerLevelVIP     CustomerAccessLevel = "vip"
)

// String returns the string representation of the CustomerAccessLevel.
func (l CustomerAccessLevel) String() string {
	return string(l)
}

// IsValid checks if the CustomerAccessLevel is a valid value.
func (l CustomerAccessLevel) IsValid() bool {
	switch l {
	case CustomerLevelBasic, CustomerLevelPremium, CustomerLevelVIP:
		return true
	default:
		return false
	}
}

// BusinessAccessLevel is the ordinal rank of a business membership.
// Levels form a total order: user < manager < admin.
type BusinessAccessLevel string

const (
	BusinessLevelUser    BusinessAccessLevel = "user"
	BusinessLevelManager BusinessAccessLevel = "manager"
	BusinessLevelAdmin   BusinessAccessLevel = "admin"
)

// String returns the string representation of the BusinessAccessLevel.
func (l BusinessAccessLevel) String() string {
	return string(l)
}

// IsValid checks if the BusinessAccessLevel is a valid value.
func (l BusinessAccessLevel) IsValid() bool {
	switch l {
	case BusinessLevelUser, BusinessLevelManager, BusinessLevelAdmin:
		return true
	default:
		return false
	}
}

// StaffAccessLevel is the ordinal rank of a staff profile.
// Levels form a total order: basic < advanced < admin.
type StaffAccessLevel string

const (
	StaffLevelBasic    StaffAccessLevel = "basic"
	StaffLevelAdvanced StaffAccessLevel = "advanced"
	StaffLevelAdmin    StaffAccessLevel = "admin"
)

// String returns the string representation of the StaffAccessLevel.
func (l StaffAccessLevel) String() string {
	return string(l)
}

// IsValid checks if the StaffAccessLevel is a valid value.
func (l StaffAccessLevel) IsValid() bool {
	switch l {
	case StaffLevelBasic, StaffLevelAdvanced, StaffLevelAdmin:
		return true
	default:
		return false
	}
}
