package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// NewUserRepository returns a UserRepository instance bound to the current transaction.
	NewUserRepository() UserRepository

	// NewBusinessRepository returns a BusinessRepository instance bound to the current transaction.
	NewBusinessRepository() BusinessRepository

	// NewPlatformPlanRepository returns a PlatformPlanRepository instance bound to the current transaction.
	NewPlatformPlanRepository() PlatformPlanRepository

	// NewAddressRepository returns an AddressRepository instance bound to the current transaction.
	NewAddressRepository() AddressRepository

	// NewBusinessUserProfileRepository returns a BusinessUserProfileRepository instance bound to the current transaction.
	NewBusinessUserProfileRepository() BusinessUserProfileRepository

	// NewStaffUserProfileRepository returns a StaffUserProfileRepository instance bound to the current transaction.
	NewStaffUserProfileRepository() StaffUserProfileRepository

	// NewCustomerProfileRepository returns a CustomerProfileRepository instance bound to the current transaction.
	NewCustomerProfileRepository() CustomerProfileRepository

	// NewRefreshTokenRepository returns a RefreshTokenRepository instance bound to the current transaction.
	NewRefreshTokenRepository() RefreshTokenRepository
}
