package errors

import (
	"fmt"
	"net/http"

	"plaza/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"找不到該使用者",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"此電子郵件已被註冊",
		"",
	)

	ErrUserCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_CREATION_FAILED",
		"建立使用者失敗",
		"",
	)

	ErrUserUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_UPDATE_FAILED",
		"更新使用者失敗",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"電子郵件或密碼錯誤",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"無效或已過期的重新整理權杖",
		"",
	)

	ErrRefreshTokenNotFound = NewBaseError(
		http.StatusNotFound,
		"REFRESH_TOKEN_NOT_FOUND",
		"找不到重新整理權杖",
		"",
	)

	ErrRefreshTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_EXPIRED",
		"重新整理權杖已過期",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"密碼處理錯誤",
		"",
	)

	// Profile-related errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"找不到該使用者檔案",
		"",
	)

	ErrAccountDisabled = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_DISABLED",
		"此帳號已被停用",
		"",
	)

	// Business-related errors
	ErrBusinessNotFound = NewBaseError(
		http.StatusNotFound,
		"BUSINESS_NOT_FOUND",
		"找不到該商家",
		"",
	)

	ErrBusinessAlreadyExists = NewBaseError(
		http.StatusConflict,
		"BUSINESS_ALREADY_EXISTS",
		"此商家已被註冊",
		"",
	)

	ErrBusinessAlreadyApproved = NewBaseError(
		http.StatusConflict,
		"BUSINESS_ALREADY_APPROVED",
		"此商家已通過審核",
		"",
	)

	ErrBusinessNotApproved = NewBaseError(
		http.StatusForbidden,
		"BUSINESS_NOT_APPROVED",
		"此商家尚未通過審核",
		"",
	)

	ErrCustomerNotOnRoster = NewBaseError(
		http.StatusNotFound,
		"CUSTOMER_NOT_ON_ROSTER",
		"該顧客不在此商家的名單中",
		"",
	)

	// Plan-related errors
	ErrPlanNotFound = NewBaseError(
		http.StatusNotFound,
		"PLAN_NOT_FOUND",
		"找不到該方案",
		"",
	)

	ErrPlanAlreadyExists = NewBaseError(
		http.StatusConflict,
		"PLAN_ALREADY_EXISTS",
		"此方案名稱已存在",
		"",
	)

	ErrPlanInUse = NewBaseError(
		http.StatusConflict,
		"PLAN_IN_USE",
		"仍有商家使用此方案，無法刪除",
		"",
	)

	// Address-related errors
	ErrAddressNotFound = NewBaseError(
		http.StatusNotFound,
		"ADDRESS_NOT_FOUND",
		"找不到該地址",
		"",
	)

	ErrDuplicateAddressType = NewBaseError(
		http.StatusUnprocessableEntity,
		"DUPLICATE_ADDRESS_TYPE",
		"此類型的地址已存在",
		"",
	)

	ErrAddressOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"ADDRESS_OWNERSHIP_VIOLATION",
		"您沒有權限存取此地址",
		"",
	)

	// Authorization-related errors
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"存取被拒絕",
		"",
	)

	ErrSelfActionBlocked = NewBaseError(
		http.StatusForbidden,
		"SELF_ACTION_BLOCKED",
		"無法對自己的帳號執行此操作",
		"",
	)

	ErrLastAdminGuard = NewBaseError(
		http.StatusConflict,
		"LAST_ADMIN_GUARD",
		"系統必須保留至少一位啟用中的管理員",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"資料庫交易失敗",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"資源衝突",
		"",
	)
)

// Plan limit denial reason codes.
const (
	PlanLimitNoActivePlan         = "NO_ACTIVE_PLAN"
	PlanLimitUserLimitReached     = "USER_LIMIT_REACHED"
	PlanLimitCustomerLimitReached = "CUSTOMER_LIMIT_REACHED"
)

// PlanLimitError is a structured denial from the plan limit gate,
// implementing the AppError interface. It carries the limit and the live
// count so the client can render the quota state.
type PlanLimitError struct {
	reason       string
	currentLimit int
	currentCount int
}

// NewPlanLimitError creates a plan limit denial with the given reason code.
// For NO_ACTIVE_PLAN the limit and count are both zero.
func NewPlanLimitError(reason string, currentLimit, currentCount int) *PlanLimitError {
	return &PlanLimitError{
		reason:       reason,
		currentLimit: currentLimit,
		currentCount: currentCount,
	}
}

// Error implements the error interface
func (e *PlanLimitError) Error() string {
	return e.Message()
}

// HTTPCode returns the HTTP status code
func (e *PlanLimitError) HTTPCode() int {
	return http.StatusUnprocessableEntity
}

// ErrorCode returns the denial reason code
func (e *PlanLimitError) ErrorCode() string {
	return e.reason
}

// Message returns the user-friendly error message
func (e *PlanLimitError) Message() string {
	switch e.reason {
	case PlanLimitNoActivePlan:
		return "此商家沒有啟用中的方案"
	case PlanLimitUserLimitReached:
		return "已達到方案的使用者數量上限"
	case PlanLimitCustomerLimitReached:
		return "已達到方案的顧客數量上限"
	default:
		return "已達到方案限制"
	}
}

// Details returns the quota state for client display
func (e *PlanLimitError) Details() string {
	if e.reason == PlanLimitNoActivePlan {
		return ""
	}

	return fmt.Sprintf("current_limit=%d current_count=%d", e.currentLimit, e.currentCount)
}

// CurrentLimit returns the plan's cap for the checked dimension
func (e *PlanLimitError) CurrentLimit() int {
	return e.currentLimit
}

// CurrentCount returns the live count observed at check time
func (e *PlanLimitError) CurrentCount() int {
	return e.currentCount
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
