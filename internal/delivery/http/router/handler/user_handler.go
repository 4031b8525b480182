// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"plaza/internal/delivery/http/middleware"
	"plaza/internal/delivery/http/response"
	"plaza/internal/domain/entity"
	"plaza/internal/domain/repository"
	"plaza/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// RegisterCustomerRequest represents the request body for customer self-registration
type RegisterCustomerRequest struct {
	Name      string     `json:"name" validate:"required"`
	Email     string     `json:"email" validate:"required,email"`
	Password  string     `json:"password" validate:"required"`
	CPF       *string    `json:"cpf,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
}

// CreateBusinessUserRequest represents the request body for adding a staff account to a business
type CreateBusinessUserRequest struct {
	Name        string    `json:"name" validate:"required"`
	Email       string    `json:"email" validate:"required,email"`
	Password    string    `json:"password" validate:"required"`
	BusinessID  uuid.UUID `json:"business_id" validate:"required"`
	AccessLevel string    `json:"access_level" validate:"required"`
	Permissions []string  `json:"permissions,omitempty"`
}

// CreateStaffUserRequest represents the request body for creating a platform staff account
type CreateStaffUserRequest struct {
	Name              string   `json:"name" validate:"required"`
	Email             string   `json:"email" validate:"required,email"`
	Password          string   `json:"password" validate:"required"`
	AccessLevel       string   `json:"access_level" validate:"required"`
	SystemPermissions []string `json:"system_permissions,omitempty"`
}

// UpdateUserRequest represents the request body for updating account fields
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}

// RegisterCustomer handles the customer self-registration request.
func (h *UserHandler) RegisterCustomer(c echo.Context) error {
	var req RegisterCustomerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.userUC.RegisterCustomer(c.Request().Context(), &usecase.RegisterCustomerInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		CPF:       req.CPF,
		BirthDate: req.BirthDate,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newUserView(output.User), "Customer registered successfully")
}

// CreateBusinessUser handles adding a staff account to a business.
func (h *UserHandler) CreateBusinessUser(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateBusinessUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business user input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.userUC.CreateBusinessUser(c.Request().Context(), actorID, &usecase.CreateBusinessUserInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		BusinessID:  req.BusinessID,
		AccessLevel: entity.BusinessAccessLevel(req.AccessLevel),
		Permissions: req.Permissions,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newUserView(output.User), "Business user created successfully")
}

// CreateStaffUser handles creating a platform staff account.
func (h *UserHandler) CreateStaffUser(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateStaffUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid staff user input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.userUC.CreateStaffUser(c.Request().Context(), actorID, &usecase.CreateStaffUserInput{
		Name:              req.Name,
		Email:             req.Email,
		Password:          req.Password,
		AccessLevel:       entity.StaffAccessLevel(req.AccessLevel),
		SystemPermissions: req.SystemPermissions,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newUserView(output.User), "Staff user created successfully")
}

// GetMe returns the authenticated user's own account.
func (h *UserHandler) GetMe(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	user, err := h.userUC.GetUser(c.Request().Context(), actorID, actorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserView(user), "User retrieved successfully")
}

// GetUser retrieves a user by ID.
func (h *UserHandler) GetUser(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	user, err := h.userUC.GetUser(c.Request().Context(), actorID, targetID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserView(user), "User retrieved successfully")
}

// ListUsers retrieves users matching query filters.
func (h *UserHandler) ListUsers(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	filter := repository.UserFilter{
		Email: c.QueryParam("email"),
		Name:  c.QueryParam("name"),
	}

	if kind := c.QueryParam("profile_kind"); kind != "" {
		profileKind := entity.ProfileKind(kind)
		filter.ProfileKind = &profileKind
	}

	if businessIDStr := c.QueryParam("business_id"); businessIDStr != "" {
		businessID, err := uuid.Parse(businessIDStr)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid business ID")
		}
		filter.BusinessID = &businessID
	}

	if limitStr := c.QueryParam("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid limit")
		}
		filter.Limit = limit
	}

	if offsetStr := c.QueryParam("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid offset")
		}
		filter.Offset = offset
	}

	users, err := h.userUC.ListUsers(c.Request().Context(), actorID, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserViews(users), "Users retrieved successfully")
}

// UpdateUser modifies a user's account fields.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	user, err := h.userUC.UpdateUser(c.Request().Context(), actorID, targetID, &usecase.UpdateUserInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newUserView(user), "User updated successfully")
}

// DeactivateUser sets a user's profile inactive and revokes their sessions.
func (h *UserHandler) DeactivateUser(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	if err := h.userUC.DeactivateUser(c.Request().Context(), actorID, targetID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "User deactivated"}, "User deactivated successfully")
}

// DeleteUser removes a user account.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	if err := h.userUC.DeleteUser(c.Request().Context(), actorID, targetID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "User deleted"}, "User deleted successfully")
}
