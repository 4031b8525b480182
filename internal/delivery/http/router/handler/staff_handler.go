package handler

import (
	"log/slog"
	"net/http"

	"plaza/internal/delivery/http/middleware"
	"plaza/internal/delivery/http/response"
	"plaza/internal/domain/entity"
	"plaza/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StaffHandlerParams holds dependencies for StaffHandler, injected by Fx.
type StaffHandlerParams struct {
	fx.In

	StaffUC usecase.StaffUsecase
	Logger  *slog.Logger
}

// StaffHandler holds dependencies for staff management handlers.
type StaffHandler struct {
	staffUC usecase.StaffUsecase
	logger  *slog.Logger
}

// NewStaffHandler is the constructor for StaffHandler.
func NewStaffHandler(params StaffHandlerParams) *StaffHandler {
	return &StaffHandler{
		staffUC: params.StaffUC,
		logger:  params.Logger,
	}
}

// UpdateStaffProfileRequest represents the request body for updating a staff profile
type UpdateStaffProfileRequest struct {
	Status            *string  `json:"status,omitempty"`
	SystemPermissions []string `json:"system_permissions,omitempty"`
}

// ListStaff retrieves every staff profile.
func (h *StaffHandler) ListStaff(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	profiles, err := h.staffUC.ListStaff(c.Request().Context(), actorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newStaffViews(profiles), "Staff retrieved successfully")
}

// GetStaffProfile retrieves a staff profile by ID.
func (h *StaffHandler) GetStaffProfile(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid staff profile ID")
	}

	profile, err := h.staffUC.GetStaffProfile(c.Request().Context(), actorID, profileID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newStaffView(profile), "Staff profile retrieved successfully")
}

// UpdateStaffProfile modifies a staff profile's status or permissions.
func (h *StaffHandler) UpdateStaffProfile(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid staff profile ID")
	}

	var req UpdateStaffProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}

	input := &usecase.UpdateStaffProfileInput{
		SystemPermissions: req.SystemPermissions,
	}
	if req.Status != nil {
		status := entity.ProfileStatus(*req.Status)
		if !status.IsValid() {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid profile status")
		}
		input.Status = &status
	}

	profile, err := h.staffUC.UpdateStaffProfile(c.Request().Context(), actorID, profileID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newStaffView(profile), "Staff profile updated successfully")
}

// DeleteStaffProfile removes a staff profile.
func (h *StaffHandler) DeleteStaffProfile(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid staff profile ID")
	}

	if err := h.staffUC.DeleteStaffProfile(c.Request().Context(), actorID, profileID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Staff profile deleted"}, "Staff profile deleted successfully")
}

// PromoteToAdmin raises a staff profile to the admin level.
func (h *StaffHandler) PromoteToAdmin(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid staff profile ID")
	}

	profile, err := h.staffUC.PromoteToAdmin(c.Request().Context(), actorID, profileID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newStaffView(profile), "Staff profile promoted successfully")
}

// DemoteFromAdmin lowers an admin profile to the advanced level.
func (h *StaffHandler) DemoteFromAdmin(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	profileID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid staff profile ID")
	}

	profile, err := h.staffUC.DemoteFromAdmin(c.Request().Context(), actorID, profileID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newStaffView(profile), "Staff profile demoted successfully")
}
