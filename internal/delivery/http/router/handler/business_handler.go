package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"plaza/internal/delivery/http/middleware"
	"plaza/internal/delivery/http/response"
	"plaza/internal/domain/entity"
	"plaza/internal/domain/repository"
	"plaza/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BusinessHandlerParams holds dependencies for BusinessHandler, injected by Fx.
type BusinessHandlerParams struct {
	fx.In

	BusinessUC usecase.BusinessUsecase
	Logger     *slog.Logger
}

// BusinessHandler holds dependencies for business-related handlers.
type BusinessHandler struct {
	businessUC usecase.BusinessUsecase
	logger     *slog.Logger
}

// NewBusinessHandler is the constructor for BusinessHandler.
func NewBusinessHandler(params BusinessHandlerParams) *BusinessHandler {
	return &BusinessHandler{
		businessUC: params.BusinessUC,
		logger:     params.Logger,
	}
}

// CreateBusinessRequest represents the request body for registering a business
type CreateBusinessRequest struct {
	Name        string `json:"name" validate:"required"`
	Slug        string `json:"slug" validate:"required"`
	CNPJ        string `json:"cnpj" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone,omitempty"`
	Description string `json:"description,omitempty"`
}

// UpdateBusinessRequest represents the request body for updating a business
type UpdateBusinessRequest struct {
	Name        *string `json:"name,omitempty"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       *string `json:"phone,omitempty"`
	Description *string `json:"description,omitempty"`
}

// AssignPlanRequest represents the request body for attaching a plan
type AssignPlanRequest struct {
	PlanID uuid.UUID `json:"plan_id" validate:"required"`
}

// AttachCustomerRequest represents the request body for adding a roster customer
type AttachCustomerRequest struct {
	CustomerProfileID uuid.UUID `json:"customer_profile_id" validate:"required"`
}

// JoinRosterRequest represents the request body for joining a roster via invite
type JoinRosterRequest struct {
	QRData string `json:"qr_data" validate:"required"`
}

// CreateBusiness handles registering a new pending business.
func (h *BusinessHandler) CreateBusiness(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateBusinessRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid business input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	business, err := h.businessUC.CreateBusiness(c.Request().Context(), actorID, &usecase.CreateBusinessInput{
		Name:        req.Name,
		Slug:        req.Slug,
		CNPJ:        req.CNPJ,
		Email:       req.Email,
		Phone:       req.Phone,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newBusinessView(business), "Business created successfully")
}

// GetBusiness retrieves a business by ID.
func (h *BusinessHandler) GetBusiness(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid business ID")
	}

	business, err := h.businessUC.GetBusiness(c.Request().Context(), actorID, businessID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newBusinessView(business), "Business retrieved successfully")
}

// ListBusinesses retrieves businesses matching query filters.
func (h *BusinessHandler) ListBusinesses(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	filter := repository.BusinessFilter{
		Name: c.QueryParam("name"),
		CNPJ: c.QueryParam("cnpj"),
	}

	if statusStr := c.QueryParam("status"); statusStr != "" {
		status := entity.BusinessStatus(statusStr)
		filter.Status = &status
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

	businesses, err := h.businessUC.ListBusinesses(c.Request().Context(), actorID, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newBusinessViews(businesses), "Businesses retrieved successfully")
}

// UpdateBusiness modifies a business's contact fields.
func (h *BusinessHandler) UpdateBusiness(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid business ID")
	}

	var req UpdateBusinessRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	business, err := h.businessUC.UpdateBusiness(c.Request().Context(), actorID, businessID, &usecase.UpdateBusinessInput{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Description: req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newBusinessView(business), "Business updated successfully")
}

// ApproveBusiness marks a pending business approved and active.
func (h *BusinessHandler) ApproveBusiness(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid business ID")
	}

	business, err := h.businessUC.ApproveBusiness(c.Request().Context(), actorID, businessID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newBusinessView(business), "Business approved successfully")
}

// SuspendBusiness suspends an active business.
func (h *BusinessHandler) SuspendBusiness(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid business ID")
	}

	business, err := h.businessUC.SuspendBusiness(c.Request().Context(), actorID, businessID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newBusinessView(business), "Business suspended successfully")
}

// AssignPlan attaches a platform plan to the business.
func (h *BusinessHandler) AssignPlan(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid business ID")
	}

	var req AssignPlanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid plan assignment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	business, err := h.businessUC.AssignPlan(c.Request().Context(), actorID, businessID, req.PlanID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newBusinessView(business), "Plan assigned successfully")
}

// DeleteBusiness removes a business and all its dependents.
func (h *BusinessHandler) DeleteBusiness(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid business ID")
	}

	if err := h.businessUC.DeleteBusiness(c.Request().Context(), actorID, businessID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Business deleted"}, "Business deleted successfully")
}

// GetBusinessStats returns live usage counts against the plan limits.
func (h *BusinessHandler) GetBusinessStats(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid business ID")
	}

	stats, err := h.businessUC.GetBusinessStats(c.Request().Context(), actorID, businessID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"user_count":     stats.UserCount,
		"customer_count": stats.CustomerCount,
		"user_limit":     stats.UserLimit,
		"customer_limit": stats.CustomerLimit,
		"plan_name":      stats.PlanName,
	}, "Business stats retrieved successfully")
}

// AttachCustomer adds a customer to the business roster.
func (h *BusinessHandler) AttachCustomer(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid business ID")
	}

	var req AttachCustomerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid roster input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.businessUC.AttachCustomer(c.Request().Context(), actorID, businessID, req.CustomerProfileID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"message": "Customer added to roster"}, "Customer attached successfully")
}

// DetachCustomer removes a customer from the business roster.
func (h *BusinessHandler) DetachCustomer(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid business ID")
	}

	customerProfileID, err := uuid.Parse(c.Param("customerProfileId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid customer profile ID")
	}

	if err := h.businessUC.DetachCustomer(c.Request().Context(), actorID, businessID, customerProfileID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Customer removed from roster"}, "Customer detached successfully")
}

// ListRosterCustomers retrieves the customer profiles on the roster.
func (h *BusinessHandler) ListRosterCustomers(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid business ID")
	}

	customers, err := h.businessUC.ListRosterCustomers(c.Request().Context(), actorID, businessID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCustomerViews(customers), "Roster retrieved successfully")
}

// GenerateRosterInvite renders the invite QR code as a PNG image.
func (h *BusinessHandler) GenerateRosterInvite(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	businessID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid business ID")
	}

	qrBytes, err := h.businessUC.GenerateRosterInvite(c.Request().Context(), actorID, businessID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", qrBytes)
}

// JoinRosterByInvite attaches the calling customer to the roster encoded in
// the invite payload.
func (h *BusinessHandler) JoinRosterByInvite(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req JoinRosterRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid invite input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.businessUC.JoinRosterByInvite(c.Request().Context(), actorID, req.QRData); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"message": "Joined roster"}, "Joined roster successfully")
}
