package handler

import (
	"log/slog"
	"net/http"

	"plaza/internal/delivery/http/middleware"
	"plaza/internal/delivery/http/response"
	"plaza/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PlanHandlerParams holds dependencies for PlanHandler, injected by Fx.
type PlanHandlerParams struct {
	fx.In

	PlanUC usecase.PlanUsecase
	Logger *slog.Logger
}

// PlanHandler holds dependencies for subscription plan handlers.
type PlanHandler struct {
	planUC usecase.PlanUsecase
	logger *slog.Logger
}

// NewPlanHandler is the constructor for PlanHandler.
func NewPlanHandler(params PlanHandlerParams) *PlanHandler {
	return &PlanHandler{
		planUC: params.PlanUC,
		logger: params.Logger,
	}
}

// CreatePlanRequest represents the request body for creating a plan
type CreatePlanRequest struct {
	Name         string   `json:"name" validate:"required"`
	Slug         string   `json:"slug" validate:"required"`
	Description  string   `json:"description,omitempty"`
	Price        float64  `json:"price" validate:"gte=0"`
	BillingCycle string   `json:"billing_cycle" validate:"required,oneof=monthly yearly"`
	Features     []string `json:"features,omitempty"`
	MaxUsers     *int     `json:"max_users,omitempty" validate:"omitempty,gt=0"`
	MaxCustomers *int     `json:"max_customers,omitempty" validate:"omitempty,gt=0"`
	IsFeatured   bool     `json:"is_featured,omitempty"`
	SortOrder    int      `json:"sort_order,omitempty"`
}

// UpdatePlanRequest represents the request body for updating a plan
type UpdatePlanRequest struct {
	Name              *string  `json:"name,omitempty"`
	Description       *string  `json:"description,omitempty"`
	Price             *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	BillingCycle      *string  `json:"billing_cycle,omitempty" validate:"omitempty,oneof=monthly yearly"`
	Features          []string `json:"features,omitempty"`
	MaxUsers          *int     `json:"max_users,omitempty" validate:"omitempty,gt=0"`
	ClearMaxUsers     bool     `json:"clear_max_users,omitempty"`
	MaxCustomers      *int     `json:"max_customers,omitempty" validate:"omitempty,gt=0"`
	ClearMaxCustomers bool     `json:"clear_max_customers,omitempty"`
	IsActive          *bool    `json:"is_active,omitempty"`
	IsFeatured        *bool    `json:"is_featured,omitempty"`
	SortOrder         *int     `json:"sort_order,omitempty"`
}

// ListPlans retrieves every subscription plan.
func (h *PlanHandler) ListPlans(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	plans, err := h.planUC.ListPlans(c.Request().Context(), actorID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPlanViews(plans), "Plans retrieved successfully")
}

// GetPlan retrieves a plan by ID.
func (h *PlanHandler) GetPlan(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid plan ID")
	}

	plan, err := h.planUC.GetPlan(c.Request().Context(), actorID, planID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPlanView(plan), "Plan retrieved successfully")
}

// CreatePlan creates a new subscription plan.
func (h *PlanHandler) CreatePlan(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreatePlanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid plan input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	input := &usecase.CreatePlanInput{
		Name:         req.Name,
		Slug:         req.Slug,
		Description:  req.Description,
		Price:        req.Price,
		BillingCycle: req.BillingCycle,
		Features:     req.Features,
		MaxUsers:     req.MaxUsers,
		MaxCustomers: req.MaxCustomers,
		IsFeatured:   req.IsFeatured,
		SortOrder:    req.SortOrder,
	}

	plan, err := h.planUC.CreatePlan(c.Request().Context(), actorID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newPlanView(plan), "Plan created successfully")
}

// UpdatePlan modifies an existing subscription plan.
func (h *PlanHandler) UpdatePlan(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid plan ID")
	}

	var req UpdatePlanRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid plan input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	input := &usecase.UpdatePlanInput{
		Name:              req.Name,
		Description:       req.Description,
		Price:             req.Price,
		BillingCycle:      req.BillingCycle,
		Features:          req.Features,
		MaxUsers:          req.MaxUsers,
		ClearMaxUsers:     req.ClearMaxUsers,
		MaxCustomers:      req.MaxCustomers,
		ClearMaxCustomers: req.ClearMaxCustomers,
		IsActive:          req.IsActive,
		IsFeatured:        req.IsFeatured,
		SortOrder:         req.SortOrder,
	}

	plan, err := h.planUC.UpdatePlan(c.Request().Context(), actorID, planID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newPlanView(plan), "Plan updated successfully")
}

// DeletePlan removes a subscription plan.
func (h *PlanHandler) DeletePlan(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	planID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid plan ID")
	}

	if err := h.planUC.DeletePlan(c.Request().Context(), actorID, planID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Plan deleted"}, "Plan deleted successfully")
}
