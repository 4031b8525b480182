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

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	Logger    *slog.Logger
}

// AddressHandler holds dependencies for address-related handlers.
type AddressHandler struct {
	addressUC usecase.AddressUsecase
	logger    *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler.
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

// CreateAddressRequest represents the request body for recording an address
type CreateAddressRequest struct {
	OwnerID      uuid.UUID `json:"owner_id" validate:"required"`
	OwnerKind    string    `json:"owner_kind" validate:"required"`
	Type         string    `json:"type" validate:"required"`
	Street       string    `json:"street" validate:"required"`
	Number       string    `json:"number" validate:"required"`
	Complement   string    `json:"complement,omitempty"`
	Neighborhood string    `json:"neighborhood" validate:"required"`
	City         string    `json:"city" validate:"required"`
	State        string    `json:"state" validate:"required"`
	ZipCode      string    `json:"zip_code" validate:"required"`
	Country      string    `json:"country,omitempty"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	IsPrimary    bool      `json:"is_primary"`
}

// UpdateAddressRequest represents the request body for updating an address
type UpdateAddressRequest struct {
	Type         *string  `json:"type,omitempty"`
	Street       *string  `json:"street,omitempty"`
	Number       *string  `json:"number,omitempty"`
	Complement   *string  `json:"complement,omitempty"`
	Neighborhood *string  `json:"neighborhood,omitempty"`
	City         *string  `json:"city,omitempty"`
	State        *string  `json:"state,omitempty"`
	ZipCode      *string  `json:"zip_code,omitempty"`
	Country      *string  `json:"country,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	IsPrimary    *bool    `json:"is_primary,omitempty"`
}

// ListAddresses retrieves the addresses of an owner.
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	ownerID, err := uuid.Parse(c.QueryParam("owner_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid owner ID")
	}

	ownerKind := entity.OwnerKind(c.QueryParam("owner_kind"))
	if !ownerKind.IsValid() {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid owner kind")
	}

	addresses, err := h.addressUC.ListAddresses(c.Request().Context(), actorID, ownerID, ownerKind)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAddressViews(addresses), "Addresses retrieved successfully")
}

// GetAddress retrieves a single address.
func (h *AddressHandler) GetAddress(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	address, err := h.addressUC.GetAddress(c.Request().Context(), actorID, addressID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAddressView(address), "Address retrieved successfully")
}

// CreateAddress records a new address for an owner.
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	address, err := h.addressUC.CreateAddress(c.Request().Context(), actorID, &usecase.CreateAddressInput{
		OwnerID:      req.OwnerID,
		OwnerKind:    entity.OwnerKind(req.OwnerKind),
		Type:         entity.AddressType(req.Type),
		Street:       req.Street,
		Number:       req.Number,
		Complement:   req.Complement,
		Neighborhood: req.Neighborhood,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		Country:      req.Country,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		IsPrimary:    req.IsPrimary,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newAddressView(address), "Address created successfully")
}

// UpdateAddress modifies an address.
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	var req UpdateAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}

	input := &usecase.UpdateAddressInput{
		Street:       req.Street,
		Number:       req.Number,
		Complement:   req.Complement,
		Neighborhood: req.Neighborhood,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		Country:      req.Country,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		IsPrimary:    req.IsPrimary,
	}
	if req.Type != nil {
		addressType := entity.AddressType(*req.Type)
		input.Type = &addressType
	}

	address, err := h.addressUC.UpdateAddress(c.Request().Context(), actorID, addressID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAddressView(address), "Address updated successfully")
}

// DeleteAddress removes an address.
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	if err := h.addressUC.DeleteAddress(c.Request().Context(), actorID, addressID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Address deleted"}, "Address deleted successfully")
}

// SetPrimaryAddress marks the address primary and demotes its siblings.
func (h *AddressHandler) SetPrimaryAddress(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	address, err := h.addressUC.SetPrimaryAddress(c.Request().Context(), actorID, addressID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAddressView(address), "Primary address set successfully")
}
