// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"plaza/internal/delivery/http/middleware"
	"plaza/internal/delivery/http/router/handler"
	"plaza/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	BusinessHandler *handler.BusinessHandler
	AddressHandler  *handler.AddressHandler
	PlanHandler     *handler.PlanHandler
	StaffHandler    *handler.StaffHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	userHandler     *handler.UserHandler
	businessHandler *handler.BusinessHandler
	addressHandler  *handler.AddressHandler
	planHandler     *handler.PlanHandler
	staffHandler    *handler.StaffHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		userHandler:     params.UserHandler,
		businessHandler: params.BusinessHandler,
		addressHandler:  params.AddressHandler,
		planHandler:     params.PlanHandler,
		staffHandler:    params.StaffHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Route-level role checks are a coarse first gate; the usecase layer
// re-checks authorization against the actor's profile state.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	anyStaff := r.authMiddleware.RequireRole(
		entity.RoleStaffBasic.String(),
		entity.RoleStaffAdvanced.String(),
		entity.RoleStaffAdmin.String(),
	)
	staffAdmin := r.authMiddleware.RequireRole(entity.RoleStaffAdmin.String())

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.RegisterCustomer)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/logout", r.authHandler.Logout)

		authGroup.POST("/logout-all", r.authHandler.LogoutAll, r.authMiddleware.Authenticate)
	}

	// User routes
	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/me", r.userHandler.GetMe)
		userGroup.GET("", r.userHandler.ListUsers)
		userGroup.GET("/:id", r.userHandler.GetUser)
		userGroup.PUT("/:id", r.userHandler.UpdateUser)
		userGroup.POST("/business", r.userHandler.CreateBusinessUser)
		userGroup.POST("/staff", r.userHandler.CreateStaffUser, anyStaff)
		userGroup.POST("/:id/deactivate", r.userHandler.DeactivateUser)
		userGroup.DELETE("/:id", r.userHandler.DeleteUser)
	}

	// Business routes
	businessGroup := e.Group("/businesses")
	businessGroup.Use(r.authMiddleware.Authenticate)
	{
		businessGroup.POST("", r.businessHandler.CreateBusiness)
		businessGroup.GET("", r.businessHandler.ListBusinesses)
		businessGroup.GET("/:id", r.businessHandler.GetBusiness)
		businessGroup.PUT("/:id", r.businessHandler.UpdateBusiness)
		businessGroup.DELETE("/:id", r.businessHandler.DeleteBusiness)
		businessGroup.GET("/:id/stats", r.businessHandler.GetBusinessStats)

		// Lifecycle transitions are reserved for platform staff.
		businessGroup.POST("/:id/approve", r.businessHandler.ApproveBusiness, anyStaff)
		businessGroup.POST("/:id/suspend", r.businessHandler.SuspendBusiness, anyStaff)
		businessGroup.POST("/:id/plan", r.businessHandler.AssignPlan, anyStaff)

		// Customer roster
		businessGroup.GET("/:id/roster", r.businessHandler.ListRosterCustomers)
		businessGroup.POST("/:id/roster", r.businessHandler.AttachCustomer)
		businessGroup.DELETE("/:id/roster/:customerProfileId", r.businessHandler.DetachCustomer)
		businessGroup.GET("/:id/roster/invite", r.businessHandler.GenerateRosterInvite)
		businessGroup.POST("/:id/roster/join", r.businessHandler.JoinRosterByInvite, r.authMiddleware.RequireRole(entity.RoleCustomer.String()))
	}

	// Address routes
	addressGroup := e.Group("/addresses")
	addressGroup.Use(r.authMiddleware.Authenticate)
	{
		addressGroup.GET("", r.addressHandler.ListAddresses)
		addressGroup.GET("/:id", r.addressHandler.GetAddress)
		addressGroup.POST("", r.addressHandler.CreateAddress)
		addressGroup.PUT("/:id", r.addressHandler.UpdateAddress)
		addressGroup.DELETE("/:id", r.addressHandler.DeleteAddress)
		addressGroup.POST("/:id/primary", r.addressHandler.SetPrimaryAddress)
	}

	// Plan routes, staff admin only.
	planGroup := e.Group("/plans")
	planGroup.Use(r.authMiddleware.Authenticate)
	planGroup.Use(staffAdmin)
	{
		planGroup.GET("", r.planHandler.ListPlans)
		planGroup.GET("/:id", r.planHandler.GetPlan)
		planGroup.POST("", r.planHandler.CreatePlan)
		planGroup.PUT("/:id", r.planHandler.UpdatePlan)
		planGroup.DELETE("/:id", r.planHandler.DeletePlan)
	}

	// Staff routes
	staffGroup := e.Group("/staff")
	staffGroup.Use(r.authMiddleware.Authenticate)
	staffGroup.Use(anyStaff)
	{
		staffGroup.GET("", r.staffHandler.ListStaff)
		staffGroup.GET("/:id", r.staffHandler.GetStaffProfile)
		staffGroup.PUT("/:id", r.staffHandler.UpdateStaffProfile)
		staffGroup.DELETE("/:id", r.staffHandler.DeleteStaffProfile, staffAdmin)
		staffGroup.POST("/:id/promote", r.staffHandler.PromoteToAdmin, staffAdmin)
		staffGroup.POST("/:id/demote", r.staffHandler.DemoteFromAdmin, staffAdmin)
	}
}
