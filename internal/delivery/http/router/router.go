// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"marketplace/internal/delivery/http/middleware"
	"marketplace/internal/delivery/http/router/handler"
	"marketplace/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	BusinessHandler *handler.BusinessHandler
	ProductHandler  *handler.ProductHandler
	CategoryHandler *handler.CategoryHandler
	AdminHandler    *handler.AdminHandler
	AdminLogHandler *handler.AdminLogHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	userHandler     *handler.UserHandler
	businessHandler *handler.BusinessHandler
	productHandler  *handler.ProductHandler
	categoryHandler *handler.CategoryHandler
	adminHandler    *handler.AdminHandler
	adminLogHandler *handler.AdminLogHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		userHandler:     params.UserHandler,
		businessHandler: params.BusinessHandler,
		productHandler:  params.ProductHandler,
		categoryHandler: params.CategoryHandler,
		adminHandler:    params.AdminHandler,
		adminLogHandler: params.AdminLogHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	// User routes
	userGroup := api.Group("/users")
	{
		meGroup := userGroup.Group("/me", r.authMiddleware.Authenticate)
		meGroup.GET("", r.userHandler.GetMe)
		meGroup.PATCH("", r.userHandler.UpdateMe)
		meGroup.DELETE("", r.userHandler.DeleteMe)

		// Public profile; contact fields only appear for signed-in viewers.
		userGroup.GET("/:userId", r.userHandler.GetByID, r.authMiddleware.OptionalAuthenticate)
	}

	// Business profile routes that require authentication
	businessGroup := api.Group("/businessProfile", r.authMiddleware.Authenticate)
	{
		businessGroup.POST("", r.businessHandler.Create)
		businessGroup.PATCH("/:id", r.businessHandler.Update)
	}

	// Product routes
	productGroup := api.Group("/products")
	{
		productGroup.GET("", r.productHandler.List, r.authMiddleware.OptionalAuthenticate)
		productGroup.GET("/:id", r.productHandler.Get, r.authMiddleware.OptionalAuthenticate)
		productGroup.POST("", r.productHandler.Create, r.authMiddleware.Authenticate)
		productGroup.PATCH("/:id", r.productHandler.Update, r.authMiddleware.Authenticate)
		productGroup.DELETE("/:id", r.productHandler.Delete, r.authMiddleware.Authenticate)
		productGroup.POST("/:id/contact-view", r.productHandler.ContactView, r.authMiddleware.Authenticate)
	}

	// Category routes: reads are public, mutations are admin only.
	categoryGroup := api.Group("/categories")
	{
		categoryGroup.GET("", r.categoryHandler.List)
		categoryGroup.GET("/parent-cats", r.categoryHandler.ListTopLevel)
		categoryGroup.GET("/:id", r.categoryHandler.Get)
		categoryGroup.GET("/:id/with-child-cats", r.categoryHandler.GetWithChildren)
		categoryGroup.GET("/:id/with-parent-cats", r.categoryHandler.GetWithParents)
		categoryGroup.GET("/:id/with-parent-child-cats", r.categoryHandler.GetWithParentsAndChildren)
		categoryGroup.GET("/:id/products", r.categoryHandler.ListProducts, r.authMiddleware.OptionalAuthenticate)

		adminOnly := []echo.MiddlewareFunc{r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleAdmin)}
		categoryGroup.POST("", r.categoryHandler.Create, adminOnly...)
		categoryGroup.PATCH("/:id", r.categoryHandler.Update, adminOnly...)
		categoryGroup.DELETE("/:id", r.categoryHandler.Delete, adminOnly...)
	}

	// Admin routes that require authentication and the admin role
	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		dashboardGroup := adminGroup.Group("/dashboard")
		dashboardGroup.GET("/users", r.adminHandler.ListUsers)
		dashboardGroup.GET("/users/pending-verification", r.adminHandler.ListPendingVerification)
		dashboardGroup.PATCH("/users/:userId/status", r.adminHandler.UpdateUserStatus)
		dashboardGroup.GET("/businessProfile", r.adminHandler.ListBusinessProfiles)
		dashboardGroup.PATCH("/businessProfile/:id/status", r.adminHandler.UpdateBusinessStatus)
		dashboardGroup.GET("/stats", r.adminHandler.Stats)
		dashboardGroup.GET("/activity", r.adminHandler.RecentActivity)

		logGroup := adminGroup.Group("/logs")
		logGroup.GET("", r.adminLogHandler.List)
		logGroup.GET("/summary", r.adminLogHandler.Summarize)
		logGroup.GET("/:id", r.adminLogHandler.Get)
	}
}
