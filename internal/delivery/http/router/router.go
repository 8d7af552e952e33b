// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"petmanager/internal/delivery/http/middleware"
	"petmanager/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	PetHandler         *handler.PetHandler
	DayHandler         *handler.DayHandler
	MealHandler        *handler.MealHandler
	AppointmentHandler *handler.AppointmentHandler
	FoodHandler        *handler.FoodHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler        *handler.AuthHandler
	petHandler         *handler.PetHandler
	dayHandler         *handler.DayHandler
	mealHandler        *handler.MealHandler
	appointmentHandler *handler.AppointmentHandler
	foodHandler        *handler.FoodHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:        params.AuthHandler,
		petHandler:         params.PetHandler,
		dayHandler:         params.DayHandler,
		mealHandler:        params.MealHandler,
		appointmentHandler: params.AppointmentHandler,
		foodHandler:        params.FoodHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/pet-manager/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/resend-verification", r.authHandler.ResendVerification)
		authGroup.POST("/verify-account", r.authHandler.VerifyAccount, r.authMiddleware.ExtractToken)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout, r.authMiddleware.ExtractToken)
		authGroup.POST("/forgot-pass", r.authHandler.ForgotPassword)
		authGroup.POST("/reset-pass", r.authHandler.ResetPassword, r.authMiddleware.ExtractToken)
	}

	// Pet routes that require authentication
	petGroup := api.Group("/pets")
	petGroup.Use(r.authMiddleware.Authenticate)
	{
		petGroup.POST("", r.petHandler.Create)
		petGroup.PATCH("/update/:id", r.petHandler.Update)
		petGroup.DELETE("/remove/:id", r.petHandler.Delete)
	}

	// Diet tracking routes
	dayGroup := api.Group("/days")
	dayGroup.Use(r.authMiddleware.Authenticate)
	{
		dayGroup.POST("", r.dayHandler.Create)
	}

	mealGroup := api.Group("/meals")
	mealGroup.Use(r.authMiddleware.Authenticate)
	{
		mealGroup.POST("", r.mealHandler.Create)
		mealGroup.PATCH("/update/:id", r.mealHandler.Update)
		mealGroup.DELETE("/remove/:id", r.mealHandler.Delete)
	}

	// Appointment routes
	appointmentGroup := api.Group("/appointments")
	appointmentGroup.Use(r.authMiddleware.Authenticate)
	{
		appointmentGroup.POST("", r.appointmentHandler.Create)
		appointmentGroup.PATCH("/update/:id", r.appointmentHandler.Update)
		appointmentGroup.DELETE("/remove/:id", r.appointmentHandler.Delete)
	}

	// Food catalog routes
	foodGroup := api.Group("/foods")
	foodGroup.Use(r.authMiddleware.Authenticate)
	{
		foodGroup.POST("", r.foodHandler.Create)
	}
}
